// dockres prints the poses found in an AutoDock Vina output file, one line
// per pose with its predicted affinity. Optionally, it writes each pose to
// its own PDB file and/or plots the scores.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/dockplot"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] vina_output.pdbqt[.gz]")
	flag.PrintDefaults()
}

func main() {
	pdbprefix := flag.String("pdb", "", "write each pose to prefix_N.pdb")
	plotname := flag.String("plot", "", "plot affinity vs pose rank to the given file (a .png extension is added)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	mols, scores, err := dock.LoadDockedLigands(name)
	if err != nil {
		log.Fatal(err)
	}
	for i, mol := range mols {
		fmt.Printf("pose %2d   %8.2f kcal/mol   %d atoms\n", i+1, scores[i], mol.Len())
	}
	if *pdbprefix != "" {
		for i, mol := range mols {
			var bfact []float64
			if mol.Bfactors != nil {
				bfact = mol.Bfactors[0]
			}
			out := fmt.Sprintf("%s_%d.pdb", *pdbprefix, i+1)
			if err := dock.PDBFileWrite(out, mol.Coords[0], mol, bfact); err != nil {
				log.Fatal(err)
			}
		}
	}
	if *plotname != "" {
		if err := dockplot.Scores(scores, filepath.Base(name), *plotname); err != nil {
			log.Fatal(err)
		}
	}
}
