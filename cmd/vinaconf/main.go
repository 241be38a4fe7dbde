// vinaconf writes an AutoDock Vina configuration file. The docking box can
// be given explicitly with -center and -size, or computed from the
// coordinates of a PDB file (say, the residues lining the binding site)
// with -pocket.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	dock "github.com/rmera/godock"
	v3 "github.com/rmera/godock/v3"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] -receptor rec.pdbqt -ligand lig.pdbqt")
	flag.PrintDefaults()
}

// vector parses an "x,y,z" string into a 1x3 vector.
func vector(s string) (*v3.Matrix, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: expected 3 comma-separated values", s)
	}
	data := make([]float64, 3)
	for i, p := range parts {
		var err error
		data[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
	}
	return v3.NewMatrix(data)
}

func main() {
	receptor := flag.String("receptor", "", "receptor file name (required)")
	ligand := flag.String("ligand", "", "ligand file name (required)")
	center := flag.String("center", "", "docking box center, as x,y,z")
	size := flag.String("size", "", "docking box dimensions, as x,y,z")
	pocket := flag.String("pocket", "", "PDB file whose coordinates define the docking box")
	pad := flag.Float64("pad", 5.0, "padding added to each box axis when -pocket is used")
	modes := flag.Int("modes", dock.DefaultNumModes, "number of binding modes to ask Vina for")
	exhaustiveness := flag.Int("exhaustiveness", 0, "search exhaustiveness, 0 leaves it to Vina")
	out := flag.String("o", "conf.txt", "output file name")
	flag.Usage = usage
	flag.Parse()
	if *receptor == "" || *ligand == "" {
		usage()
		os.Exit(2)
	}
	var centroid, boxsize *v3.Matrix
	var err error
	switch {
	case *pocket != "":
		mol, err := dock.PDBFileRead(*pocket)
		if err != nil {
			log.Fatal(err)
		}
		centroid, err = dock.Centroid(mol.Coords[0])
		if err != nil {
			log.Fatal(err)
		}
		boxsize, err = dock.BoxDims(mol.Coords[0], *pad)
		if err != nil {
			log.Fatal(err)
		}
	case *center != "" && *size != "":
		centroid, err = vector(*center)
		if err != nil {
			log.Fatal(err)
		}
		boxsize, err = vector(*size)
		if err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintln(os.Stderr, "either -pocket, or both -center and -size, must be given")
		usage()
		os.Exit(2)
	}
	if *exhaustiveness > 0 {
		err = dock.ConfFileWrite(*out, *receptor, *ligand, centroid, boxsize, *modes, *exhaustiveness)
	} else {
		err = dock.ConfFileWrite(*out, *receptor, *ligand, centroid, boxsize, *modes)
	}
	if err != nil {
		log.Fatal(err)
	}
}
