/*
 * pdb.go, part of godock.
 *
 * Copyright 2024 Raul Mera <rmeraaatacademicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goDock is developed at Universidad de Tarapaca (UTA)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package dock

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/godock/v3"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Br": 79.90,
	"F":  19.00,
	"I":  126.90,
}

//A map between 3-letter names for aminoacidic residues and the corresponding
//1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom
//name. Mostly based on AMBER names. It only deals with some common
//bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name[0] == 'C' {
		if name == "CU" {
			symbol = "Cu"
		} else if name == "CO" {
			symbol = "Co"
		} else if name == "CL" {
			symbol = "Cl"
		} else {
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if name[0] == 'F' {
		if name == "FE" {
			symbol = "Fe"
		} else {
			symbol = "F"
		}
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "Zn"
	} else if strings.HasPrefix(name, "BR") {
		symbol = "Br"
	}
	if symbol == "" {
		return symbol, CError{fmt.Sprintf("Couldn't guess symbol from PDB name: %s", name), []string{"symbolFromName"}}
	}
	return symbol, nil
}

//readFullPDBLine parses a valid ATOM or HETATM line of a PDB file and
//returns an Atom object with the info, except for the coordinates and
//b-factor, which are returned separately.
func readFullPDBLine(line string) (*Atom, []float64, float64, error) {
	if len(line) < 54 {
		return nil, nil, 0, CError{fmt.Sprintf("ATOM/HETATM record too short: %q", line), []string{"readFullPDBLine"}}
	}
	err := make([]error, 5)
	coords := make([]float64, 3)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:12]))
	atom.Name = strings.TrimSpace(line[12:16])
	//PDB says that pos. 17 is for other thing but it is used for the
	//residue name in many cases.
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.MolName1 = three2OneLetter[atom.MolName]
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	//occupancy and b-factor are missing in some minimal files, we don't
	//insist on them.
	var bfactor float64
	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	//the element column, when present, wins over the name-based guess.
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name) //a failed guess just leaves it empty.
	}
	for i := range err {
		if err[i] != nil {
			return nil, nil, 0, CError{fmt.Sprintf("Failed to parse ATOM/HETATM record %q: %s", line, err[i].Error()), []string{"readFullPDBLine"}}
		}
	}
	if atom.Symbol != "" {
		atom.Mass = symbolMass[atom.Symbol] //no error checking.
	}
	return atom, coords, bfactor, nil
}

//readOnlyCoordsPDBLine parses a PDB line when only the coordinates and
//b-factor are to be read (i.e. any frame after the first).
func readOnlyCoordsPDBLine(line string) ([]float64, float64, error) {
	if len(line) < 54 {
		return nil, 0, CError{fmt.Sprintf("ATOM/HETATM record too short: %q", line), []string{"readOnlyCoordsPDBLine"}}
	}
	coords := make([]float64, 3)
	err := make([]error, 3)
	var bfactor float64
	coords[0], err[0] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[1] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[2] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if len(line) >= 66 {
		bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	for i := range err {
		if err[i] != nil {
			return nil, 0, CError{fmt.Sprintf("Failed to parse ATOM/HETATM record %q: %s", line, err[i].Error()), []string{"readOnlyCoordsPDBLine"}}
		}
	}
	return coords, bfactor, nil
}

//PDBRead reads a PDB-formatted stream and returns a Molecule. If there are
//several models in the PDB, the atom data is read from the first one and
//only the coordinates and b-factors are taken from the rest. Hydrogens are
//kept and no sanitization of any kind is performed: atoms are stored as
//written.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	bufiopdb := bufio.NewReader(pdb)
	atoms := make([]*Atom, 0)
	coords := make([][]float64, 1)
	coords[0] = make([]float64, 0)
	bfactors := make([][]float64, 1)
	bfactors[0] = make([]float64, 0)
	firstModel := true
	for {
		line, rerr := bufiopdb.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, CError{rerr.Error(), []string{"bufio.Reader.ReadString", "PDBRead"}}
		}
		if len(line) >= 6 && (strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM")) {
			var c []float64
			var bfac float64
			var err error
			if !firstModel {
				c, bfac, err = readOnlyCoordsPDBLine(line)
			} else {
				var at *Atom
				at, c, bfac, err = readFullPDBLine(line)
				if err == nil {
					atoms = append(atoms, at)
				}
			}
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			coords[len(coords)-1] = append(coords[len(coords)-1], c...)
			bfactors[len(bfactors)-1] = append(bfactors[len(bfactors)-1], bfac)
		} else if strings.HasPrefix(line, "MODEL") && len(line) > 6 {
			modelnumber, _ := strconv.Atoi(strings.TrimSpace(line[6:])) //the count starts from 1.
			if modelnumber > 1 {
				firstModel = false
				coords = append(coords, make([]float64, 0))
				bfactors = append(bfactors, make([]float64, 0))
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if len(atoms) == 0 {
		return nil, CError{"No ATOM/HETATM records found", []string{"PDBRead"}}
	}
	top := NewTopology(0, 0, atoms)
	frames := len(coords)
	mcoords := make([]*v3.Matrix, frames)
	var err error
	for i := 0; i < frames; i++ {
		if len(coords[i]) == 0 {
			return nil, CError{fmt.Sprintf("Model %d has no ATOM/HETATM records", i+1), []string{"PDBRead"}}
		}
		mcoords[i], err = v3.NewMatrix(coords[i])
		if err != nil {
			return nil, CError{fmt.Sprintf("Couldn't build coordinates for frame %d: %s", i, err.Error()), []string{"v3.NewMatrix", "PDBRead"}}
		}
	}
	mol, err := NewMolecule(mcoords, top, bfactors)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	return mol, nil
}

//PDBFileRead reads a PDB file from the disk and returns a Molecule.
func PDBFileRead(pdbname string) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	return PDBRead(pdbfile)
}

//PDBStringRead reads a PDB-formatted text block and returns a Molecule.
func PDBStringRead(block string) (*Molecule, error) {
	return PDBRead(strings.NewReader(block))
}

//PDBWrite writes a single frame of coordinates to out, in PDB format, for
//the molecule mol. bfact may be nil, in which case zeros are written.
func PDBWrite(out io.Writer, coords *v3.Matrix, mol Atomer, bfact []float64) error {
	if coords == nil || mol == nil || mol.Len() == 0 {
		return CError{string(ErrNilData), []string{"PDBWrite"}}
	}
	if coords.NVecs() != mol.Len() {
		return CError{fmt.Sprintf("%s: %d coordinates for %d atoms", ErrAtomsCoords, coords.NVecs(), mol.Len()), []string{"PDBWrite"}}
	}
	if bfact != nil && len(bfact) != mol.Len() {
		return CError{"goDock: Bfactors don't match the number of atoms", []string{"PDBWrite"}}
	}
	fmt.Fprint(out, "REMARK     WRITTEN WITH GODOCK :-)\n")
	chainprev := mol.Atom(0).Chain //to know when the chain changes.
	var err error
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Chain != chainprev {
			fmt.Fprintln(out, "TER")
			chainprev = at.Chain
		}
		first := "ATOM"
		if at.Het {
			first = "HETATM"
		}
		var bfac float64
		if bfact != nil {
			bfac = bfact[i]
		}
		chain := at.Chain
		if chain == "" {
			chain = " "
		}
		if len(at.Name) < 4 {
			_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
				first, at.ID, at.Name, at.MolName, chain, at.MolID,
				coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), at.Occupancy, bfac, at.Symbol)
		} else if len(at.Name) == 4 {
			//4 chars for the atom name are used when hydrogens are included.
			_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
				first, at.ID, at.Name, at.MolName, chain, at.MolID,
				coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), at.Occupancy, bfac, at.Symbol)
		} else {
			err = CError{fmt.Sprintf("Can't print PDB line for atom %d, name too long: %s", i, at.Name), []string{"PDBWrite"}}
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprint(out, "END\n")
	return nil
}

//PDBFileWrite writes a PDB file with the given name for the given frame of
//coordinates, topology and (possibly nil) b-factors.
func PDBFileWrite(pdbname string, coords *v3.Matrix, mol Atomer, bfact []float64) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return err
	}
	defer out.Close()
	return PDBWrite(out, coords, mol, bfact)
}

//PDBStringWrite returns a string with the PDB representation of the given
//frame of coordinates, topology and (possibly nil) b-factors.
func PDBStringWrite(coords *v3.Matrix, mol Atomer, bfact []float64) (string, error) {
	var b strings.Builder
	err := PDBWrite(&b, coords, mol, bfact)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
