/*
 * pdb_test.go, part of godock.
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

package dock

import (
	"fmt"
	"testing"
)

func TestPDBFileRead(Te *testing.T) {
	mol, err := PDBFileRead("test/pocket.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("PDB read!")
	if mol.Len() != 4 {
		Te.Fatalf("Wrong number of atoms: %d", mol.Len())
	}
	at := mol.Atom(1)
	if at.Name != "CA" || at.MolName != "GLY" || at.MolName1 != 'G' || at.Chain != "A" {
		Te.Errorf("Wrong atom read: %+v", at)
	}
	if at.Symbol != "C" || at.Mass != symbolMass["C"] {
		Te.Errorf("Wrong symbol/mass: %s %f", at.Symbol, at.Mass)
	}
	if mol.Coords[0].At(1, 0) != 1.0 || mol.Coords[0].At(3, 1) != 2.0 {
		Te.Errorf("Wrong coordinates read: %v", mol.Coords[0])
	}
	if mol.Bfactors[0][1] != 12.0 {
		Te.Errorf("Wrong b-factor read: %f", mol.Bfactors[0][1])
	}
}

func TestPDBWriteRead(Te *testing.T) {
	mol, err := PDBFileRead("test/pocket.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	block, err := PDBStringWrite(mol.Coords[0], mol, mol.Bfactors[0])
	if err != nil {
		Te.Fatal(err)
	}
	mol2, err := PDBStringRead(block)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Fatalf("Round trip changed the number of atoms: %d vs %d", mol2.Len(), mol.Len())
	}
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Name != mol2.Atom(i).Name {
			Te.Errorf("Round trip changed atom %d: %s vs %s", i, mol.Atom(i).Name, mol2.Atom(i).Name)
		}
		for j := 0; j < 3; j++ {
			if mol.Coords[0].At(i, j) != mol2.Coords[0].At(i, j) {
				Te.Errorf("Round trip changed coordinate %d,%d", i, j)
			}
		}
	}
}

func TestPDBReadMultiModel(Te *testing.T) {
	const pdb = `MODEL 1
ATOM      1  CA  GLY A   1       1.000   2.000   3.000  1.00 10.00
ATOM      2  CB  GLY A   1       2.000   2.000   3.000  1.00 11.00
ENDMDL
MODEL 2
ATOM      1  CA  GLY A   1       1.500   2.500   3.500  1.00 12.00
ATOM      2  CB  GLY A   1       2.500   2.500   3.500  1.00 13.00
ENDMDL
`
	mol, err := PDBStringRead(pdb)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NFrames() != 2 {
		Te.Fatalf("Wrong number of frames: %d", mol.NFrames())
	}
	if mol.Len() != 2 {
		Te.Fatalf("Wrong number of atoms: %d", mol.Len())
	}
	if mol.Coords[1].At(0, 0) != 1.5 || mol.Coords[1].At(1, 2) != 3.5 {
		Te.Errorf("Wrong coordinates in the second frame: %v", mol.Coords[1])
	}
	if mol.Bfactors[1][1] != 13.0 {
		Te.Errorf("Wrong b-factor in the second frame: %f", mol.Bfactors[1][1])
	}
}

func TestPDBReadEmptyModel(Te *testing.T) {
	//a trailing MODEL with no atom records must be an error, not a panic.
	const pdb = `MODEL 1
ATOM      1  CA  GLY A   1       1.000   2.000   3.000  1.00 10.00
ENDMDL
MODEL 2
`
	if _, err := PDBStringRead(pdb); err == nil {
		Te.Error("PDBStringRead accepted a MODEL with no ATOM/HETATM records")
	}
}

func TestPDBReadBadInput(Te *testing.T) {
	if _, err := PDBStringRead("not a pdb at all\n"); err == nil {
		Te.Error("PDBStringRead accepted a block with no atoms")
	}
	if _, err := PDBStringRead("ATOM      1 C1\n"); err == nil {
		Te.Error("PDBStringRead accepted a truncated ATOM record")
	}
}
