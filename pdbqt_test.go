/*
 * pdbqt_test.go, part of godock.
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
	"strings"
	"testing"
)

func TestPDBQT2PDB(Te *testing.T) {
	lines := []string{
		"REMARK  1 active torsions:",
		"ROOT",
		"ATOM      1 C1   LIG A   1       1.000   2.000   3.000  1.00  0.00     0.123 C ",
		"ENDROOT",
		"BRANCH   1   3",
		"ATOM      3 N1   LIG A   1       3.000   3.000   4.000  1.00  0.00    -0.250 N ",
		"ENDBRANCH   1   3",
		"TORSDOF 1",
	}
	block := PDBQT2PDB(lines)
	if strings.Contains(block, "ROOT") || strings.Contains(block, "BRANCH") || strings.Contains(block, "TORSDOF") {
		Te.Errorf("Torsion-tree records survived the conversion:\n%s", block)
	}
	if strings.Contains(block, "REMARK") {
		Te.Errorf("REMARK records survived the conversion:\n%s", block)
	}
	if strings.Contains(block, "0.123") {
		Te.Errorf("Partial charges survived the conversion:\n%s", block)
	}
	if !strings.HasSuffix(block, "END\n") {
		Te.Errorf("Block is not END-terminated:\n%s", block)
	}
	for _, l := range strings.Split(block, "\n") {
		if len(l) > 66 {
			Te.Errorf("Line longer than 66 columns: %q", l)
		}
	}
	//and the converted block loads as a PDB with the hydrogens, charges
	//and torsions gone but the coordinates intact.
	mol, err := PDBLoader{}.LoadBlock(block)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 {
		Te.Fatalf("Wrong number of atoms in converted block: %d", mol.Len())
	}
	if mol.Atom(0).Charge != 0 {
		Te.Errorf("Partial charge kept after conversion: %f", mol.Atom(0).Charge)
	}
	if mol.Coords[0].At(1, 2) != 4.0 {
		Te.Errorf("Wrong coordinate after conversion: %f", mol.Coords[0].At(1, 2))
	}
}

func TestPDBQT2PDBKeepsHydrogens(Te *testing.T) {
	lines := []string{
		"ATOM      1 C1   LIG A   1       1.000   2.000   3.000  1.00  0.00     0.123 C ",
		"ATOM      2 H1   LIG A   1       1.500   2.000   3.000  1.00  0.00     0.050 HD",
	}
	mol, err := PDBLoader{}.LoadBlock(PDBQT2PDB(lines))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 || mol.Atom(1).Symbol != "H" {
		Te.Errorf("Hydrogen not preserved: %d atoms", mol.Len())
	}
}
