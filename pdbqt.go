/*
 * pdbqt.go, part of godock.
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
	"strings"
)

//StructureLoader takes a structure-format text block and loads it into a
//Molecule. Implementations must keep the 3D information and the hydrogens
//of the block as given.
type StructureLoader interface {
	LoadBlock(block string) (*Molecule, error)
}

//PoseBlockConverter takes the raw text lines of one docked pose and returns
//an equivalent text block in a structure-only format, which a
//StructureLoader can digest.
type PoseBlockConverter interface {
	ConvertBlock(lines []string) (string, error)
}

//PDBLoader loads PDB-format blocks with the package's own reader. No
//sanitization is applied and hydrogens are preserved.
type PDBLoader struct{}

func (P PDBLoader) LoadBlock(block string) (*Molecule, error) {
	mol, err := PDBStringRead(block)
	if err != nil {
		return nil, errDecorate(err, "PDBLoader.LoadBlock")
	}
	return mol, nil
}

//PDBQTConverter converts AutoDock PDBQT pose blocks into plain PDB blocks.
type PDBQTConverter struct{}

func (P PDBQTConverter) ConvertBlock(lines []string) (string, error) {
	return PDBQT2PDB(lines), nil
}

//the records dropped on conversion: AutoDock's torsion tree, plus the
//REMARK bookkeeping Vina writes inside each pose.
var pdbqtOnly = []string{"ROOT", "ENDROOT", "BRANCH", "ENDBRANCH", "TORSDOF", "REMARK"}

//PDBQT2PDB converts the given PDBQT lines into a PDB-format text block.
//PDBQT is PDB with a partial charge and an AutoDock atom type appended to
//each atom record, plus the records of the ligand's torsion tree. The
//conversion truncates each record after the temperature-factor column
//(column 66), which removes the charge and atom type, and drops the
//torsion-tree and REMARK records. The returned block is terminated by an
//END record.
func PDBQT2PDB(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 && isInString(pdbqtOnly, fields[0]) {
			continue
		}
		line = strings.TrimRight(line, "\n")
		if len(line) > 66 {
			line = line[:66]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("END\n")
	return b.String()
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
