/*
 * vinaposes.go, part of godock.
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

	"github.com/klauspost/compress/gzip"
)

//the annotation Vina writes on each pose. The 4th whitespace-separated
//token of such a line is the predicted affinity, in kcal/mol.
const vinaResultMark = "REMARK VINA RESULT:"

//ReadDockedLigands reads a multi-pose Vina output from in. Each
//MODEL...ENDMDL block is handed to conv to be turned into a structure-only
//text block, which loader then makes into a Molecule. It returns the
//molecules and their predicted affinities, in the order the poses appear in
//the stream, with molecules[i] scored by scores[i].
//
//A well-formed stream has every line inside a MODEL...ENDMDL block, except
//for blank ones, and exactly one VINA RESULT annotation per block. Anything
//else returns an error.
func ReadDockedLigands(in io.Reader, loader StructureLoader, conv PoseBlockConverter) ([]*Molecule, []float64, error) {
	if loader == nil || conv == nil {
		return nil, nil, VinaError{message: NoBackend, critical: true}
	}
	blocks := make([][]string, 0)
	scores := make([]float64, 0)
	var current []string
	recording := false
	scored := false
	nline := 0 //for error reporting
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		nline++
		switch {
		case strings.HasPrefix(line, "MODEL"):
			if recording {
				return nil, nil, VinaError{message: UnterminatedPose, line: nline, critical: true}
			}
			recording = true
			scored = false
			current = make([]string, 0, 100)
		case strings.HasPrefix(line, vinaResultMark):
			if !recording {
				return nil, nil, VinaError{message: StrayLine, line: nline, critical: true}
			}
			if scored {
				return nil, nil, VinaError{message: DoubleScore, line: nline, critical: true}
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, nil, VinaError{message: ShortResult, line: nline, critical: true}
			}
			score, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, nil, VinaError{message: fmt.Sprintf("Couldn't parse score from %q: %s", line, err.Error()), line: nline, critical: true}
			}
			scores = append(scores, score)
			scored = true
		case strings.HasPrefix(line, "ENDMDL"):
			if !recording {
				return nil, nil, VinaError{message: StrayEnd, line: nline, critical: true}
			}
			if !scored {
				return nil, nil, VinaError{message: MissingScore, line: nline, critical: true}
			}
			blocks = append(blocks, current)
			current = nil
			recording = false
		default:
			if recording {
				current = append(current, line)
			} else if strings.TrimSpace(line) != "" {
				return nil, nil, VinaError{message: StrayLine, line: nline, critical: true}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, VinaError{message: err.Error(), critical: true}
	}
	if recording {
		return nil, nil, VinaError{message: UnterminatedPose, line: nline, critical: true}
	}
	if len(blocks) != len(scores) {
		//unreachable as long as the per-block checks above hold.
		return nil, nil, VinaError{message: ScoreMismatch, critical: true}
	}
	molecules := make([]*Molecule, 0, len(blocks))
	for i, block := range blocks {
		pdb, err := conv.ConvertBlock(block)
		if err != nil {
			return nil, nil, VinaError{message: fmt.Sprintf("Couldn't convert pose %d: %s", i+1, err.Error()), critical: true}
		}
		mol, err := loader.LoadBlock(pdb)
		if err != nil {
			return nil, nil, VinaError{message: fmt.Sprintf("Couldn't load pose %d: %s", i+1, err.Error()), critical: true}
		}
		molecules = append(molecules, mol)
	}
	return molecules, scores, nil
}

//LoadDockedLigands reads the ligand poses docked by AutoDock Vina from the
//named output file, converting each PDBQT pose block to PDB and loading it
//with the package's own PDB reader. Files ending in ".gz" are decompressed
//on the fly. It returns the molecules, with 3D information and hydrogens
//preserved, and the associated Vina scores.
func LoadDockedLigands(name string) ([]*Molecule, []float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, VinaError{message: err.Error(), filename: name, critical: true}
		}
		defer gz.Close()
		in = gz
	}
	mols, scores, err := ReadDockedLigands(in, PDBLoader{}, PDBQTConverter{})
	if err != nil {
		if verr, ok := err.(VinaError); ok {
			verr.filename = name
			return nil, nil, verr
		}
		return nil, nil, err
	}
	return mols, scores, nil
}

//Errors

//VinaError is the error type for problems with a Vina output file. It
//fulfills dock.Error.
type VinaError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //the offending line, if any (counting from 1).
	deco     []string
	critical bool
}

func (err VinaError) Error() string {
	msg := err.message
	if err.line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, err.line)
	}
	if err.filename != "" {
		return fmt.Sprintf("vina output %s error: %s", err.filename, msg)
	}
	return fmt.Sprintf("vina output error: %s", msg)
}

//Decorate adds new information to the error.
func (err VinaError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing read was associated, if any.
func (err VinaError) FileName() string { return err.filename }

//Format returns the format of the file associated to the error.
func (err VinaError) Format() string { return "pdbqt" }

//Critical returns true if the error is critical, false otherwise.
func (err VinaError) Critical() bool { return err.critical }

const (
	NoBackend        = "No structure loader or pose-block converter available"
	StrayLine        = "Line outside of any MODEL block"
	StrayEnd         = "ENDMDL without a matching MODEL"
	UnterminatedPose = "MODEL block not closed by ENDMDL"
	MissingScore     = "MODEL block has no VINA RESULT annotation"
	DoubleScore      = "MODEL block has more than one VINA RESULT annotation"
	ShortResult      = "VINA RESULT annotation has too few fields"
	ScoreMismatch    = "Pose and score counts don't match"
)
