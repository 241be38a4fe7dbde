/*
 * vinaconf.go, part of godock.
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

//DefaultNumModes is the number of binding modes Vina is asked for when the
//caller doesn't request a specific number.
const DefaultNumModes = 9

//Conf contains the options of an AutoDock Vina run: the file names of the
//receptor and ligand, the center and dimensions of the docking box, the
//number of binding modes wanted and, optionally, the exhaustiveness of the
//search (0 means "not given, use Vina's default").
type Conf struct {
	Receptor       string
	Ligand         string
	Center         *v3.Matrix
	Size           *v3.Matrix
	NumModes       int
	Exhaustiveness int
}

//WriteConf writes to out a configuration for AutoDock Vina, directing it to
//dock ligand against receptor in a box of dimensions boxsize centered at
//centroid. centroid and boxsize must be 1x3. nmodes is the number of binding
//modes wanted; giving 0 means DefaultNumModes. An exhaustiveness for the
//search may be given as an optional last argument; if absent, no
//exhaustiveness line is written and Vina uses its own default.
func WriteConf(out io.Writer, receptor, ligand string, centroid, boxsize *v3.Matrix, nmodes int, exhaustiveness ...int) error {
	if centroid == nil || boxsize == nil {
		return CError{string(ErrNilCoords), []string{"WriteConf"}}
	}
	if centroid.NVecs() != 1 || boxsize.NVecs() != 1 {
		return CError{string(ErrNotAVector), []string{"WriteConf"}}
	}
	if nmodes == 0 {
		nmodes = DefaultNumModes
	}
	if nmodes < 0 {
		return CError{fmt.Sprintf("goDock: num_modes must be positive, got %d", nmodes), []string{"WriteConf"}}
	}
	if len(exhaustiveness) > 0 && exhaustiveness[0] <= 0 {
		return CError{fmt.Sprintf("goDock: exhaustiveness must be positive, got %d", exhaustiveness[0]), []string{"WriteConf"}}
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "receptor = %s\n", receptor)
	fmt.Fprintf(w, "ligand = %s\n\n", ligand)
	fmt.Fprintf(w, "center_x = %f\n", centroid.At(0, 0))
	fmt.Fprintf(w, "center_y = %f\n", centroid.At(0, 1))
	fmt.Fprintf(w, "center_z = %f\n\n", centroid.At(0, 2))
	fmt.Fprintf(w, "size_x = %f\n", boxsize.At(0, 0))
	fmt.Fprintf(w, "size_y = %f\n", boxsize.At(0, 1))
	fmt.Fprintf(w, "size_z = %f\n\n", boxsize.At(0, 2))
	fmt.Fprintf(w, "num_modes = %d\n\n", nmodes)
	if len(exhaustiveness) > 0 {
		fmt.Fprintf(w, "exhaustiveness = %d\n", exhaustiveness[0])
	}
	return w.Flush()
}

//ConfFileWrite writes an AutoDock Vina configuration file with the given
//name, overwriting any previous content. See WriteConf for the meaning of
//the other arguments.
func ConfFileWrite(name, receptor, ligand string, centroid, boxsize *v3.Matrix, nmodes int, exhaustiveness ...int) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	return WriteConf(out, receptor, ligand, centroid, boxsize, nmodes, exhaustiveness...)
}

//ReadConf parses a Vina configuration back into a Conf. Unknown keys are
//ignored. If any of the center or size components is present, all three
//must be.
func ReadConf(in io.Reader) (*Conf, error) {
	conf := new(Conf)
	center := make(map[string]float64)
	size := make(map[string]float64)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, CError{fmt.Sprintf("Line is not a key = value pair: %q", line), []string{"ReadConf"}}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		var err error
		switch key {
		case "receptor":
			conf.Receptor = value
		case "ligand":
			conf.Ligand = value
		case "center_x", "center_y", "center_z":
			center[key], err = strconv.ParseFloat(value, 64)
		case "size_x", "size_y", "size_z":
			size[key], err = strconv.ParseFloat(value, 64)
		case "num_modes":
			conf.NumModes, err = strconv.Atoi(value)
		case "exhaustiveness":
			conf.Exhaustiveness, err = strconv.Atoi(value)
		}
		if err != nil {
			return nil, CError{fmt.Sprintf("Couldn't parse value for %s: %s", key, err.Error()), []string{"ReadConf"}}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), []string{"bufio.Scanner", "ReadConf"}}
	}
	var err error
	conf.Center, err = confVector(center, "center")
	if err != nil {
		return nil, errDecorate(err, "ReadConf")
	}
	conf.Size, err = confVector(size, "size")
	if err != nil {
		return nil, errDecorate(err, "ReadConf")
	}
	return conf, nil
}

//ConfFileRead reads a Vina configuration file from the disk.
func ConfFileRead(name string) (*Conf, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadConf(f)
}

//confVector assembles the x, y and z components found for the given key
//into a 1x3 vector. All three components, or none, must be present.
func confVector(comp map[string]float64, key string) (*v3.Matrix, error) {
	if len(comp) == 0 {
		return nil, nil
	}
	data := make([]float64, 3)
	for i, axis := range []string{"_x", "_y", "_z"} {
		v, ok := comp[key+axis]
		if !ok {
			return nil, CError{fmt.Sprintf("Missing %s%s in configuration", key, axis), []string{"confVector"}}
		}
		data[i] = v
	}
	return v3.NewMatrix(data)
}
