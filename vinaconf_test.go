/*
 * vinaconf_test.go, part of godock.
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
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/godock/v3"
)

func TestWriteConf(Te *testing.T) {
	centroid, _ := v3.NewMatrix([]float64{1.0, 2.0, 3.0})
	boxsize, _ := v3.NewMatrix([]float64{10.0, 10.0, 10.0})
	var b strings.Builder
	err := WriteConf(&b, "rec.pdbqt", "lig.pdbqt", centroid, boxsize, 9, 8)
	if err != nil {
		Te.Error(err)
	}
	want := "receptor = rec.pdbqt\n" +
		"ligand = lig.pdbqt\n\n" +
		"center_x = 1.000000\n" +
		"center_y = 2.000000\n" +
		"center_z = 3.000000\n\n" +
		"size_x = 10.000000\n" +
		"size_y = 10.000000\n" +
		"size_z = 10.000000\n\n" +
		"num_modes = 9\n\n" +
		"exhaustiveness = 8\n"
	if b.String() != want {
		Te.Errorf("Wrong configuration written:\n%q\nwanted:\n%q", b.String(), want)
	}
}

func TestWriteConfNoExhaustiveness(Te *testing.T) {
	centroid, _ := v3.NewMatrix([]float64{1.0, 2.0, 3.0})
	boxsize, _ := v3.NewMatrix([]float64{10.0, 10.0, 10.0})
	var b strings.Builder
	err := WriteConf(&b, "rec.pdbqt", "lig.pdbqt", centroid, boxsize, 0)
	if err != nil {
		Te.Error(err)
	}
	if strings.Contains(b.String(), "exhaustiveness") {
		Te.Error("exhaustiveness line written even though no exhaustiveness was given")
	}
	if !strings.Contains(b.String(), "num_modes = 9\n") {
		Te.Error("num_modes didn't default to 9")
	}
}

func TestConfRoundTrip(Te *testing.T) {
	centroid, _ := v3.NewMatrix([]float64{15.19, -0.03, 22.5})
	boxsize, _ := v3.NewMatrix([]float64{20.0, 18.5, 22.25})
	name := "test/conf.txt"
	err := ConfFileWrite(name, "prot.pdbqt", "drug.pdbqt", centroid, boxsize, 10, 16)
	if err != nil {
		Te.Fatal(err)
	}
	conf, err := ConfFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if conf.Receptor != "prot.pdbqt" || conf.Ligand != "drug.pdbqt" {
		Te.Errorf("Wrong file names recovered: %s %s", conf.Receptor, conf.Ligand)
	}
	if conf.NumModes != 10 || conf.Exhaustiveness != 16 {
		Te.Errorf("Wrong modes/exhaustiveness recovered: %d %d", conf.NumModes, conf.Exhaustiveness)
	}
	for i := 0; i < 3; i++ {
		if math.Abs(conf.Center.At(0, i)-centroid.At(0, i)) > 1e-6 {
			Te.Errorf("Center component %d not recovered: %f vs %f", i, conf.Center.At(0, i), centroid.At(0, i))
		}
		if math.Abs(conf.Size.At(0, i)-boxsize.At(0, i)) > 1e-6 {
			Te.Errorf("Size component %d not recovered: %f vs %f", i, conf.Size.At(0, i), boxsize.At(0, i))
		}
	}
}

func TestWriteConfBadInput(Te *testing.T) {
	good, _ := v3.NewMatrix([]float64{1, 2, 3})
	bad, _ := v3.NewMatrix([]float64{1, 2, 3, 4, 5, 6}) //2 vectors, not 1
	var b strings.Builder
	if err := WriteConf(&b, "r", "l", bad, good, 9); err == nil {
		Te.Error("WriteConf accepted a 2x3 centroid")
	}
	if err := WriteConf(&b, "r", "l", good, good, -1); err == nil {
		Te.Error("WriteConf accepted a negative num_modes")
	}
	if err := WriteConf(&b, "r", "l", good, good, 9, 0); err == nil {
		Te.Error("WriteConf accepted a non-positive exhaustiveness")
	}
	if err := WriteConf(&b, "r", "l", nil, good, 9); err == nil {
		Te.Error("WriteConf accepted a nil centroid")
	}
}
