/*
 * doc.go, part of godock.
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

/*Package dock bridges the file formats of AutoDock Vina to an in-memory
representation of molecules.


	**goDock capabilities**

    Writes AutoDock Vina configuration files from the docking-box geometry.

    Reads those configuration files back.

    Reads multi-pose Vina output (PDBQT) files, recovering one molecule,
	with its 3D coordinates and its predicted affinity, per pose.
	Plain and gzip-compressed outputs are supported.

    Converts PDBQT pose blocks to plain PDB blocks.

    Reads and writes PDB files. The reader keeps hydrogens and performs
	no sanitization or bond perception whatsoever: atoms are stored as
	written.

    Computes the centroid and box dimensions of a set of coordinates,
	to define a docking box around a binding site.

goDock does not perform any docking itself. It prepares input for, and
digests output from, the external docking engine.
*/
package dock
