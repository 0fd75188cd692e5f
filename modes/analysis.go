/*
 * analysis.go, part of goKin.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goKin is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package modes

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/mat"
)

// Overlap returns the overlap matrix m1^T*m2 between two sets of modes stored
// as the columns of m1 and m2. The columns of both matrices must have the
// same length.
func Overlap(m1, m2 *matrix.DenseMatrix) (*matrix.DenseMatrix, error) {
	if m1.Rows() != m2.Rows() {
		return nil, Error{fmt.Sprintf("mode matrices must have columns of equal length, found %d and %d", m1.Rows(), m2.Rows()), "", []string{"Overlap"}}
	}
	return matrix.ParallelProduct(m1.Transpose(), m2), nil
}

// WriteOverlap writes an overlap matrix to a semicolon-separated file,
// bordered by the two frequency vectors: the first line holds freqs2, and
// each following line starts with one entry of freqs1 followed by the
// corresponding row of the overlap matrix.
func WriteOverlap(freqs1, freqs2 []float64, overlap *matrix.DenseMatrix, filename string) error {
	if len(freqs1) != overlap.Rows() || len(freqs2) != overlap.Cols() {
		return Error{fmt.Sprintf("overlap is %dx%d but %d and %d frequencies were given", overlap.Rows(), overlap.Cols(), len(freqs1), len(freqs2)), filename, []string{"WriteOverlap"}}
	}
	fout, err := os.Create(filename)
	if err != nil {
		return Error{UnableToOpen, filename, []string{"WriteOverlap"}}
	}
	defer fout.Close()
	cols := make([]string, len(freqs2))
	for i, f := range freqs2 {
		cols[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	fmt.Fprintf(fout, ";%s\n", strings.Join(cols, ";"))
	for i, f := range freqs1 {
		row := make([]string, overlap.Cols())
		for j := range row {
			row[j] = strconv.FormatFloat(overlap.Get(i, j), 'g', -1, 64)
		}
		fmt.Fprintf(fout, "%s;%s\n", strconv.FormatFloat(f, 'g', -1, 64), strings.Join(row, ";"))
	}
	return nil
}

// DeltaVector returns the conformational-change vector between two Nx3
// coordinate sets as a mass-weighted, normalized 3Nx1 column: the element-wise
// difference coord1-coord2, with each atom's displacement scaled by the square
// root of its mass.
func DeltaVector(masses []float64, coord1, coord2 *matrix.DenseMatrix) (*matrix.DenseMatrix, error) {
	if coord1.Rows() != coord2.Rows() || coord1.Cols() != 3 || coord2.Cols() != 3 {
		return nil, Error{fmt.Sprintf("need two Nx3 coordinate matrices with matching N, found %dx%d and %dx%d", coord1.Rows(), coord1.Cols(), coord2.Rows(), coord2.Cols()), "", []string{"DeltaVector"}}
	}
	if len(masses) != coord1.Rows() {
		return nil, Error{fmt.Sprintf("%d masses for %d atoms", len(masses), coord1.Rows()), "", []string{"DeltaVector"}}
	}
	n := coord1.Rows()
	delta := make([]float64, 3*n)
	var norm float64
	for i := 0; i < n; i++ {
		w := math.Sqrt(masses[i])
		for j := 0; j < 3; j++ {
			d := (coord1.Get(i, j) - coord2.Get(i, j)) * w
			delta[3*i+j] = d
			norm += d * d
		}
	}
	if norm == 0 {
		return nil, Error{"the two conformations are identical", "", []string{"DeltaVector"}}
	}
	norm = math.Sqrt(norm)
	for i := range delta {
		delta[i] /= norm
	}
	return matrix.MakeDenseMatrix(delta, 3*n, 1), nil
}

// Sensitivity builds the sensitivity matrix of the mode in the given column
// of modes with respect to the mass-weighted Hessian elements,
// S_ij = 2*m_i*m_j with S_ii = m_i^2, and returns it together with its
// eigenvalues in ascending order.
func Sensitivity(modes *matrix.DenseMatrix, index int) (*matrix.DenseMatrix, []float64, error) {
	l := modes.Rows()
	if index < 0 || index >= modes.Cols() {
		return nil, nil, Error{fmt.Sprintf("mode index %d out of range (0 to %d)", index, modes.Cols()-1), "", []string{"Sensitivity"}}
	}
	mode := make([]float64, l)
	for i := 0; i < l; i++ {
		mode[i] = modes.Get(i, index)
	}
	sens := matrix.Zeros(l, l)
	sym := mat.NewSymDense(l, nil)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			v := 2 * mode[i] * mode[j]
			if i == j {
				v -= mode[i] * mode[i]
			}
			sens.Set(i, j, v)
			if j >= i {
				sym.SetSym(i, j, v)
			}
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, nil, Error{"eigendecomposition of the sensitivity matrix failed", "", []string{"Sensitivity"}}
	}
	return sens, eig.Values(nil), nil
}
