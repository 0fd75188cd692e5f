/*
 * modes.go, part of goKin.
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

//Package modes reads legacy normal-mode and frequency files (semicolon-separated
//frequency and mode tables, CHARMM coordinate files and CHARMM VIBRAN mode
//files) and provides mode-overlap, conformational-change and sensitivity
//analyses on them. All readers handle gzip-compressed files transparently:
//just give them a name ending in ".gz". Frequencies are returned in atomic
//units, ready to feed kin.NewVibrational.
package modes

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	kin "github.com/rmera/gokin"
	matrix "github.com/skelterjohn/go.matrix"
)

// openFile opens a legacy data file, transparently decompressing the stream
// when the name ends in ".gz".
func openFile(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"openFile"}}
	}
	if strings.HasSuffix(filename, ".gz") {
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{WrongFormat, filename, []string{"openFile"}}
		}
		return &gzFile{g, f}, nil
	}
	return f, nil
}

// gzFile closes both the decompressor and the underlying file.
type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

// ReadFreqs reads frequencies from a semicolon-separated file with one
// frequency starting each line; anything after the first field of a line is
// ignored. Empty lines are skipped. The values are returned as they are in
// the file, which for this format is atomic units.
func ReadFreqs(filename string) ([]float64, error) {
	fin, err := openFile(filename)
	if err != nil {
		return nil, errDecorate(err, "ReadFreqs")
	}
	defer fin.Close()
	freqs := make([]float64, 0, 30)
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words := strings.Split(line, ";")
		f, err := strconv.ParseFloat(strings.TrimSpace(words[0]), 64)
		if err != nil {
			return nil, Error{WrongFormat, filename, []string{"ReadFreqs"}}
		}
		freqs = append(freqs, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), filename, []string{"ReadFreqs"}}
	}
	return freqs, nil
}

// ReadModes reads a semicolon-separated mode matrix, one mode per line. A
// trailing separator at the end of a line is tolerated. All lines must have
// the same number of fields.
func ReadModes(filename string) (*matrix.DenseMatrix, error) {
	fin, err := openFile(filename)
	if err != nil {
		return nil, errDecorate(err, "ReadModes")
	}
	defer fin.Close()
	var vals []float64
	rows := 0
	cols := -1
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words := strings.Split(strings.TrimSuffix(line, ";"), ";")
		if cols == -1 {
			cols = len(words)
		} else if len(words) != cols {
			return nil, Error{WrongFormat, filename, []string{"ReadModes"}}
		}
		for _, w := range words {
			v, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
			if err != nil {
				return nil, Error{WrongFormat, filename, []string{"ReadModes"}}
			}
			vals = append(vals, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), filename, []string{"ReadModes"}}
	}
	if rows == 0 {
		return nil, Error{"empty modes file", filename, []string{"ReadModes"}}
	}
	return matrix.MakeDenseMatrix(vals, rows, cols), nil
}

// ReadCharmmCor reads a CHARMM coordinate file: masses, atom symbols, and an
// Nx3 coordinate matrix. Lines starting with '*' are comments; the first
// non-comment line carries the number of atoms.
func ReadCharmmCor(filename string) ([]float64, []string, *matrix.DenseMatrix, error) {
	fin, err := openFile(filename)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "ReadCharmmCor")
	}
	defer fin.Close()
	scanner := bufio.NewScanner(fin)
	natoms := -1
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "*") {
			continue
		}
		natoms, err = strconv.Atoi(strings.Fields(line)[0])
		if err != nil {
			return nil, nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmCor"}}
		}
		break
	}
	if natoms < 0 {
		return nil, nil, nil, Error{"no atom-count line found", filename, []string{"ReadCharmmCor"}}
	}
	masses := make([]float64, 0, natoms)
	symbols := make([]string, 0, natoms)
	coords := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, nil, nil, Error{fmt.Sprintf("file ends after %d of %d atoms", i, natoms), filename, []string{"ReadCharmmCor"}}
		}
		words := strings.Fields(scanner.Text())
		if len(words) < 10 {
			return nil, nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmCor"}}
		}
		symbols = append(symbols, words[3])
		for j := 4; j <= 6; j++ {
			v, err := strconv.ParseFloat(words[j], 64)
			if err != nil {
				return nil, nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmCor"}}
			}
			coords = append(coords, v)
		}
		m, err := strconv.ParseFloat(words[9], 64)
		if err != nil {
			return nil, nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmCor"}}
		}
		masses = append(masses, m)
	}
	return masses, symbols, matrix.MakeDenseMatrix(coords, natoms, 3), nil
}

// ReadCharmmModes reads a mode file produced by the VIBRAN module in CHARMM.
// It returns the modes as the columns of a matrix and the frequencies in
// atomic units; imaginary modes come out as negative frequencies. CHARMM
// modes are already mass-weighted and normalized. nfreqs gives the number of
// modes in the file; pass 0 for a full-Hessian calculation (3*natoms modes).
func ReadCharmmModes(filename string, nfreqs int) (*matrix.DenseMatrix, []float64, error) {
	fin, err := openFile(filename)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadCharmmModes")
	}
	defer fin.Close()
	scanner := bufio.NewScanner(fin)
	natoms := -1
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "*") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 {
			return nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmModes"}}
		}
		natoms, err = strconv.Atoi(words[1])
		if err != nil {
			return nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmModes"}}
		}
		break
	}
	if natoms < 0 {
		return nil, nil, Error{"no header line found", filename, []string{"ReadCharmmModes"}}
	}
	//the masses come 6 per line; we don't use them
	for read := 0; read < natoms; {
		if !scanner.Scan() {
			return nil, nil, Error{"file ends in the mass section", filename, []string{"ReadCharmmModes"}}
		}
		read += len(strings.Fields(scanner.Text()))
	}
	if nfreqs == 0 {
		nfreqs = 3 * natoms
	}
	//frequencies are stored squared; negative squares are imaginary modes
	tocm := kin.CharmmFreq * kin.LightSpeed / kin.CM
	freqs := make([]float64, 0, nfreqs)
	for len(freqs) < nfreqs {
		if !scanner.Scan() {
			return nil, nil, Error{"file ends in the frequency section", filename, []string{"ReadCharmmModes"}}
		}
		for _, w := range strings.Fields(scanner.Text()) {
			sq, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmModes"}}
			}
			f := math.Sqrt(math.Abs(sq))
			if sq < 0 {
				f = -f
			}
			freqs = append(freqs, f*tocm)
		}
	}
	freqs = freqs[:nfreqs]
	vals := make([]float64, 0, nfreqs*3*natoms)
	for scanner.Scan() {
		for _, w := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, nil, Error{WrongFormat, filename, []string{"ReadCharmmModes"}}
			}
			vals = append(vals, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Error{err.Error(), filename, []string{"ReadCharmmModes"}}
	}
	if len(vals) != nfreqs*3*natoms {
		return nil, nil, Error{fmt.Sprintf("expected %d mode components, found %d", nfreqs*3*natoms, len(vals)), filename, []string{"ReadCharmmModes"}}
	}
	//the file stores one mode after another; we want them as columns
	mat := matrix.MakeDenseMatrix(vals, nfreqs, 3*natoms).Transpose()
	return mat, freqs, nil
}

//Errors

// Error is the error type for the legacy-format readers. It implements
// kin.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("goKin/modes file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries
	//to alter the receiver, it should work, since err.deco is a slice, and
	//hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing reader was associated.
func (err Error) FileName() string { return err.filename }

// Kind distinguishes, for kin.IsKind, a file that could not be opened
// (kin.InvalidInput) from one that could not be understood (kin.ParseError).
func (err Error) Kind() string {
	if err.message == WrongFormat {
		return kin.ParseError
	}
	return kin.InvalidInput
}

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in file"
)

// errDecorate is a helper function that asserts that the error implements
// kin.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(kin.Error)
	err2.Decorate(caller)
	return err2
}
