/*
 * partition_test.go, part of goKin.
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
 */

package kin

import (
	"math"
	"testing"
)

func TestNewVibrational(Te *testing.T) {
	v := NewVibrational([]float64{-0.001, 0.002, 0, 0.003})
	if len(v.Freqs) != 2 || v.Freqs[0] != 0.002 || v.Freqs[1] != 0.003 {
		Te.Error("wrong real frequencies:", v.Freqs)
	}
	if len(v.NegativeFreqs) != 1 || v.NegativeFreqs[0] != 0.001 {
		Te.Error("imaginary frequencies should be stored as magnitudes:", v.NegativeFreqs)
	}
}

func TestNewPartFunValidation(Te *testing.T) {
	if _, err := NewPartFun(nil, NewVibrational(nil), nil, nil); err == nil || !IsKind(err, InvalidInput) {
		Te.Error("a partition function without an electronic part should fail")
	}
	if _, err := NewPartFun(&Electronic{}, nil, nil, nil); err == nil || !IsKind(err, InvalidInput) {
		Te.Error("a partition function without a vibrational part should fail")
	}
}

// With an empty spectrum the partition function reduces to its electronic
// term.
func TestElectronicDominance(Te *testing.T) {
	energy := 50 * KJMol
	pf, err := NewPartFun(&Electronic{Energy: energy, Multiplicity: 1}, NewVibrational(nil), nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	temp := 300.0
	want := -energy / (Boltzmann * temp)
	if got := pf.LogZ(temp); math.Abs(got-want) > 1e-10*math.Abs(want) {
		Te.Error("expected the bare electronic term", want, "got", got)
	}
	//a doublet gains ln(2)
	pf2, _ := NewPartFun(&Electronic{Energy: energy, Multiplicity: 2}, NewVibrational(nil), nil, nil)
	if got := pf2.LogZ(temp) - pf.LogZ(temp); math.Abs(got-math.Log(2)) > 1e-12 {
		Te.Error("multiplicity 2 should add ln(2), added", got)
	}
}

// The optional contributions must grow with temperature (more accessible
// states) and only appear when set.
func TestOptionalContributions(Te *testing.T) {
	trans := &Translational{Mass: 16 * Amu}
	rot := &Rotational{SymmetryNumber: 2, Inertia: []float64{1e4, 2e4, 3e4}}
	if trans.LogZ(600) <= trans.LogZ(300) {
		Te.Error("translational partition function should grow with temperature")
	}
	if rot.LogZ(600) <= rot.LogZ(300) {
		Te.Error("rotational partition function should grow with temperature")
	}
	lin := &Rotational{Inertia: []float64{1e4}}
	if l := lin.LogZ(300); math.IsNaN(l) || math.IsInf(l, 0) {
		Te.Error("bad linear-rotor value", l)
	}
	el := &Electronic{Energy: 0, Multiplicity: 1}
	base, _ := NewPartFun(el, NewVibrational(nil), nil, nil)
	full, _ := NewPartFun(el, NewVibrational(nil), trans, rot)
	if full.LogZ(300) != base.LogZ(300)+trans.LogZ(300)+rot.LogZ(300) {
		Te.Error("contributions should add up in LogZ")
	}
}

// The vibrational term must be continuous in content: adding a frequency
// lowers the partition function (the ZPE term wins at these conditions).
func TestVibrationalLogZ(Te *testing.T) {
	v := NewVibrational([]float64{wavenumber(1000)})
	l := v.LogZ(300)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		Te.Fatal("bad vibrational LogZ", l)
	}
	v2 := NewVibrational([]float64{wavenumber(1000), wavenumber(2000)})
	if v2.LogZ(300) >= l {
		Te.Error("an extra hard mode should lower LogZ at room temperature")
	}
	//the imaginary mode of a transition state must not contribute
	v3 := NewVibrational([]float64{wavenumber(1000), -wavenumber(500)})
	if v3.LogZ(300) != l {
		Te.Error("imaginary modes should not contribute to LogZ")
	}
}
