/*
 * tunneling_test.go, part of goKin.
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
	"fmt"
	"math"
	"testing"
)

// wavenumber converts a frequency in cm-1 to atomic units.
func wavenumber(w float64) float64 {
	return w * LightSpeed / CM
}

// makePF builds a partition function with only electronic (energy in Hartree)
// and vibrational (frequencies in cm-1, negative for imaginary) parts.
func makePF(energy float64, freqs []float64) *PartFun {
	au := make([]float64, len(freqs))
	for i, f := range freqs {
		au[i] = wavenumber(f)
	}
	pf, err := NewPartFun(&Electronic{Energy: energy, Multiplicity: 1}, NewVibrational(au), nil, nil)
	if err != nil {
		panic(err.Error())
	}
	return pf
}

// A transition state with no imaginary frequency means no correction at all,
// for both closed-form models.
func TestZeroFrequencyLimits(Te *testing.T) {
	w := WignerFromParameters(0)
	m := MillerFromParameters(0)
	for _, temp := range []float64{200, 298.15, 700, 2000} {
		if f := w.Factor(temp); f != 1 {
			Te.Error("Wigner factor for nu=0 should be 1, got", f, "at", temp, "K")
		}
		if f := m.Factor(temp); f != 1 {
			Te.Error("Miller factor for nu=0 should be 1, got", f, "at", temp, "K")
		}
	}
}

func TestWignerMiller(Te *testing.T) {
	nu := wavenumber(1000)
	w := WignerFromParameters(nu)
	m := MillerFromParameters(nu)
	prev := math.Inf(1)
	for _, temp := range []float64{300, 500, 700, 1000, 2000} {
		fw := w.Factor(temp)
		fm := m.Factor(temp)
		if math.IsNaN(fw) || math.IsInf(fw, 0) || fw < 1 {
			Te.Error("bad Wigner factor", fw, "at", temp, "K")
		}
		if math.IsNaN(fm) || math.IsInf(fm, 0) || fm < 1 {
			Te.Error("bad Miller factor", fm, "at", temp, "K")
		}
		if fw > prev {
			Te.Error("Wigner factor should decrease with temperature")
		}
		prev = fw
		fmt.Println("T", temp, "Wigner", fw, "Miller", fm)
	}
	//negative input frequencies are taken by magnitude
	if w2 := WignerFromParameters(-nu); w2.Factor(300) != w.Factor(300) {
		Te.Error("Wigner should only see the magnitude of the frequency")
	}
}

// Below the validity range of Miller's formula (x past pi) the factor goes
// negative. That has to reach the caller as-is, not clamped to something
// physical-looking.
func TestMillerValidityLimit(Te *testing.T) {
	m := MillerFromParameters(wavenumber(1000))
	f := m.Factor(200) //x is about 3.6 here
	if f >= 0 {
		Te.Error("Miller factor past the singularity should surface as negative, got", f)
	}
	fmt.Println("Miller factor past validity limit:", f)
}

func TestEckartInvalidBarrier(Te *testing.T) {
	nu := wavenumber(1000)
	if _, err := EckartFromParameters(-1*KJMol, 5*KJMol, nu); err == nil {
		Te.Error("negative forward barrier should fail")
	} else if !IsKind(err, InvalidBarrier) {
		Te.Error("expected an InvalidBarrier error, got:", err.Error())
	}
	if _, err := EckartFromParameters(5*KJMol, -1*KJMol, nu); err == nil {
		Te.Error("negative reverse barrier should fail")
	} else if !IsKind(err, InvalidBarrier) {
		Te.Error("expected an InvalidBarrier error, got:", err.Error())
	}
	//the primary path must catch the same inconsistency
	react := makePF(10*KJMol, []float64{1000, 1500})
	ts := makePF(5*KJMol, []float64{-1000, 900})
	prod := makePF(0, []float64{1100})
	if _, err := NewEckart([]*PartFun{react}, ts, []*PartFun{prod}); err == nil || !IsKind(err, InvalidBarrier) {
		Te.Error("transition state below the reactants should give InvalidBarrier")
	}
}

func TestEckartInvalidTransitionState(Te *testing.T) {
	react := makePF(0, []float64{1000})
	prod := makePF(0, []float64{1100})
	for _, freqs := range [][]float64{{900, 1800}, {-1000, -500, 900}} {
		ts := makePF(50*KJMol, freqs)
		_, err := NewEckart([]*PartFun{react}, ts, []*PartFun{prod})
		if err == nil {
			Te.Error("transition state with", len(freqs), "frequencies of which not exactly one imaginary should fail")
			continue
		}
		if !IsKind(err, InvalidTransitionState) {
			Te.Error("expected an InvalidTransitionState error, got:", err.Error())
		}
	}
	if _, err := NewWigner(makePF(0, []float64{900, 1800})); err == nil || !IsKind(err, InvalidTransitionState) {
		Te.Error("Wigner should reject a transition state without an imaginary frequency")
	}
	if _, err := NewMiller(makePF(0, []float64{900, 1800})); err == nil || !IsKind(err, InvalidTransitionState) {
		Te.Error("Miller should reject a transition state without an imaginary frequency")
	}
}

func TestEckartEmptySpecies(Te *testing.T) {
	ts := makePF(50*KJMol, []float64{-1200, 900})
	prod := makePF(0, []float64{1100})
	if _, err := NewEckart(nil, ts, []*PartFun{prod}); err == nil || !IsKind(err, InvalidInput) {
		Te.Error("an empty reactant list should give InvalidInput")
	}
	react := makePF(0, []float64{1000})
	if _, err := NewEckart([]*PartFun{react}, ts, nil); err == nil || !IsKind(err, InvalidInput) {
		Te.Error("an empty product list should give InvalidInput")
	}
}

// A symmetric 50 kJ/mol barrier with a C-H-stretch-like imaginary mode: the
// correction must decrease monotonically with temperature and approach 1 in
// the high-temperature limit.
func TestEckartMonotonic(Te *testing.T) {
	e, err := EckartFromParameters(50*KJMol, 50*KJMol, wavenumber(1200))
	if err != nil {
		Te.Fatal(err)
	}
	temps := make([]float64, 0, 19)
	for t := 200.0; t <= 2000; t += 100 {
		temps = append(temps, t)
	}
	factors := e.Factors(temps)
	for i, f := range factors {
		if math.IsNaN(f) || f <= 0 {
			Te.Fatal("bad Eckart factor", f, "at", temps[i], "K")
		}
		if i > 0 && f > factors[i-1]*(1+1e-8) {
			Te.Error("Eckart factor should not increase with temperature:", factors[i-1], "->", f, "at", temps[i], "K")
		}
	}
	fmt.Println("Eckart factors, 200K to 2000K:", factors)
	if factors[0] < 2 {
		Te.Error("expected a substantial low-temperature correction, got", factors[0])
	}
	last := factors[len(factors)-1]
	if last < 0.98 || last > 1.15 {
		Te.Error("Eckart factor should approach 1 at high temperature, got", last)
	}
}

// The from-parameters path has to reproduce the primary, partition-function
// path exactly.
func TestEckartRoundTrip(Te *testing.T) {
	react := makePF(0, []float64{1000, 1500})
	ts := makePF(50*KJMol, []float64{-1200, 900, 1800})
	prod := makePF(10*KJMol, []float64{1100})
	e1, err := NewEckart([]*PartFun{react}, ts, []*PartFun{prod})
	if err != nil {
		Te.Fatal(err)
	}
	e2, err := EckartFromParameters(50*KJMol, 50*KJMol-10*KJMol, wavenumber(1200))
	if err != nil {
		Te.Fatal(err)
	}
	temps := []float64{250, 300, 500, 1000}
	f1 := e1.Factors(temps)
	f2 := e2.Factors(temps)
	for i := range f1 {
		if math.Abs(f1[i]-f2[i]) > 1e-10*f2[i] {
			Te.Error("round-trip mismatch at", temps[i], "K:", f1[i], "vs", f2[i])
		}
	}
}

// With equal barriers the integration interval starts at zero; building the
// symmetric case through partition functions must match the directly
// constructed instance.
func TestEckartSymmetric(Te *testing.T) {
	react := makePF(0, []float64{1000})
	ts := makePF(50*KJMol, []float64{-1200, 900})
	prod := makePF(0, []float64{1000})
	e1, err := NewEckart([]*PartFun{react}, ts, []*PartFun{prod})
	if err != nil {
		Te.Fatal(err)
	}
	e2, err := EckartFromParameters(50*KJMol, 50*KJMol, wavenumber(1200))
	if err != nil {
		Te.Fatal(err)
	}
	if e1.Ef() != e1.Er() {
		Te.Error("expected a symmetric barrier, got", e1.Ef(), e1.Er())
	}
	for _, temp := range []float64{250, 400, 800} {
		f1 := e1.Factor(temp)
		f2 := e2.Factor(temp)
		if math.Abs(f1-f2) > 1e-10*f2 {
			Te.Error("symmetric-barrier mismatch at", temp, "K:", f1, "vs", f2)
		}
	}
}

func TestFactorsShape(Te *testing.T) {
	e, err := EckartFromParameters(50*KJMol, 40*KJMol, wavenumber(1000))
	if err != nil {
		Te.Fatal(err)
	}
	temps := []float64{300, 400, 500}
	for _, tc := range []TunnelingCorrection{WignerFromParameters(wavenumber(1000)), MillerFromParameters(wavenumber(1000)), e} {
		factors := tc.Factors(temps)
		if len(factors) != len(temps) {
			Te.Fatalf("%T: got %d factors for %d temperatures", tc, len(factors), len(temps))
		}
		for i, temp := range temps {
			if factors[i] != tc.Factor(temp) {
				Te.Errorf("%T: Factors and Factor disagree at %g K", tc, temp)
			}
		}
	}
}

func TestEckartConcurrent(Te *testing.T) {
	e, err := EckartFromParameters(50*KJMol, 40*KJMol, wavenumber(1000))
	if err != nil {
		Te.Fatal(err)
	}
	temps := []float64{250, 300, 400, 600, 900, 1500}
	serial := e.Factors(temps)
	conc := e.FactorsConc(temps)
	for i := range temps {
		if serial[i] != conc[i] {
			Te.Error("concurrent evaluation differs at", temps[i], "K:", serial[i], "vs", conc[i])
		}
	}
}
