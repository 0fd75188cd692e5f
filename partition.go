/*
 * partition.go, part of goKin.
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

package kin

import "math"

// Electronic is the electronic contribution to a partition function: the
// total electronic energy of the species (in Hartree) and its spin
// multiplicity. A zero multiplicity is taken as a singlet.
type Electronic struct {
	Energy       float64
	Multiplicity int
}

// LogZ returns the natural logarithm of the electronic partition function at
// the temperature temp (K).
func (e *Electronic) LogZ(temp float64) float64 {
	g := 1.0
	if e.Multiplicity > 1 {
		g = float64(e.Multiplicity)
	}
	return -e.Energy/(Boltzmann*temp) + math.Log(g)
}

// Vibrational is the vibrational contribution to a partition function. Freqs
// holds the real (positive) harmonic frequencies and NegativeFreqs the
// magnitudes of the imaginary modes, all in atomic units. A minimum (a
// reactant or a product) has no imaginary modes; a transition state has
// exactly one.
type Vibrational struct {
	Freqs         []float64
	NegativeFreqs []float64
}

// NewVibrational builds a Vibrational from a full harmonic spectrum, splitting
// it into real frequencies and magnitudes of imaginary ones. Frequencies that
// are exactly zero (remnants of external translation/rotation) are discarded.
func NewVibrational(freqs []float64) *Vibrational {
	v := new(Vibrational)
	for _, f := range freqs {
		if f < 0 {
			v.NegativeFreqs = append(v.NegativeFreqs, -f)
		} else if f > 0 {
			v.Freqs = append(v.Freqs, f)
		}
	}
	return v
}

// LogZ returns the natural logarithm of the quantum harmonic-oscillator
// partition function at temp, including the zero-point energy term. Only the
// real frequencies contribute; the reaction coordinate of a transition state
// is excluded by construction.
func (v *Vibrational) LogZ(temp float64) float64 {
	var ret float64
	kt := Boltzmann * temp
	for _, f := range v.Freqs {
		hnu := Planck * f
		ret += -hnu/(2*kt) - math.Log(1-math.Exp(-hnu/kt))
	}
	return ret
}

// Translational is the ideal-gas translational contribution. Mass is the
// molecular mass in electron masses (multiply amu values by Amu). Pressure
// sets the molecular volume kB*T/p; if zero, one atmosphere is used.
type Translational struct {
	Mass     float64
	Pressure float64
}

func (t *Translational) LogZ(temp float64) float64 {
	kt := Boltzmann * temp
	p := t.Pressure
	if p == 0 {
		p = Atm
	}
	//with hbar=1 the thermal wavelength term is (m*kT/(2*pi))^(3/2)
	return 1.5*math.Log(t.Mass*kt/(2*math.Pi)) + math.Log(kt/p)
}

// Rotational is the classical rigid-rotor contribution. Inertia holds the
// principal moments of inertia in atomic units: one moment for a linear
// rotor, three for a nonlinear one. A zero symmetry number is taken as 1.
type Rotational struct {
	SymmetryNumber int
	Inertia        []float64
}

func (r *Rotational) LogZ(temp float64) float64 {
	kt := Boltzmann * temp
	sigma := 1.0
	if r.SymmetryNumber > 1 {
		sigma = float64(r.SymmetryNumber)
	}
	if len(r.Inertia) == 1 {
		return math.Log(2*r.Inertia[0]*kt) - math.Log(sigma)
	}
	prod := 1.0
	for _, in := range r.Inertia {
		prod *= 2 * in * kt
	}
	return 0.5*math.Log(math.Pi*prod) - math.Log(sigma)
}

// PartFun is the partition function of one species, as the product of its
// contributions. Electronic and Vibrational are always present; Translational
// and Rotational may be nil, in which case they simply do not contribute
// (useful for the relative rates this library deals with, where common
// factors cancel).
type PartFun struct {
	Electronic    *Electronic
	Vibrational   *Vibrational
	Translational *Translational
	Rotational    *Rotational
}

// NewPartFun builds a partition function from its contributions. The
// electronic and vibrational parts are required; trans and rot may be nil.
func NewPartFun(el *Electronic, vib *Vibrational, trans *Translational, rot *Rotational) (*PartFun, error) {
	if el == nil || vib == nil {
		return nil, CError{InvalidInput, "goKin: a partition function requires electronic and vibrational contributions", []string{"NewPartFun"}}
	}
	return &PartFun{el, vib, trans, rot}, nil
}

// LogZ returns the natural logarithm of the total partition function at temp.
func (pf *PartFun) LogZ(temp float64) float64 {
	ret := pf.Electronic.LogZ(temp) + pf.Vibrational.LogZ(temp)
	if pf.Translational != nil {
		ret += pf.Translational.LogZ(temp)
	}
	if pf.Rotational != nil {
		ret += pf.Rotational.LogZ(temp)
	}
	return ret
}
