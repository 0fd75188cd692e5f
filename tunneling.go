/*
 * tunneling.go, part of goKin.
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

import (
	"fmt"
	"log"
	"math"
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

// TunnelingCorrection is the interface for quantum-tunneling corrections to
// classical rate constants. A correction object is immutable after
// construction, so it can be shared freely between goroutines, and its methods
// are pure functions of the stored parameters and the given temperature(s).
// Temperatures are in Kelvin and must be positive; non-positive temperatures
// are an input-domain violation and simply propagate as non-finite factors.
type TunnelingCorrection interface {

	//Factor returns the dimensionless multiplicative correction to the rate
	//constant at one temperature.
	Factor(temp float64) float64

	//Factors evaluates the correction over a temperature grid, returning one
	//factor per temperature, in the same order.
	Factors(temps []float64) []float64
}

// imaginaryFreq extracts the magnitude of the single imaginary frequency of a
// transition state, failing if the species does not have exactly one.
func imaginaryFreq(pfTrans *PartFun) (float64, error) {
	if pfTrans == nil {
		return 0, CError{InvalidInput, "goKin: nil transition-state partition function", []string{"imaginaryFreq"}}
	}
	neg := pfTrans.Vibrational.NegativeFreqs
	if len(neg) != 1 {
		return 0, CError{InvalidTransitionState, fmt.Sprintf("goKin: the transition state must have exactly one imaginary frequency, found %d", len(neg)), []string{"imaginaryFreq"}}
	}
	return neg[0], nil //already stored as a magnitude
}

// Wigner implements the tunneling correction proposed in E. Wigner,
// Z. Physik. Chem. B 19, 203 (1932). It only depends on the magnitude of the
// imaginary frequency of the transition state.
type Wigner struct {
	nu float64
}

// NewWigner builds the correction from the partition function of the
// transition state, which must have exactly one imaginary frequency. The
// partition function is only read here; no reference to it is kept.
func NewWigner(pfTrans *PartFun) (*Wigner, error) {
	nu, err := imaginaryFreq(pfTrans)
	if err != nil {
		return nil, errDecorate(err, "NewWigner")
	}
	return &Wigner{nu: nu}, nil
}

// WignerFromParameters builds the correction directly from the imaginary
// frequency, for testing or when the frequency is known from an independent
// source. The sign of nu is ignored: only the magnitude is physical.
func WignerFromParameters(nu float64) *Wigner {
	return &Wigner{nu: math.Abs(nu)}
}

// Factor returns 1 + (h*nu/(kB*T))^2 / 24. The correction diverges as the
// temperature goes to zero.
func (w *Wigner) Factor(temp float64) float64 {
	x := Planck * w.nu / (Boltzmann * temp)
	return 1 + x*x/24
}

func (w *Wigner) Factors(temps []float64) []float64 {
	ret := make([]float64, len(temps))
	for i, t := range temps {
		ret[i] = w.Factor(t)
	}
	return ret
}

// Miller implements the tunneling correction proposed in Miller, W. H.,
// J. Chem. Phys. 1973, 61, 1823. Like Wigner's, it only depends on the
// imaginary frequency of the transition state.
type Miller struct {
	nu float64
}

// NewMiller builds the correction from the partition function of the
// transition state, which must have exactly one imaginary frequency.
func NewMiller(pfTrans *PartFun) (*Miller, error) {
	nu, err := imaginaryFreq(pfTrans)
	if err != nil {
		return nil, errDecorate(err, "NewMiller")
	}
	return &Miller{nu: nu}, nil
}

// MillerFromParameters builds the correction directly from the imaginary
// frequency. The sign of nu is ignored.
func MillerFromParameters(nu float64) *Miller {
	return &Miller{nu: math.Abs(nu)}
}

// Factor returns x/sin(x), with x = h*nu/(2*kB*T). For nu=0 the x->0 limit,
// 1, is returned, so a species with no imaginary frequency gets no correction.
// The formula stops being valid once x reaches pi (very low temperatures or
// very hard imaginary modes): there the factor becomes singular and, past the
// singularity, negative. Such values are returned as they come; they are a
// limitation of Miller's expression, not something this function hides.
func (m *Miller) Factor(temp float64) float64 {
	x := 0.5 * Planck * m.nu / (Boltzmann * temp)
	if x == 0 {
		return 1
	}
	return x / math.Sin(x)
}

func (m *Miller) Factors(temps []float64) []float64 {
	ret := make([]float64, len(temps))
	for i, t := range temps {
		ret[i] = m.Factor(t)
	}
	return ret
}

// Eckart implements the tunneling correction proposed in C. Eckart,
// Phys. Rev. 35, 1303 (1930), for an asymmetric one-dimensional barrier. It
// is parametrized by the forward and reverse barrier heights and the
// imaginary frequency of the transition state, and requires a numerical
// integration of the transmission probability against the Boltzmann factor at
// every temperature.
type Eckart struct {
	ef, er float64 //forward and reverse barriers
	nu     float64 //magnitude of the imaginary frequency
	points int     //quadrature nodes per temperature
}

const defaultQuadPoints = 2000

// eckartEMax caps the integration energy: no reasonable barrier exceeds it.
const eckartEMax = 500 * KJMol

// NewEckart derives the barriers and the imaginary frequency from the
// partition functions of the reactants, the transition state and the
// products. The forward (reverse) barrier is the electronic energy of the
// transition state minus the summed electronic energies of the reactants
// (products). Both barriers must be non-negative and the transition state
// must have exactly one imaginary frequency; at least one reactant and one
// product are required. The optional trailing argument overrides the number
// of quadrature nodes used per temperature (2000 by default).
func NewEckart(pfsReact []*PartFun, pfTrans *PartFun, pfsProd []*PartFun, points ...int) (*Eckart, error) {
	nu, err := imaginaryFreq(pfTrans)
	if err != nil {
		return nil, errDecorate(err, "NewEckart")
	}
	if len(pfsReact) == 0 {
		return nil, CError{InvalidInput, "goKin: at least one reactant is required", []string{"NewEckart"}}
	}
	if len(pfsProd) == 0 {
		return nil, CError{InvalidInput, "goKin: at least one product is required", []string{"NewEckart"}}
	}
	ef := pfTrans.Electronic.Energy
	for _, pf := range pfsReact {
		ef -= pf.Electronic.Energy
	}
	er := pfTrans.Electronic.Energy
	for _, pf := range pfsProd {
		er -= pf.Electronic.Energy
	}
	ret, err := EckartFromParameters(ef, er, nu, points...)
	if err != nil {
		return nil, errDecorate(err, "NewEckart")
	}
	return ret, nil
}

// EckartFromParameters builds the correction from pre-computed barriers (in
// Hartree) and imaginary frequency, for testing or when the barriers are
// known from an independent source. It enforces the same invariants as
// NewEckart: negative barriers are an error, never silently corrected. The
// sign of nu is ignored. Both barriers are expected below the 500 kJ/mol
// integration cutoff; Factor is meaningless past it.
func EckartFromParameters(ef, er, nu float64, points ...int) (*Eckart, error) {
	if ef < 0 {
		return nil, CError{InvalidBarrier, fmt.Sprintf("goKin: the forward barrier is negative (%g Hartree): can not apply the Eckart correction", ef), []string{"EckartFromParameters"}}
	}
	if er < 0 {
		return nil, CError{InvalidBarrier, fmt.Sprintf("goKin: the reverse barrier is negative (%g Hartree): can not apply the Eckart correction", er), []string{"EckartFromParameters"}}
	}
	p := defaultQuadPoints
	if len(points) > 0 && points[0] > 0 {
		p = points[0]
	}
	return &Eckart{ef: ef, er: er, nu: math.Abs(nu), points: p}, nil
}

// Ef returns the forward barrier, in Hartree.
func (e *Eckart) Ef() float64 { return e.ef }

// Er returns the reverse barrier, in Hartree.
func (e *Eckart) Er() float64 { return e.er }

// Nu returns the magnitude of the imaginary frequency, in atomic units.
func (e *Eckart) Nu() float64 { return e.nu }

// Factor computes the correction at one temperature: the integral over the
// energy of the transmission probability times the Boltzmann weight, divided
// by kB*T. In the high-temperature limit the transmission probability
// approaches a step function at the barrier top and the factor goes to 1.
func (e *Eckart) Factor(temp float64) float64 {
	kt := Boltzmann * temp
	//reduced barrier-width parameter, combining the two barrier heights and
	//the curvature at the top
	l := math.Sqrt2 / (1/math.Sqrt(e.ef) + 1/math.Sqrt(e.er)) / e.nu
	lterm := 2 * l * l / (Planck * Planck)
	hnu := Planck * e.nu
	d := 2 * math.Pi * math.Sqrt(4*e.ef*e.er/(hnu*hnu)-0.25)
	integrand := func(energy float64) float64 {
		alpha := math.Sqrt(lterm * energy)
		beta := math.Sqrt(lterm * (energy - (e.ef - e.er)))
		p := transmission(2*math.Pi*(alpha+beta), 2*math.Pi*(alpha-beta), d)
		return p * math.Exp(-(energy-e.ef)/kt)
	}
	emin := math.Max(0, e.ef-e.er)
	e.checkBorders(integrand, emin, eckartEMax)
	return quad.Fixed(integrand, emin, eckartEMax, e.points, nil, 0) / kt
}

// transmission evaluates the Eckart transmission probability
// (cosh(a)-cosh(b))/(cosh(a)+cosh(d)). The hyperbolic cosines are rescaled by
// the largest argument before exponentiating, so large arguments (a grows
// without bound with the energy) do not overflow.
func transmission(a, b, d float64) float64 {
	b = math.Abs(b) //cosh is even
	m := math.Max(a, math.Max(b, d))
	return (scaledCosh(a, m) - scaledCosh(b, m)) / (scaledCosh(a, m) + scaledCosh(d, m))
}

// scaledCosh returns cosh(x)*exp(-m), for x,m >= 0.
func scaledCosh(x, m float64) float64 {
	return 0.5 * (math.Exp(x-m) + math.Exp(-x-m))
}

// checkBorders samples the integrand on a coarse (1 kJ/mol) grid and logs an
// advisory if it is not negligible at the borders of the integration
// interval, meaning the fixed upper cutoff could be truncating part of the
// tunneling tail. This is a diagnostic only: the computed factor is returned
// unchanged either way.
func (e *Eckart) checkBorders(integrand func(float64) float64, emin, emax float64) {
	first := integrand(emin)
	max := first
	var last float64
	for energy := emin + KJMol; energy < emax; energy += KJMol {
		last = integrand(energy)
		if last > max {
			max = last
		}
	}
	if max*1e-5 < math.Max(first, last) {
		log.Printf("goKin: Eckart integrand is not negligible at the borders of the integration interval: %g %g", first/max, last/max)
	}
}

func (e *Eckart) Factors(temps []float64) []float64 {
	ret := make([]float64, len(temps))
	for i, t := range temps {
		ret[i] = e.Factor(t)
	}
	return ret
}

// FactorsConc is like Factors, but evaluates the temperatures concurrently,
// one goroutine each. The evaluations are independent and the receiver is
// immutable, so the only coordination needed is waiting for them to finish.
// Worth it when the temperature grid is long, since each Eckart evaluation
// carries a full quadrature.
func (e *Eckart) FactorsConc(temps []float64) []float64 {
	ret := make([]float64, len(temps))
	var wg sync.WaitGroup
	for i, t := range temps {
		wg.Add(1)
		go func(i int, t float64) {
			defer wg.Done()
			ret[i] = e.Factor(t)
		}(i, t)
	}
	wg.Wait()
	return ret
}
