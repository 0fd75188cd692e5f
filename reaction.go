/*
 * reaction.go, part of goKin.
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
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ReactionAnalysis estimates the kinetic parameters of one reaction from the
// partition functions of its reactants and its transition state, with
// transition-state theory: rate constants are computed on a temperature grid,
// and an Arrhenius expression ln k = ln A - Ea/(kB*T) is fitted to them by
// linear regression on the inverse temperature.
type ReactionAnalysis struct {
	pfsReact  []*PartFun
	pfTrans   *PartFun
	tunneling TunnelingCorrection
	temps     []float64
	lnks      []float64
	lnA       float64
	slope     float64
	mcA       []float64
	mcEa      []float64
}

// NewReactionAnalysis prepares the analysis of a reaction with the given
// reactant and transition-state partition functions, on a temperature grid
// from tlow to thigh (K). The optional trailing argument sets the grid step
// (10 K by default). The transition state must have exactly one imaginary
// frequency, and at least one reactant is required.
func NewReactionAnalysis(pfsReact []*PartFun, pfTrans *PartFun, tlow, thigh float64, step ...float64) (*ReactionAnalysis, error) {
	if _, err := imaginaryFreq(pfTrans); err != nil {
		return nil, errDecorate(err, "NewReactionAnalysis")
	}
	if len(pfsReact) == 0 {
		return nil, CError{InvalidInput, "goKin: at least one reactant is required", []string{"NewReactionAnalysis"}}
	}
	if tlow <= 0 || thigh <= tlow {
		return nil, CError{InvalidInput, fmt.Sprintf("goKin: need 0 < tlow < thigh for the temperature grid, got %g and %g", tlow, thigh), []string{"NewReactionAnalysis"}}
	}
	st := 10.0
	if len(step) > 0 && step[0] > 0 {
		st = step[0]
	}
	n := int((thigh-tlow)/st) + 1
	top := tlow + float64(n-1)*st
	if n < 2 {
		//The fit needs at least two points, so a range narrower than the
		//step collapses to its endpoints.
		n = 2
		top = thigh
	}
	temps := make([]float64, n)
	floats.Span(temps, tlow, top)
	ret := new(ReactionAnalysis)
	ret.pfsReact = pfsReact
	ret.pfTrans = pfTrans
	ret.temps = temps
	return ret, nil
}

// SetTunneling sets the tunneling correction to be applied to the rate
// constants. Call it before Fit; a nil correction (the default) means no
// tunneling.
func (ra *ReactionAnalysis) SetTunneling(tc TunnelingCorrection) {
	ra.tunneling = tc
}

// LnRate returns the natural logarithm of the TST rate constant at one
// temperature, in atomic units:
// ln k = ln(kB*T/h) + ln Z(ts) - sum ln Z(reactants), plus the logarithm of
// the tunneling factor, when a correction is set.
func (ra *ReactionAnalysis) LnRate(temp float64) float64 {
	lnk := math.Log(Boltzmann * temp / Planck)
	lnk += ra.pfTrans.LogZ(temp)
	for _, pf := range ra.pfsReact {
		lnk -= pf.LogZ(temp)
	}
	if ra.tunneling != nil {
		lnk += math.Log(ra.tunneling.Factor(temp))
	}
	return lnk
}

// Fit computes the rate constants over the temperature grid and fits the
// Arrhenius parameters to them.
func (ra *ReactionAnalysis) Fit() {
	ra.lnks = make([]float64, len(ra.temps))
	xs := make([]float64, len(ra.temps))
	for i, t := range ra.temps {
		xs[i] = 1 / t
		ra.lnks[i] = ra.LnRate(t)
	}
	ra.lnA, ra.slope = stat.LinearRegression(xs, ra.lnks, nil, false)
}

// A returns the fitted pre-exponential factor, in atomic units.
func (ra *ReactionAnalysis) A() float64 { return math.Exp(ra.lnA) }

// Ea returns the fitted activation energy, in Hartree.
func (ra *ReactionAnalysis) Ea() float64 { return -ra.slope * Boltzmann }

// Temps returns the temperature grid.
func (ra *ReactionAnalysis) Temps() []float64 { return ra.temps }

// LnRates returns ln k over the temperature grid, or nil if Fit has not been
// called.
func (ra *ReactionAnalysis) LnRates() []float64 { return ra.lnks }

// FittedLnRate returns ln k at temp according to the fitted Arrhenius
// parameters (not the TST expression).
func (ra *ReactionAnalysis) FittedLnRate(temp float64) float64 {
	return ra.lnA + ra.slope/temp
}

// MonteCarlo estimates the error on the fitted parameters caused by
// level-of-theory artifacts. freqErr is the relative systematic error on the
// frequencies (sampled once per species and applied to its whole spectrum,
// imaginary mode included) and energyErr the relative error on the electronic
// energies; numIter samples of the perturbed analysis are fitted (100 if
// non-positive) and the resulting (A, Ea) pairs stored for MCSamples/MCStats.
// Note that a tunneling correction set on the analysis keeps its original
// parameters through the sampling. Fit must have been called first.
func (ra *ReactionAnalysis) MonteCarlo(freqErr, energyErr float64, numIter int) error {
	if ra.lnks == nil {
		return CError{InvalidInput, "goKin: Fit must be called before MonteCarlo", []string{"MonteCarlo"}}
	}
	if numIter <= 0 {
		numIter = 100
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	ra.mcA = make([]float64, 0, numIter)
	ra.mcEa = make([]float64, 0, numIter)
	for i := 0; i < numIter; i++ {
		sample := new(ReactionAnalysis)
		sample.pfsReact = make([]*PartFun, len(ra.pfsReact))
		for j, pf := range ra.pfsReact {
			sample.pfsReact[j] = perturb(pf, freqErr, energyErr, normal)
		}
		sample.pfTrans = perturb(ra.pfTrans, freqErr, energyErr, normal)
		sample.tunneling = ra.tunneling
		sample.temps = ra.temps
		sample.Fit()
		ra.mcA = append(ra.mcA, sample.A())
		ra.mcEa = append(ra.mcEa, sample.Ea())
	}
	return nil
}

// perturb returns a copy of pf with the electronic energy and all frequencies
// perturbed by relative normal errors. The frequency scaling is systematic
// within the species; the unperturbed translational and rotational parts are
// shared with the original, which is safe since they are never mutated.
func perturb(pf *PartFun, freqErr, energyErr float64, normal distuv.Normal) *PartFun {
	el := &Electronic{
		Energy:       pf.Electronic.Energy * (1 + energyErr*normal.Rand()),
		Multiplicity: pf.Electronic.Multiplicity,
	}
	scale := 1 + freqErr*normal.Rand()
	vib := &Vibrational{
		Freqs:         make([]float64, len(pf.Vibrational.Freqs)),
		NegativeFreqs: make([]float64, len(pf.Vibrational.NegativeFreqs)),
	}
	for i, f := range pf.Vibrational.Freqs {
		vib.Freqs[i] = f * scale
	}
	for i, f := range pf.Vibrational.NegativeFreqs {
		vib.NegativeFreqs[i] = f * scale
	}
	return &PartFun{el, vib, pf.Translational, pf.Rotational}
}

// MCSamples returns the Monte Carlo samples of A and Ea, or an error if
// MonteCarlo has not been run.
func (ra *ReactionAnalysis) MCSamples() ([]float64, []float64, error) {
	if ra.mcA == nil {
		return nil, nil, CError{InvalidInput, "goKin: MonteCarlo must be called before MCSamples", []string{"MCSamples"}}
	}
	return ra.mcA, ra.mcEa, nil
}

// MCStats returns the mean and standard deviation of the Monte Carlo samples
// of A and Ea, or an error if MonteCarlo has not been run.
func (ra *ReactionAnalysis) MCStats() (meanA, stdA, meanEa, stdEa float64, err error) {
	if ra.mcA == nil {
		err = CError{InvalidInput, "goKin: MonteCarlo must be called before MCStats", []string{"MCStats"}}
		return
	}
	meanA = stat.Mean(ra.mcA, nil)
	stdA = stat.StdDev(ra.mcA, nil)
	meanEa = stat.Mean(ra.mcEa, nil)
	stdEa = stat.StdDev(ra.mcEa, nil)
	return
}

// Report writes a plain-text summary of the analysis to w: the grid, the
// fitted parameters (Ea in kJ/mol, A in atomic units) and, if available, the
// Monte Carlo statistics, followed by the rate-constant table.
func (ra *ReactionAnalysis) Report(w io.Writer) error {
	if ra.lnks == nil {
		return CError{InvalidInput, "goKin: Fit must be called before Report", []string{"Report"}}
	}
	fmt.Fprintf(w, "goKin reaction analysis\n")
	fmt.Fprintf(w, "Temperature grid: %.2f K to %.2f K, %d points\n", ra.temps[0], ra.temps[len(ra.temps)-1], len(ra.temps))
	if ra.tunneling != nil {
		fmt.Fprintf(w, "Tunneling correction: %T\n", ra.tunneling)
	} else {
		fmt.Fprintf(w, "Tunneling correction: none\n")
	}
	fmt.Fprintf(w, "Arrhenius fit: ln(k) = ln(A) - Ea/(kB*T)\n")
	fmt.Fprintf(w, "  A  = %.6e a.u.\n", ra.A())
	fmt.Fprintf(w, "  Ea = %.4f kJ/mol\n", ra.Ea()/KJMol)
	if ra.mcA != nil {
		meanA, stdA, meanEa, stdEa, _ := ra.MCStats()
		fmt.Fprintf(w, "Monte Carlo (%d samples):\n", len(ra.mcA))
		fmt.Fprintf(w, "  A  = %.6e +/- %.6e a.u.\n", meanA, stdA)
		fmt.Fprintf(w, "  Ea = %.4f +/- %.4f kJ/mol\n", meanEa/KJMol, stdEa/KJMol)
	}
	fmt.Fprintf(w, "\n    T [K]        ln(k)\n")
	for i, t := range ra.temps {
		fmt.Fprintf(w, "%9.2f  %12.6f\n", t, ra.lnks[i])
	}
	return nil
}

// WriteToFile writes the Report summary to the named file.
func (ra *ReactionAnalysis) WriteToFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return ra.Report(f)
}
