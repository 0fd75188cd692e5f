/*
 * kinplot.go, part of goKin.
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * goKin is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
*/

//Package kinplot produces the graphical output of a goKin reaction analysis:
//Arrhenius plots and the Monte Carlo distribution of the kinetic parameters.
package kinplot

import (
	"fmt"
	"image/color"
	"math"

	kin "github.com/rmera/gokin"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Arrhenius plots ln(k) against 1000/T for a fitted reaction analysis,
// together with the fitted Arrhenius line, and saves the result as
// plotname.png.
func Arrhenius(ra *kin.ReactionAnalysis, title, plotname string) error {
	if ra == nil {
		panic("Given nil data")
	}
	temps := ra.Temps()
	lnks := ra.LnRates()
	if lnks == nil {
		return fmt.Errorf("goKin/kinplot: no rate constants to plot: run Fit first")
	}
	pts := make(plotter.XYs, len(temps))
	line := make(plotter.XYs, len(temps))
	for i, t := range temps {
		pts[i].X = 1000 / t
		pts[i].Y = lnks[i]
		line[i].X = 1000 / t
		line[i].Y = ra.FittedLnRate(t)
	}
	p := basicPlot(title, "1000/T [1/K]", "ln(k)")
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	l, err := plotter.NewLine(line)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(s, l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 10*vg.Centimeter, filename)
}

// Parameters makes a scatter plot of the Monte Carlo samples of the kinetic
// parameters, Ea (kJ/mol) against ln(A), with the central fit marked in red,
// and saves it as plotname.png. It fails if MonteCarlo was not run on the
// analysis.
func Parameters(ra *kin.ReactionAnalysis, title, plotname string) error {
	if ra == nil {
		panic("Given nil data")
	}
	as, eas, err := ra.MCSamples()
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, len(as))
	for i, a := range as {
		pts[i].X = eas[i] / kin.KJMol
		pts[i].Y = math.Log(a)
	}
	p := basicPlot(title, "Ea [kJ/mol]", "ln(A)")
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	central := make(plotter.XYs, 1)
	central[0].X = ra.Ea() / kin.KJMol
	central[0].Y = math.Log(ra.A())
	c, err := plotter.NewScatter(central)
	if err != nil {
		return err
	}
	c.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	c.GlyphStyle.Radius = 2 * c.GlyphStyle.Radius
	p.Add(s, c)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 10*vg.Centimeter, filename)
}
