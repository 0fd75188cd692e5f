/*
 * doc.go, part of goKin.
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

/*Package kin is the main package of the goKin library, a post-processing toolkit
for chemical-kinetics calculations on top of quantum-chemistry results.



	**goKin capabilities**


    Builds partition functions from electronic energies and vibrational spectra,
	with optional translational and rotational contributions.

    Computes quantum-tunneling corrections for rate constants with the
	Eckart, Wigner and Miller models. Transition states are characterized by
	exactly one imaginary vibrational frequency.

    Estimates transition-state-theory rate constants over a temperature grid
	and fits Arrhenius parameters (a pre-exponential factor and an
	activation energy) to them.

    Propagates level-of-theory errors to the kinetic parameters by Monte
	Carlo sampling.

    Writes plain-text reports of a reaction analysis.

    Plots Arrhenius curves and the Monte Carlo distribution of the kinetic
	parameters (subpackage kinplot).

    Reads legacy normal-mode and frequency files (semicolon-separated
	tables, CHARMM coordinate and VIBRAN mode files, transparently
	gzip-compressed or not) and computes mode overlaps, conformational-change
	vectors and mode sensitivities (subpackage modes).

All physical quantities are in atomic units unless stated otherwise;
temperatures are in Kelvin. The constants in this package (Planck, Boltzmann,
KJMol, etc.) convert to and from other common units.

goKin uses the gonum library for regression, sampling, quadrature and
eigendecompositions, and the gonum plotting library for its graphical output.
*/
package kin
