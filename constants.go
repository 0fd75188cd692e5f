/*
 * constants.go, part of goKin.
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

//Physical constants and unit-conversion factors, in Hartree atomic units.
//Everything in the library works in these units; multiply a value in the
//"foreign" unit by the constant to obtain the value in atomic units
//(so 50 kJ/mol is 50*KJMol, and a 1000 cm-1 wavenumber is 1000/CM).
const (
	//Planck is the Planck constant. With hbar=1 it is just 2*pi.
	Planck = 2 * math.Pi

	//Boltzmann is the Boltzmann constant, in Hartree/K.
	Boltzmann = 3.1668154051341965e-06

	//Avogadro is Avogadro's number.
	Avogadro = 6.0221415e23

	//KJMol is one kJ/mol, in Hartree.
	KJMol = 3.8087988471333145e-04

	//LightSpeed is the speed of light.
	LightSpeed = 137.03599976

	//Meter is one meter, in bohr.
	Meter = 1.8897261339212517e10

	//CM is one centimeter, in bohr. A wavenumber of w cm-1 corresponds
	//to the frequency w*LightSpeed/CM.
	CM = 1e-2 * Meter

	//Amu is one unified atomic mass unit, in electron masses.
	Amu = 1822.8884843

	//Atm is one standard atmosphere, in Hartree/bohr^3.
	Atm = 3.4439711543332768e-09

	//CharmmFreq converts the frequencies stored in CHARMM VIBRAN mode files
	//to wavenumbers (cm-1). The magic numbers come from the CHARMM source
	//(consta.fcm).
	CharmmFreq = 2045.5 / (2.99793 * 6.28319)
)
