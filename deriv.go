// deriv.go --  This file is part of the pyqint project.
//
//	pyqint is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package pyqint

// Geometric derivatives of the molecular integrals with respect to a
// nuclear coordinate. The derivative of a primitive towards its own
// center follows the angular-momentum ladder rule
//
//	d/dX |l> = 2 alpha |l+1> - l |l-1>
//
// so every derivative reduces to ordinary integrals with raised and
// lowered angular momenta. A contracted function contributes only when
// it is centered on the differentiated nucleus.

import "math"

// onNucleus reports whether a center coincides with a nucleus position.
// Squared-distance threshold, matching the basis construction rounding.
func onNucleus(r, nucleus Vec3) bool {
	return r.Sub(nucleus).SquaredNorm() < 1e-4
}

func (g GTO) ang() [3]int {
	return [3]int{g.L, g.M, g.N}
}

func (g GTO) withAng(a [3]int) GTO {
	g.L, g.M, g.N = a[0], a[1], a[2]
	return g
}

// OverlapDeriv calculates d<cgf1|cgf2>/dc for the coordinate `coord`
// (0..2) of a nucleus at `nucleus`.
func (it *Integrator) OverlapDeriv(cgf1, cgf2 *CGF, nucleus Vec3, coord int) float64 {
	n1 := onNucleus(cgf1.R, nucleus)
	n2 := onNucleus(cgf2.R, nucleus)
	if n1 == n2 {
		// both or neither move with the nucleus: terms cancel or vanish
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			t1, t2 := 0.0, 0.0
			if n1 {
				t1 = overlapDerivGTO(g1, g2, coord)
			}
			if n2 {
				t2 = overlapDerivGTO(g2, g1, coord)
			}
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * (t1 + t2)
		}
	}
	return sum
}

func overlapDerivGTO(g1, g2 GTO, coord int) float64 {
	a := g1.ang()
	if a[coord] != 0 {
		a[coord]++
		plus := overlapGTO(g1.withAng(a), g2)
		a[coord] -= 2
		minus := overlapGTO(g1.withAng(a), g2)
		a[coord]++
		return 2.0*g1.Alpha*plus - float64(a[coord])*minus
	}
	a[coord]++
	return 2.0 * g1.Alpha * overlapGTO(g1.withAng(a), g2)
}

// KineticDeriv calculates d<cgf1|-1/2 nabla^2|cgf2>/dc.
func (it *Integrator) KineticDeriv(cgf1, cgf2 *CGF, nucleus Vec3, coord int) float64 {
	n1 := onNucleus(cgf1.R, nucleus)
	n2 := onNucleus(cgf2.R, nucleus)
	if n1 == n2 {
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			t1, t2 := 0.0, 0.0
			if n1 {
				t1 = kineticDerivGTO(g1, g2, coord)
			}
			if n2 {
				t2 = kineticDerivGTO(g2, g1, coord)
			}
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * (t1 + t2)
		}
	}
	return sum
}

func kineticDerivGTO(g1, g2 GTO, coord int) float64 {
	a := g1.ang()
	if a[coord] != 0 {
		a[coord]++
		plus := kineticGTO(g1.withAng(a), g2)
		a[coord] -= 2
		minus := kineticGTO(g1.withAng(a), g2)
		a[coord]++
		return 2.0*g1.Alpha*plus - float64(a[coord])*minus
	}
	a[coord]++
	return 2.0 * g1.Alpha * kineticGTO(g1.withAng(a), g2)
}

// NuclearDeriv calculates the derivative of the attraction of cgf1*cgf2
// to the nucleus at `nucleus` with the given charge, towards coordinate
// `coord` of the nucleus at `nucDeriv`. Both the basis functions and
// the attraction operator may depend on the differentiated coordinate.
func (it *Integrator) NuclearDeriv(cgf1, cgf2 *CGF, nucleus Vec3, charge int,
	nucDeriv Vec3, coord int) float64 {

	n1 := onNucleus(cgf1.R, nucDeriv)
	n2 := onNucleus(cgf2.R, nucDeriv)
	n3 := onNucleus(nucleus, nucDeriv)

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			t1, t2, t3 := 0.0, 0.0, 0.0
			if n1 {
				t1 = nuclearDerivBF(g1, g2, nucleus, coord)
			}
			if n2 {
				t2 = nuclearDerivBF(g2, g1, nucleus, coord)
			}
			if n3 {
				t3 = nuclearDerivOp(g1, g2, nucleus, coord)
			}
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * (t1 + t2 + t3)
		}
	}
	return sum * float64(charge)
}

// nuclearDerivBF differentiates towards the center of g1.
func nuclearDerivBF(g1, g2 GTO, nucleus Vec3, coord int) float64 {
	a := g1.ang()
	if a[coord] != 0 {
		a[coord]++
		plus := nuclearGTO(g1.withAng(a), g2, nucleus)
		a[coord] -= 2
		minus := nuclearGTO(g1.withAng(a), g2, nucleus)
		a[coord]++
		return 2.0*g1.Alpha*plus - float64(a[coord])*minus
	}
	a[coord]++
	return 2.0 * g1.Alpha * nuclearGTO(g1.withAng(a), g2, nucleus)
}

// nuclearDerivOp differentiates the 1/|r-C| operator towards the
// nucleus coordinate itself.
func nuclearDerivOp(g1, g2 GTO, nucleus Vec3, coord int) float64 {
	return nuclearDerivOpPrim(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus, coord)
}

func nuclearDerivOpPrim(a Vec3, l1, m1, n1 int, alpha1 float64,
	b Vec3, l2, m2, n2 int, alpha2 float64, c Vec3, coord int) float64 {

	gamma := alpha1 + alpha2

	p := gaussianProductCenter(alpha1, a, alpha2, b)
	rab2 := a.Sub(b).SquaredNorm()
	rcp2 := c.Sub(p).SquaredNorm()
	rcpCoord := c.Sub(p)[coord]

	ax := aArray(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma)
	ay := aArray(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma)
	az := aArray(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma)

	var ad []float64
	switch coord {
	case 0:
		ad = aArrayDeriv(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma)
	case 1:
		ad = aArrayDeriv(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma)
	case 2:
		ad = aArrayDeriv(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma)
	}

	// rotate the axes so the differentiated coordinate is handled by
	// one set of loops regardless of direction
	itmax := [3]int{l1 + l2, m1 + m2, n1 + n2}
	v := [3][]float64{ax, ay, az}
	v0 := coord
	v1 := (coord + 1) % 3
	v2 := (coord + 2) % 3

	sum := 0.0
	for i := 0; i <= itmax[v0]; i++ {
		for j := 0; j <= itmax[v1]; j++ {
			for k := 0; k <= itmax[v2]; k++ {
				// product rule: both the expansion terms and the Boys
				// argument depend on C[coord]
				sum += (v[v0][i]*-2.0*gamma*rcpCoord*boys(rcp2*gamma, i+j+k+1) +
					ad[i]*boys(rcp2*gamma, i+j+k)) * v[v1][j] * v[v2][k]
			}
		}
	}

	return -2.0 * math.Pi / gamma * math.Exp(-alpha1*alpha2*rab2/gamma) * sum
}

// aArrayDeriv differentiates the A expansion coefficients towards the
// nucleus coordinate appearing in the cp powers.
func aArrayDeriv(l1, l2 int, pa, pb, cp, g float64) []float64 {
	imax := l1 + l2 + 1
	arr := make([]float64, imax)

	for i := 0; i < imax; i++ {
		for r := 0; r <= i/2; r++ {
			for u := 0; u <= (i-2*r)/2; u++ {
				cppow := i - 2*r - 2*u
				if cppow != 0 && cp != 0.0 {
					term := aTerm(i, r, u, l1, l2, pa, pb, cp, g)
					arr[i-2*r-u] += term * -1.0 * float64(cppow) / cp
				}
			}
		}
	}

	return arr
}

// RepulsionDeriv calculates the derivative of (cgf1 cgf2|cgf3 cgf4)
// towards coordinate `coord` of the nucleus at `nucleus`.
func (it *Integrator) RepulsionDeriv(cgf1, cgf2, cgf3, cgf4 *CGF, nucleus Vec3, coord int) float64 {
	n1 := onNucleus(cgf1.R, nucleus)
	n2 := onNucleus(cgf2.R, nucleus)
	n3 := onNucleus(cgf3.R, nucleus)
	n4 := onNucleus(cgf4.R, nucleus)

	if n1 == n2 && n2 == n3 && n3 == n4 {
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			for _, g3 := range cgf3.GTOs {
				for _, g4 := range cgf4.GTOs {
					pre := g1.Coeff * g2.Coeff * g3.Coeff * g4.Coeff
					t1, t2, t3, t4 := 0.0, 0.0, 0.0, 0.0
					if n1 {
						t1 = repulsionDerivGTO(g1, g2, g3, g4, coord)
					}
					if n2 {
						t2 = repulsionDerivGTO(g2, g1, g3, g4, coord)
					}
					if n3 {
						t3 = repulsionDerivGTO(g3, g4, g1, g2, coord)
					}
					if n4 {
						t4 = repulsionDerivGTO(g4, g3, g1, g2, coord)
					}
					sum += pre * g1.norm * g2.norm * g3.norm * g4.norm * (t1 + t2 + t3 + t4)
				}
			}
		}
	}
	return sum
}

func repulsionDerivGTO(g1, g2, g3, g4 GTO, coord int) float64 {
	a := g1.ang()
	if a[coord] != 0 {
		a[coord]++
		plus := repulsionGTO(g1.withAng(a), g2, g3, g4)
		a[coord] -= 2
		minus := repulsionGTO(g1.withAng(a), g2, g3, g4)
		a[coord]++
		return 2.0*g1.Alpha*plus - float64(a[coord])*minus
	}
	a[coord]++
	return 2.0 * g1.Alpha * repulsionGTO(g1.withAng(a), g2, g3, g4)
}
