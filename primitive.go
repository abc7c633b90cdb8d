// primitive.go --  This file is part of the pyqint project.
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

// Primitive Gaussian integrals after Taketa, Huzinaga and O-ohata
// (J. Phys. Soc. Jpn. 21 (1966) 2313). Normalization and contraction
// coefficients are applied at the CGF level, not here.

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// boys evaluates the Boys function F_n(x) through the regularized lower
// incomplete gamma function.
func boys(x float64, n int) float64 {
	nf := float64(n)
	if x == 0 {
		return 1.0 / (2.0*nf + 1.0)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) /
		(2.0 * math.Pow(x, nf+0.5))
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// doubleFactorial returns n!!, with (-1)!! = 1.
func doubleFactorial(n int) float64 {
	result := 1.0
	for i := n; i > 1; i -= 2 {
		result *= float64(i)
	}
	return result
}

func binomial(a, b int) float64 {
	if a < 0 || b < 0 || a-b < 0 {
		return 1.0
	}
	return factorial(a) / (factorial(b) * factorial(a-b))
}

// binomialPrefactor is the f_s coefficient of x^s in
// (x+xpa)^ia (x+xpb)^ib.
func binomialPrefactor(s, ia, ib int, xpa, xpb float64) float64 {
	sum := 0.0
	for t := 0; t <= s; t++ {
		if s-ia <= t && t <= ib {
			sum += binomial(ia, s-t) * binomial(ib, t) *
				math.Pow(xpa, float64(ia-s+t)) *
				math.Pow(xpb, float64(ib-t))
		}
	}
	return sum
}

func overlapPrim(alpha1 float64, l1, m1, n1 int, a Vec3,
	alpha2 float64, l2, m2, n2 int, b Vec3) float64 {

	rab2 := a.Sub(b).SquaredNorm()
	gamma := alpha1 + alpha2
	p := gaussianProductCenter(alpha1, a, alpha2, b)

	pre := math.Pow(math.Pi/gamma, 1.5) * math.Exp(-alpha1*alpha2*rab2/gamma)
	wx := overlap1D(l1, l2, p[0]-a[0], p[0]-b[0], gamma)
	wy := overlap1D(m1, m2, p[1]-a[1], p[1]-b[1], gamma)
	wz := overlap1D(n1, n2, p[2]-a[2], p[2]-b[2], gamma)

	return pre * wx * wy * wz
}

func overlap1D(l1, l2 int, x1, x2, gamma float64) float64 {
	sum := 0.0
	for i := 0; i < 1+int(math.Floor(0.5*float64(l1+l2))); i++ {
		df := 1.0
		if i > 0 {
			df = doubleFactorial(2*i - 1)
		}
		sum += binomialPrefactor(2*i, l1, l2, x1, x2) * df / math.Pow(2*gamma, float64(i))
	}
	return sum
}

func overlapGTO(g1, g2 GTO) float64 {
	return overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R,
		g2.Alpha, g2.L, g2.M, g2.N, g2.R)
}

// kineticGTO computes <g1|-1/2 nabla^2|g2> by expanding the Laplacian
// into overlaps with shifted angular momenta on the ket.
func kineticGTO(g1, g2 GTO) float64 {
	term0 := g2.Alpha * (2.0*float64(g2.L+g2.M+g2.N) + 3.0) * overlapGTO(g1, g2)

	term1 := -2.0 * g2.Alpha * g2.Alpha * (overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L+2, g2.M, g2.N, g2.R) +
		overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M+2, g2.N, g2.R) +
		overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M, g2.N+2, g2.R))

	term2 := -0.5 * (float64(g2.L*(g2.L-1))*overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L-2, g2.M, g2.N, g2.R) +
		float64(g2.M*(g2.M-1))*overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M-2, g2.N, g2.R) +
		float64(g2.N*(g2.N-1))*overlapPrim(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M, g2.N-2, g2.R))

	return term0 + term1 + term2
}

// nuclearPrim computes the attraction integral of two primitives to a
// unit charge at c.
func nuclearPrim(a Vec3, l1, m1, n1 int, alpha1 float64,
	b Vec3, l2, m2, n2 int, alpha2 float64, c Vec3) float64 {

	gamma := alpha1 + alpha2

	p := gaussianProductCenter(alpha1, a, alpha2, b)
	rab2 := a.Sub(b).SquaredNorm()
	rcp2 := c.Sub(p).SquaredNorm()

	ax := aArray(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma)
	ay := aArray(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma)
	az := aArray(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma)

	sum := 0.0
	for i := 0; i <= l1+l2; i++ {
		for j := 0; j <= m1+m2; j++ {
			for k := 0; k <= n1+n2; k++ {
				sum += ax[i] * ay[j] * az[k] * boys(rcp2*gamma, i+j+k)
			}
		}
	}

	return -2.0 * math.Pi / gamma * math.Exp(-alpha1*alpha2*rab2/gamma) * sum
}

func nuclearGTO(g1, g2 GTO, nucleus Vec3) float64 {
	return nuclearPrim(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus)
}

// aArray builds the A_{l} expansion coefficients of the nuclear
// attraction integral.
func aArray(l1, l2 int, pa, pb, cp, g float64) []float64 {
	imax := l1 + l2 + 1
	arr := make([]float64, imax)

	for i := 0; i < imax; i++ {
		for r := 0; r <= i/2; r++ {
			for u := 0; u <= (i-2*r)/2; u++ {
				arr[i-2*r-u] += aTerm(i, r, u, l1, l2, pa, pb, cp, g)
			}
		}
	}

	return arr
}

func aTerm(i, r, u, l1, l2 int, pax, pbx, cpx, gamma float64) float64 {
	return math.Pow(-1, float64(i)) * binomialPrefactor(i, l1, l2, pax, pbx) *
		math.Pow(-1, float64(u)) * factorial(i) * math.Pow(cpx, float64(i-2*r-2*u)) *
		math.Pow(0.25/gamma, float64(r+u)) / factorial(r) / factorial(u) / factorial(i-2*r-2*u)
}

func repulsionPrim(a Vec3, la, ma, na int, alphaa float64,
	b Vec3, lb, mb, nb int, alphab float64,
	c Vec3, lc, mc, nc int, alphac float64,
	d Vec3, ld, md, nd int, alphad float64) float64 {

	rab2 := a.Sub(b).SquaredNorm()
	rcd2 := c.Sub(d).SquaredNorm()

	p := gaussianProductCenter(alphaa, a, alphab, b)
	q := gaussianProductCenter(alphac, c, alphad, d)
	rpq2 := p.Sub(q).SquaredNorm()

	gamma1 := alphaa + alphab
	gamma2 := alphac + alphad
	delta := 0.25 * (1.0/gamma1 + 1.0/gamma2)

	bx := bArray(la, lb, lc, ld, p[0], a[0], b[0], q[0], c[0], d[0], gamma1, gamma2, delta)
	by := bArray(ma, mb, mc, md, p[1], a[1], b[1], q[1], c[1], d[1], gamma1, gamma2, delta)
	bz := bArray(na, nb, nc, nd, p[2], a[2], b[2], q[2], c[2], d[2], gamma1, gamma2, delta)

	sum := 0.0
	for i := 0; i <= la+lb+lc+ld; i++ {
		for j := 0; j <= ma+mb+mc+md; j++ {
			for k := 0; k <= na+nb+nc+nd; k++ {
				sum += bx[i] * by[j] * bz[k] * boys(0.25*rpq2/delta, i+j+k)
			}
		}
	}

	return 2.0 * math.Pow(math.Pi, 2.5) / (gamma1 * gamma2 * math.Sqrt(gamma1+gamma2)) *
		math.Exp(-alphaa*alphab*rab2/gamma1) *
		math.Exp(-alphac*alphad*rcd2/gamma2) * sum
}

func repulsionGTO(g1, g2, g3, g4 GTO) float64 {
	return repulsionPrim(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha,
		g3.R, g3.L, g3.M, g3.N, g3.Alpha,
		g4.R, g4.L, g4.M, g4.N, g4.Alpha)
}

// bArray builds the B_{l} expansion coefficients of the two-electron
// repulsion integral.
func bArray(l1, l2, l3, l4 int, p, a, b, q, c, d, g1, g2, delta float64) []float64 {
	imax := l1 + l2 + l3 + l4 + 1
	arr := make([]float64, imax)

	for i1 := 0; i1 < l1+l2+1; i1++ {
		for i2 := 0; i2 < l3+l4+1; i2++ {
			for r1 := 0; r1 < i1/2+1; r1++ {
				for r2 := 0; r2 < i2/2+1; r2++ {
					for u := 0; u < (i1+i2)/2-r1-r2+1; u++ {
						i := i1 + i2 - 2*(r1+r2) - u
						arr[i] += bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4,
							p, a, b, q, c, d, g1, g2, delta)
					}
				}
			}
		}
	}

	return arr
}

func bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4 int,
	px, ax, bx, qx, cx, dx, gamma1, gamma2, delta float64) float64 {
	return fB(i1, l1, l2, px, ax, bx, r1, gamma1) *
		math.Pow(-1, float64(i2)) * fB(i2, l3, l4, qx, cx, dx, r2, gamma2) *
		math.Pow(-1, float64(u)) * factRatio2(i1+i2-2*(r1+r2), u) *
		math.Pow(qx-px, float64(i1+i2-2*(r1+r2)-2*u)) /
		math.Pow(delta, float64(i1+i2-2*(r1+r2)-u))
}

func fB(i, l1, l2 int, p, a, b float64, r int, g float64) float64 {
	return binomialPrefactor(i, l1, l2, p-a, p-b) * b0(i, r, g)
}

func b0(i, r int, g float64) float64 {
	return factRatio2(i, r) * math.Pow(4*g, float64(r-i))
}

func factRatio2(a, b int) float64 {
	return factorial(a) / factorial(b) / factorial(a-2*b)
}
