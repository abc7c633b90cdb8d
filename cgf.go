// cgf.go --  This file is part of the pyqint project.
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

import (
	"fmt"
	"math"
	"strings"
)

// GTO is a primitive cartesian Gaussian-type orbital
//
//	x^l y^m z^n exp(-alpha r^2)
//
// centered at R, entering a contraction with coefficient Coeff. The
// normalization constant is fixed at construction time.
type GTO struct {
	Coeff float64
	Alpha float64
	L     int
	M     int
	N     int
	R     Vec3

	norm float64
}

// NewGTO builds a primitive and computes its normalization constant.
func NewGTO(coeff, alpha float64, l, m, n int, r Vec3) GTO {
	g := GTO{Coeff: coeff, Alpha: alpha, L: l, M: m, N: n, R: r}
	g.norm = math.Sqrt(math.Pow(2.0, 2.0*float64(l+m+n)+1.5) *
		math.Pow(alpha, float64(l+m+n)+1.5) /
		(doubleFactorial(2*l-1) * doubleFactorial(2*m-1) * doubleFactorial(2*n-1) *
			math.Pow(math.Pi, 1.5)))
	return g
}

// Norm returns the normalization constant of the primitive.
func (g GTO) Norm() float64 {
	return g.norm
}

// CGF is a contracted Gaussian function: a fixed linear combination of
// primitives sharing a center R. Immutable once the basis is built.
type CGF struct {
	R    Vec3
	GTOs []GTO
}

// NewCGF returns an empty contraction centered at r.
func NewCGF(r Vec3) CGF {
	return CGF{R: r}
}

// AddGTO appends a primitive with the given contraction coefficient,
// exponent and angular momentum triple.
func (c *CGF) AddGTO(coeff, alpha float64, l, m, n int) {
	c.GTOs = append(c.GTOs, NewGTO(coeff, alpha, l, m, n, c.R))
}

func (c CGF) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CGF; R=(%f,%f,%f)\n", c.R[0], c.R[1], c.R[2])
	for i, g := range c.GTOs {
		fmt.Fprintf(&sb, " %02d | GTO : c=%f, alpha=%f, l=%d, m=%d, n=%d, R=(%f,%f,%f)\n",
			i+1, g.Coeff, g.Alpha, g.L, g.M, g.N, g.R[0], g.R[1], g.R[2])
	}
	return sb.String()
}
