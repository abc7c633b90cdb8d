// vec.go --  This file is part of the pyqint project.
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

import "math"

// Vec3 is a cartesian position or displacement in atomic units.
type Vec3 [3]float64

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v Vec3) SquaredNorm() float64 {
	return v.Dot(v)
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// gaussianProductCenter returns the center of the Gaussian obtained by
// multiplying two primitives with exponents alpha1, alpha2 at a and b.
func gaussianProductCenter(alpha1 float64, a Vec3, alpha2 float64, b Vec3) Vec3 {
	g := alpha1 + alpha2
	return Vec3{
		(alpha1*a[0] + alpha2*b[0]) / g,
		(alpha1*a[1] + alpha2*b[1]) / g,
		(alpha1*a[2] + alpha2*b[2]) / g,
	}
}
