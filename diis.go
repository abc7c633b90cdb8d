// diis.go --  This file is part of the pyqint project.
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
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DIIS accelerates SCF convergence by extrapolating the Fock matrix
// from a bounded history of (Fock, density, error vector) triples. The
// error vector of an iterate is the flattened commutator FPS - SPF,
// which vanishes at self-consistency.
type DIIS struct {
	// Length bounds the history; the oldest triples are dropped first.
	Length int
	// Start is the iteration offset after which extrapolation is used.
	Start int

	focks []*mat.Dense
	dens  []*mat.Dense
	errs  []*mat.VecDense
}

// NewDIIS returns an accelerator with the given subspace length and
// start offset.
func NewDIIS(length, start int) *DIIS {
	return &DIIS{Length: length, Start: start}
}

// Len returns the current history size.
func (d *DIIS) Len() int {
	return len(d.focks)
}

// Push appends a (F, P, e) triple and prunes the history to Length.
func (d *DIIS) Push(f, p *mat.Dense, e *mat.VecDense) {
	d.focks = append(d.focks, f)
	d.dens = append(d.dens, p)
	d.errs = append(d.errs, e)
	if len(d.focks) > d.Length {
		d.focks = d.focks[len(d.focks)-d.Length:]
		d.dens = d.dens[len(d.dens)-d.Length:]
		d.errs = d.errs[len(d.errs)-d.Length:]
	}
}

// Coefficients solves the bordered least-squares system
//
//	| <e_i|e_j>  -1 | | c |   |  0 |
//	|   -1        0 | | L | = | -1 |
//
// whose solution minimizes the norm of the extrapolated error vector
// under the constraint sum(c) = 1.
func (d *DIIS) Coefficients() ([]float64, error) {
	m := len(d.errs)
	bmat := mat.NewDense(m+1, m+1, nil)
	for i := 0; i < m; i++ {
		bmat.Set(i, m, -1)
		bmat.Set(m, i, -1)
		for j := 0; j <= i; j++ {
			v := mat.Dot(d.errs[i], d.errs[j])
			bmat.Set(i, j, v)
			bmat.Set(j, i, v)
		}
	}

	rhs := mat.NewVecDense(m+1, nil)
	rhs.SetVec(m, -1)

	var lu mat.LU
	lu.Factorize(bmat)
	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, false, rhs); err != nil {
		return nil, errors.Wrapf(ErrSingularDIIS, "subspace size %d: %v", m, err)
	}

	coeffs := make([]float64, m)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}
	return coeffs, nil
}

// Extrapolate forms the weighted sum of the stored Fock matrices.
func (d *DIIS) Extrapolate(coeffs []float64) *mat.Dense {
	n, _ := d.focks[0].Dims()
	f := mat.NewDense(n, n, nil)
	part := mat.NewDense(n, n, nil)
	for i := range d.focks {
		part.Scale(coeffs[i], d.focks[i])
		f.Add(f, part)
	}
	return f
}

// ErrorRMS is the root-mean-square of the latest error vector, a
// convergence diagnostic.
func (d *DIIS) ErrorRMS() float64 {
	if len(d.errs) == 0 {
		return 0
	}
	e := d.errs[len(d.errs)-1]
	sq := make([]float64, e.Len())
	for i := range sq {
		v := e.AtVec(i)
		sq[i] = v * v
	}
	return math.Sqrt(stat.Mean(sq, nil))
}
