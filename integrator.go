// integrator.go --  This file is part of the pyqint project.
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
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Integrator evaluates molecular integrals over contracted Gaussians.
// It is stateless; a single value can serve any number of calculations.
type Integrator struct{}

func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Overlap calculates <cgf1|cgf2>.
func (it *Integrator) Overlap(cgf1, cgf2 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * overlapGTO(g1, g2)
		}
	}
	return sum
}

// Kinetic calculates <cgf1|-1/2 nabla^2|cgf2>.
func (it *Integrator) Kinetic(cgf1, cgf2 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * kineticGTO(g1, g2)
		}
	}
	return sum
}

// Nuclear calculates the attraction of the charge distribution
// cgf1*cgf2 to a nucleus of the given charge.
func (it *Integrator) Nuclear(cgf1, cgf2 *CGF, nucleus Vec3, charge int) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.norm * g2.norm * g1.Coeff * g2.Coeff * nuclearGTO(g1, g2, nucleus)
		}
	}
	return sum * float64(charge)
}

// Repulsion calculates the two-electron integral (cgf1 cgf2|cgf3 cgf4).
func (it *Integrator) Repulsion(cgf1, cgf2, cgf3, cgf4 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			for _, g3 := range cgf3.GTOs {
				for _, g4 := range cgf4.GTOs {
					pre := g1.Coeff * g2.Coeff * g3.Coeff * g4.Coeff
					sum += g1.norm * g2.norm * g3.norm * g4.norm * pre *
						repulsionGTO(g1, g2, g3, g4)
				}
			}
		}
	}
	return sum
}

// TEIndex maps a four-index two-electron integral to its offset in the
// permutation-compressed store. The mapping is invariant under the
// eightfold symmetry (ij|kl) = (ji|kl) = (ij|lk) = (kl|ij) = ...
func (it *Integrator) TEIndex(i, j, k, l int) int {
	if i < j {
		i, j = j, i
	}
	if k < l {
		k, l = l, k
	}

	ij := i*(i+1)/2 + j
	kl := k*(k+1)/2 + l

	if ij < kl {
		ij, kl = kl, ij
	}

	return ij*(ij+1)/2 + kl
}

type teJob struct {
	idx        int
	i, j, k, l int
}

// BuildIntegrals evaluates the one-electron matrices S, T and V and the
// compressed two-electron tensor for a basis and nuclear frame. Each
// unique canonical two-electron index is evaluated exactly once; the
// unique integrals are partitioned over GOMAXPROCS workers.
func (it *Integrator) BuildIntegrals(cgfs []CGF, nuclei []Nucleus) (S, T, V *mat.Dense, teint []float64) {
	sz := len(cgfs)
	S = mat.NewDense(sz, sz, nil)
	T = mat.NewDense(sz, sz, nil)
	V = mat.NewDense(sz, sz, nil)

	for i := 0; i < sz; i++ {
		for j := i; j < sz; j++ {
			s := it.Overlap(&cgfs[i], &cgfs[j])
			t := it.Kinetic(&cgfs[i], &cgfs[j])
			S.Set(i, j, s)
			S.Set(j, i, s)
			T.Set(i, j, t)
			T.Set(j, i, t)
			v := 0.0
			for _, nuc := range nuclei {
				v += it.Nuclear(&cgfs[i], &cgfs[j], nuc.R, nuc.Charge)
			}
			V.Set(i, j, v)
			V.Set(j, i, v)
		}
	}

	teint = make([]float64, it.TEIndex(sz-1, sz-1, sz-1, sz-1)+1)
	seen := make([]bool, len(teint))
	var jobs []teJob
	for i := 0; i < sz; i++ {
		for j := 0; j < sz; j++ {
			for k := 0; k < sz; k++ {
				for l := 0; l < sz; l++ {
					idx := it.TEIndex(i, j, k, l)
					if !seen[idx] {
						seen[idx] = true
						jobs = append(jobs, teJob{idx, i, j, k, l})
					}
				}
			}
		}
	}

	// every job writes a distinct offset, so the workers share teint
	// without coordination and the result is deterministic
	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(jobs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(jobs) {
			break
		}
		part := jobs[lo:min(lo+chunk, len(jobs))]
		g.Go(func() error {
			for _, jb := range part {
				teint[jb.idx] = it.Repulsion(&cgfs[jb.i], &cgfs[jb.j], &cgfs[jb.k], &cgfs[jb.l])
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never fail

	return S, T, V, teint
}
