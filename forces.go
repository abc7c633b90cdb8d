// forces.go --  This file is part of the pyqint project.
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

	"gonum.org/v1/gonum/mat"
)

// Forces computes the analytic nuclear gradient of the converged RHF
// state, one force vector per atom (Natoms x 3), with the convention
// force = -dE/dR. C, P and orbe must belong to a converged calculation
// of the same molecule in the same basis.
func Forces(mol *Molecule, basisName string, c, p *mat.Dense, orbe []float64) (*mat.Dense, error) {
	integrator := NewIntegrator()
	cgfs, nuclei, err := mol.BuildBasis(basisName)
	if err != nil {
		return nil, err
	}
	nelec := 0
	for _, nuc := range nuclei {
		nelec += nuc.Charge
	}
	nocc := nelec / 2
	n := len(cgfs)

	forces := mat.NewDense(len(mol.Atoms), 3, nil)

	// energy-weighted density, the Pulay correction partner of the
	// overlap derivative
	w := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < nocc; k++ {
				sum += 2.0 * orbe[k] * c.At(i, k) * c.At(j, k)
			}
			w.Set(i, j, sum)
		}
	}

	idx4 := func(i, j, k, l int) int {
		return ((i*n+j)*n+k)*n + l
	}

	for a, derivNuc := range nuclei {
		for dir := 0; dir < 3; dir++ {
			overlap := mat.NewDense(n, n, nil)
			kinetic := mat.NewDense(n, n, nil)
			nuclear := mat.NewDense(n, n, nil)
			repulsion := make([]float64, n*n*n*n)

			for i := range cgfs {
				for j := range cgfs {
					overlap.Set(i, j, integrator.OverlapDeriv(&cgfs[i], &cgfs[j], derivNuc.R, dir))
					kinetic.Set(i, j, integrator.KineticDeriv(&cgfs[i], &cgfs[j], derivNuc.R, dir))

					vsum := 0.0
					for _, nuc := range nuclei {
						// the fully on-site term is zero by
						// translational invariance and the operator
						// derivative misbehaves there; exclude it
						if onNucleus(cgfs[i].R, derivNuc.R) &&
							onNucleus(cgfs[j].R, derivNuc.R) &&
							onNucleus(nuc.R, derivNuc.R) {
							continue
						}
						vsum += integrator.NuclearDeriv(&cgfs[i], &cgfs[j], nuc.R, nuc.Charge, derivNuc.R, dir)
					}
					nuclear.Set(i, j, vsum)

					for k := range cgfs {
						for l := range cgfs {
							repulsion[idx4(i, j, k, l)] = integrator.RepulsionDeriv(
								&cgfs[i], &cgfs[j], &cgfs[k], &cgfs[l], derivNuc.R, dir)
						}
					}
				}
			}

			// nucleus-nucleus repulsion derivative, excluding the
			// self pair
			termNN := 0.0
			for _, nuc := range nuclei {
				d := nuc.R.Sub(derivNuc.R)
				if d.Norm() > 1e-4 {
					termNN += float64(derivNuc.Charge*nuc.Charge) * d[dir] /
						math.Pow(d.Norm(), 3)
				}
			}

			termHCore := 0.0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					termHCore += p.At(i, j) * (kinetic.At(i, j) + nuclear.At(i, j))
				}
			}

			termRepulsion := 0.0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					for k := 0; k < n; k++ {
						for l := 0; l < n; l++ {
							termRepulsion += 0.5 * p.At(i, j) * p.At(k, l) *
								(repulsion[idx4(i, j, k, l)] - 0.5*repulsion[idx4(i, k, j, l)])
						}
					}
				}
			}

			termOverlap := 0.0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					termOverlap -= w.At(i, j) * overlap.At(i, j)
				}
			}

			forces.Set(a, dir, forces.At(a, dir)-
				(termHCore+termRepulsion+termOverlap+termNN))
		}
	}

	return forces, nil
}
