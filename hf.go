// hf.go --  This file is part of the pyqint project.
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
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Options configures a restricted Hartree-Fock calculation. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// CalcForces requests the analytic nuclear gradient after
	// convergence.
	CalcForces bool
	// MaxIterations bounds the SCF loop. Exhausting it is not an
	// error; the last iterate is returned and len(Result.Energies)
	// equals MaxIterations.
	MaxIterations int
	// UseDIIS enables Fock-matrix extrapolation.
	UseDIIS bool
	// Verbose emits a log line per iteration through Logger.
	Verbose bool
	// Tolerance is the energy-difference convergence criterion.
	Tolerance float64
	// SubspaceLength bounds the DIIS history.
	SubspaceLength int
	// SubspaceStart is the iteration offset after which DIIS
	// extrapolation kicks in.
	SubspaceStart int
	// Logger receives diagnostics; nil means no output. Logging is a
	// side channel and never affects results.
	Logger *zap.Logger
}

// DefaultOptions returns the reference settings: 100 iterations, DIIS
// with a four-matrix subspace, energy tolerance 1e-7.
func DefaultOptions() *Options {
	return &Options{
		MaxIterations:  100,
		UseDIIS:        true,
		Tolerance:      1e-7,
		SubspaceLength: 4,
		SubspaceStart:  1,
	}
}

// TimeStats is the wall-clock breakdown of a calculation.
type TimeStats struct {
	IntegralEvaluation time.Duration
	SelfConvergence    time.Duration
	Iterations         []time.Duration
}

// Result is the immutable outcome of an RHF calculation.
type Result struct {
	// Energy is the total energy of the final iterate in Hartree.
	Energy float64
	// Energies is the per-iteration total energy trace.
	Energies []float64
	// ErrorNorms holds the per-iteration norm of the DIIS error
	// vector FPS - SPF.
	ErrorNorms []float64

	Nuclei []Nucleus
	CGFs   []CGF

	// OrbitalEnergies and OrbitalCoeffs come from the last
	// diagonalized Fock matrix; occupied orbitals are the lowest
	// nelec/2 columns.
	OrbitalEnergies []float64
	OrbitalCoeffs   *mat.Dense

	Density   *mat.Dense
	Fock      *mat.Dense
	Transform *mat.Dense
	Overlap   *mat.Dense
	Kinetic   *mat.Dense
	Nuclear   *mat.Dense
	HCore     *mat.Dense

	// ECore is the one-electron diagnostic energy sum(P * (T+V)).
	ECore float64
	// TwoElectron is the permutation-compressed repulsion tensor,
	// addressed through Integrator.TEIndex.
	TwoElectron []float64

	TimeStats TimeStats

	// Forces holds -dE/dR per atom (Natoms x 3), nil unless requested.
	Forces *mat.Dense
}

// RHF performs a restricted Hartree-Fock calculation for the molecule
// in the named basis set. opts == nil selects DefaultOptions.
func RHF(mol *Molecule, basisName string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MaxIterations < 1 {
		return nil, errors.Newf("max iterations must be positive, got %d", opts.MaxIterations)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cgfs, nuclei, err := mol.BuildBasis(basisName)
	if err != nil {
		return nil, err
	}
	if len(cgfs) == 0 {
		return nil, errors.Wrapf(ErrEmptyBasis, "molecule %s in basis %q", mol.Name, basisName)
	}
	nelec := 0
	for _, nuc := range nuclei {
		nelec += nuc.Charge
	}
	if nelec%2 != 0 {
		return nil, errors.Wrapf(ErrOddElectronCount, "%d electrons", nelec)
	}
	nocc := nelec / 2

	integrator := NewIntegrator()
	var stats TimeStats
	start := time.Now()
	S, T, V, teint := integrator.BuildIntegrals(cgfs, nuclei)
	stats.IntegralEvaluation = time.Since(start)
	logger.Debug("integral evaluation done",
		zap.Int("nbasis", len(cgfs)),
		zap.Duration("elapsed", stats.IntegralEvaluation))

	x, err := transformationMatrix(S)
	if err != nil {
		return nil, err
	}

	sz := len(cgfs)
	hcore := mat.NewDense(sz, sz, nil)
	hcore.Add(T, V)
	enn := nuclearRepulsion(nuclei)

	// zero density as initial guess
	p := mat.NewDense(sz, sz, nil)

	diis := NewDIIS(opts.SubspaceLength, opts.SubspaceStart)
	var (
		energies   []float64
		errorNorms []float64
		orbe       []float64
		c          *mat.Dense
		f          *mat.Dense
	)

	start = time.Now()
	for niter := 0; niter < opts.MaxIterations; niter++ {
		iterStart := time.Now()

		if niter > opts.SubspaceStart && opts.UseDIIS {
			coeffs, err := diis.Coefficients()
			if err != nil {
				return nil, err
			}
			ftrial := diis.Extrapolate(coeffs)
			_, ctrial, err := diagonalize(ftrial, x)
			if err != nil {
				return nil, err
			}
			// trial density derived from the extrapolated Fock; it
			// feeds this pass's two-electron build and, per the
			// refresh policy below, becomes the density carried
			// forward
			p = densityMatrix(ctrial, nocc)
		}

		g := repulsionMatrix(p, teint, sz, integrator)
		f = mat.NewDense(sz, sz, nil)
		f.Add(hcore, g)

		orbe, c, err = diagonalize(f, x)
		if err != nil {
			return nil, err
		}

		energy := electronicEnergy(p, hcore, f) + enn
		energies = append(energies, energy)

		// density refresh policy: before DIIS kicks in (or with DIIS
		// disabled) rebuild from the fresh coefficients; afterwards
		// the DIIS-trial density is retained
		if niter <= opts.SubspaceStart || !opts.UseDIIS {
			p = densityMatrix(c, nocc)
		}

		e := commutatorError(f, p, S)
		errorNorms = append(errorNorms, mat.Norm(e, 2))
		diis.Push(mat.DenseCopyOf(f), mat.DenseCopyOf(p), e)

		stats.Iterations = append(stats.Iterations, time.Since(iterStart))

		if opts.Verbose {
			logger.Info("scf iteration",
				zap.Int("iteration", niter),
				zap.Float64("energy", energy),
				zap.Float64("error_rms", diis.ErrorRMS()),
				zap.Duration("elapsed", stats.Iterations[niter]))
		}

		if niter > 1 &&
			math.Abs(energies[niter-1]-energies[niter]) < opts.Tolerance {
			logger.Debug("scf converged", zap.Int("iterations", niter+1))
			break
		}
	}
	stats.SelfConvergence = time.Since(start)

	res := &Result{
		Energy:          energies[len(energies)-1],
		Energies:        energies,
		ErrorNorms:      errorNorms,
		Nuclei:          nuclei,
		CGFs:            cgfs,
		OrbitalEnergies: orbe,
		OrbitalCoeffs:   c,
		Density:         p,
		Fock:            f,
		Transform:       x,
		Overlap:         S,
		Kinetic:         T,
		Nuclear:         V,
		HCore:           hcore,
		ECore:           matrixContraction(p, hcore),
		TwoElectron:     teint,
		TimeStats:       stats,
	}

	if opts.CalcForces {
		forces, err := Forces(mol, basisName, c, p, orbe)
		if err != nil {
			return nil, err
		}
		res.Forces = forces
	}

	return res, nil
}

// transformationMatrix builds X = U diag(1/sqrt(s)) from the
// eigendecomposition S = U diag(s) U^T, so that X^T S X = I.
func transformationMatrix(s *mat.Dense) (*mat.Dense, error) {
	n, _ := s.Dims()
	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, mat.DenseCopyOf(s).RawMatrix().Data), true); !ok {
		return nil, errors.Wrap(ErrIllConditionedOverlap, "eigendecomposition failed")
	}

	vals := eig.Values(nil)
	invSqrt := make([]float64, n)
	for i, v := range vals {
		if v <= 0 {
			return nil, errors.Wrapf(ErrIllConditionedOverlap, "eigenvalue %d is %g", i, v)
		}
		invSqrt[i] = 1.0 / math.Sqrt(v)
	}

	var u mat.Dense
	eig.VectorsTo(&u)

	x := mat.NewDense(n, n, nil)
	x.Mul(&u, mat.NewDiagDense(n, invSqrt))
	return x, nil
}

// diagonalize transforms F to the orthogonal basis, solves the
// symmetric eigenproblem and back-transforms the coefficients.
func diagonalize(f, x *mat.Dense) ([]float64, *mat.Dense, error) {
	n, _ := f.Dims()

	var fprime mat.Dense
	fprime.Mul(x.T(), f)
	fprime.Mul(&fprime, x)

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, fprime.RawMatrix().Data), true); !ok {
		return nil, nil, errors.New("fock eigendecomposition failed")
	}

	var cprime mat.Dense
	eig.VectorsTo(&cprime)

	c := mat.NewDense(n, n, nil)
	c.Mul(x, &cprime)
	return eig.Values(nil), c, nil
}

// densityMatrix builds the closed-shell density from the occupied
// columns of C: P_ij = 2 sum_k C_ik C_jk, k < nocc.
func densityMatrix(c *mat.Dense, nocc int) *mat.Dense {
	n, _ := c.Dims()
	p := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < nocc; k++ {
				sum += 2.0 * c.At(i, k) * c.At(j, k)
			}
			p.Set(i, j, sum)
		}
	}
	return p
}

// repulsionMatrix contracts the density with the compressed
// two-electron tensor: G_ij = sum_kl P_kl ((ij|lk) - 1/2 (ik|lj)).
func repulsionMatrix(p *mat.Dense, teint []float64, sz int, it *Integrator) *mat.Dense {
	g := mat.NewDense(sz, sz, nil)
	for i := 0; i < sz; i++ {
		for j := 0; j < sz; j++ {
			sum := 0.0
			for k := 0; k < sz; k++ {
				for l := 0; l < sz; l++ {
					rep := teint[it.TEIndex(i, j, l, k)]
					exc := teint[it.TEIndex(i, k, l, j)]
					sum += p.At(k, l) * (rep - 0.5*exc)
				}
			}
			g.Set(i, j, sum)
		}
	}
	return g
}

// electronicEnergy is 1/2 sum_ij P_ji (Hcore + F)_ij.
func electronicEnergy(p, hcore, f *mat.Dense) float64 {
	n, _ := p.Dims()
	energy := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			energy += 0.5 * p.At(j, i) * (hcore.At(i, j) + f.At(i, j))
		}
	}
	return energy
}

// commutatorError flattens FPS - SPF into a vector.
func commutatorError(f, p, s *mat.Dense) *mat.VecDense {
	n, _ := f.Dims()
	var ps, fps, sp, spf mat.Dense
	ps.Mul(p, s)
	fps.Mul(f, &ps)
	sp.Mul(s, p)
	spf.Mul(&sp, f)
	fps.Sub(&fps, &spf)

	e := mat.NewVecDense(n*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e.SetVec(i*n+j, fps.At(i, j))
		}
	}
	return e
}

// matrixContraction is the elementwise sum of a*b.
func matrixContraction(a, b *mat.Dense) float64 {
	n, m := a.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			sum += a.At(i, j) * b.At(i, j)
		}
	}
	return sum
}
