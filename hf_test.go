// hf_test.go --  This file is part of the pyqint project.
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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRHFH2Energy(t *testing.T) {
	res, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	// Szabo & Ostlund §3.5.2: E = -1.1167 a.u.
	assert.InDelta(t, -1.1167, res.Energy, 5e-4)
	assert.Less(t, len(res.Energies), 100, "should converge well before the iteration cap")
	assert.Equal(t, res.Energy, res.Energies[len(res.Energies)-1])

	require.Len(t, res.OrbitalEnergies, 2)
	assert.InDelta(t, -0.578, res.OrbitalEnergies[0], 5e-3)
	assert.Less(t, res.OrbitalEnergies[0], res.OrbitalEnergies[1])
}

func TestRHFHeliumEnergy(t *testing.T) {
	mol := NewMolecule("He")
	require.NoError(t, mol.AddAtom("He", 0, 0, 0))

	// a single basis function makes F, P and S commute exactly, so the
	// DIIS error vectors vanish and extrapolation has nothing to work
	// with; plain Roothaan iterations settle immediately
	opts := DefaultOptions()
	opts.UseDIIS = false

	res, err := RHF(mol, "sto3g", opts)
	require.NoError(t, err)
	assert.InDelta(t, -2.8078, res.Energy, 1e-3)
}

func TestRHFTransformOrthogonalizesOverlap(t *testing.T) {
	res, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	n, _ := res.Overlap.Dims()
	var xtsx mat.Dense
	xtsx.Product(res.Transform.T(), res.Overlap, res.Transform)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, xtsx.At(i, j), 1e-8)
		}
	}
}

func TestRHFDensityTrace(t *testing.T) {
	mol := h2(t)
	res, err := RHF(mol, "sto3g", nil)
	require.NoError(t, err)

	var ps mat.Dense
	ps.Mul(res.Density, res.Overlap)
	assert.InDelta(t, float64(mol.Nelec()), mat.Trace(&ps), 1e-6)
}

func TestRHFDeterminism(t *testing.T) {
	r1, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)
	r2, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	require.Equal(t, len(r1.Energies), len(r2.Energies))
	for i := range r1.Energies {
		assert.Equal(t, r1.Energies[i], r2.Energies[i], "iteration %d", i)
	}
}

func TestRHFErrorNormsShrink(t *testing.T) {
	res, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	require.Equal(t, len(res.Energies), len(res.ErrorNorms))
	last := res.ErrorNorms[len(res.ErrorNorms)-1]
	assert.Less(t, last, 1e-5, "commutator FPS-SPF should vanish at self-consistency")
}

func TestRHFIterationCapIsNotAnError(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIterations = 3
	opts.Tolerance = 1e-30

	res, err := RHF(h2(t), "sto3g", opts)
	require.NoError(t, err)
	assert.Len(t, res.Energies, 3)
	assert.Len(t, res.TimeStats.Iterations, 3)
}

func TestRHFWithoutDIIS(t *testing.T) {
	opts := DefaultOptions()
	opts.UseDIIS = false

	res, err := RHF(h2(t), "sto3g", opts)
	require.NoError(t, err)
	assert.InDelta(t, -1.1167, res.Energy, 5e-4)
}

func TestRHFOddElectronCount(t *testing.T) {
	mol := NewMolecule("H3")
	require.NoError(t, mol.AddAtom("H", 0, 0, 0))
	require.NoError(t, mol.AddAtom("H", 0, 0, 1.4))
	require.NoError(t, mol.AddAtom("H", 0, 0, 2.8))

	_, err := RHF(mol, "sto3g", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOddElectronCount))
}

func TestRHFEmptyMolecule(t *testing.T) {
	_, err := RHF(NewMolecule("void"), "sto3g", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyBasis))
}

func TestRHFInvalidMaxIterations(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIterations = 0
	_, err := RHF(h2(t), "sto3g", opts)
	require.Error(t, err)
}

func TestRHFEnergyTraceMonotoneTail(t *testing.T) {
	res, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	// successive differences below tolerance only at the very end
	n := len(res.Energies)
	require.Greater(t, n, 2)
	assert.Less(t, math.Abs(res.Energies[n-1]-res.Energies[n-2]), 1e-7)
}

func TestRHFECore(t *testing.T) {
	res, err := RHF(h2(t), "sto3g", nil)
	require.NoError(t, err)

	want := 0.0
	n, _ := res.Density.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want += res.Density.At(i, j) * res.HCore.At(i, j)
		}
	}
	assert.InDelta(t, want, res.ECore, 1e-12)
	assert.Negative(t, res.ECore)
}
