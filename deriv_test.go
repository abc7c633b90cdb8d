// deriv_test.go --  This file is part of the pyqint project.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fdStep = 1e-5

// h2at builds the STO-3G basis for H2 with the second atom displaced to
// z along the bond axis.
func h2at(t *testing.T, z float64) ([]CGF, []Nucleus) {
	t.Helper()
	mol := NewMolecule("H2")
	require.NoError(t, mol.AddAtom("H", 0, 0, 0))
	require.NoError(t, mol.AddAtom("H", 0, 0, z))
	cgfs, nuclei, err := mol.BuildBasis("sto3g")
	require.NoError(t, err)
	return cgfs, nuclei
}

func TestOverlapDerivAgainstFiniteDifference(t *testing.T) {
	it := NewIntegrator()
	cgfs, nuclei := h2at(t, 1.4)

	got := it.OverlapDeriv(&cgfs[0], &cgfs[1], nuclei[1].R, 2)

	cp, _ := h2at(t, 1.4+fdStep)
	cm, _ := h2at(t, 1.4-fdStep)
	want := (it.Overlap(&cp[0], &cp[1]) - it.Overlap(&cm[0], &cm[1])) / (2 * fdStep)

	assert.InDelta(t, want, got, 1e-7)
}

func TestOverlapDerivTranslationalInvariance(t *testing.T) {
	it := NewIntegrator()
	cgfs, nuclei := h2at(t, 1.4)

	// moving both centers together leaves the overlap unchanged
	d0 := it.OverlapDeriv(&cgfs[0], &cgfs[1], nuclei[0].R, 2)
	d1 := it.OverlapDeriv(&cgfs[0], &cgfs[1], nuclei[1].R, 2)
	assert.InDelta(t, 0.0, d0+d1, 1e-10)

	// perpendicular components vanish on the bond axis
	assert.InDelta(t, 0.0, it.OverlapDeriv(&cgfs[0], &cgfs[1], nuclei[1].R, 0), 1e-12)
	assert.InDelta(t, 0.0, it.OverlapDeriv(&cgfs[0], &cgfs[1], nuclei[1].R, 1), 1e-12)
}

func TestKineticDerivAgainstFiniteDifference(t *testing.T) {
	it := NewIntegrator()
	cgfs, nuclei := h2at(t, 1.4)

	got := it.KineticDeriv(&cgfs[0], &cgfs[1], nuclei[1].R, 2)

	cp, _ := h2at(t, 1.4+fdStep)
	cm, _ := h2at(t, 1.4-fdStep)
	want := (it.Kinetic(&cp[0], &cp[1]) - it.Kinetic(&cm[0], &cm[1])) / (2 * fdStep)

	assert.InDelta(t, want, got, 1e-7)
}

func TestNuclearDerivAgainstFiniteDifference(t *testing.T) {
	it := NewIntegrator()
	cgfs, nuclei := h2at(t, 1.4)

	// derivative of the full attraction sum towards z of the second atom
	got := 0.0
	for _, nuc := range nuclei {
		got += it.NuclearDeriv(&cgfs[0], &cgfs[1], nuc.R, nuc.Charge, nuclei[1].R, 2)
	}

	attraction := func(cgfs []CGF, nuclei []Nucleus) float64 {
		v := 0.0
		for _, nuc := range nuclei {
			v += it.Nuclear(&cgfs[0], &cgfs[1], nuc.R, nuc.Charge)
		}
		return v
	}
	cp, np := h2at(t, 1.4+fdStep)
	cm, nm := h2at(t, 1.4-fdStep)
	want := (attraction(cp, np) - attraction(cm, nm)) / (2 * fdStep)

	assert.InDelta(t, want, got, 1e-6)
}

func TestNuclearDerivOperatorOnly(t *testing.T) {
	it := NewIntegrator()
	cgfs, _ := h2at(t, 1.4)

	// a bare point charge away from both centers exercises only the
	// operator part of the derivative
	at := func(c Vec3) float64 {
		return it.Nuclear(&cgfs[0], &cgfs[1], c, 1)
	}
	for coord := 0; coord < 3; coord++ {
		c := Vec3{0.1, 0.2, 0.5}
		got := it.NuclearDeriv(&cgfs[0], &cgfs[1], c, 1, c, coord)

		cp, cm := c, c
		cp[coord] += fdStep
		cm[coord] -= fdStep
		want := (at(cp) - at(cm)) / (2 * fdStep)

		assert.InDelta(t, want, got, 1e-6, "coord=%d", coord)
	}
}

func TestRepulsionDerivAgainstFiniteDifference(t *testing.T) {
	it := NewIntegrator()
	cgfs, nuclei := h2at(t, 1.4)

	got := it.RepulsionDeriv(&cgfs[0], &cgfs[1], &cgfs[0], &cgfs[1], nuclei[1].R, 2)

	cp, _ := h2at(t, 1.4+fdStep)
	cm, _ := h2at(t, 1.4-fdStep)
	want := (it.Repulsion(&cp[0], &cp[1], &cp[0], &cp[1]) -
		it.Repulsion(&cm[0], &cm[1], &cm[0], &cm[1])) / (2 * fdStep)

	assert.InDelta(t, want, got, 1e-6)
}

func TestDerivVanishesAwayFromCenters(t *testing.T) {
	it := NewIntegrator()
	cgfs, _ := h2at(t, 1.4)

	// differentiating towards a nucleus carrying no basis function
	// leaves overlap, kinetic and repulsion integrals unchanged
	far := Vec3{5, 5, 5}
	assert.Zero(t, it.OverlapDeriv(&cgfs[0], &cgfs[1], far, 2))
	assert.Zero(t, it.KineticDeriv(&cgfs[0], &cgfs[1], far, 2))
	assert.Zero(t, it.RepulsionDeriv(&cgfs[0], &cgfs[1], &cgfs[0], &cgfs[1], far, 2))
}
