// molecule_test.go --  This file is part of the pyqint project.
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

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// h2 is the Szabo-Ostlund test geometry: two hydrogens at 1.4 bohr.
func h2(t *testing.T) *Molecule {
	t.Helper()
	mol := NewMolecule("H2")
	require.NoError(t, mol.AddAtom("H", 0, 0, 0))
	require.NoError(t, mol.AddAtom("H", 0, 0, 1.4))
	return mol
}

func TestMoleculeString(t *testing.T) {
	mol := h2(t)
	want := "Molecule: H2\n" +
		" H (0.000000,0.000000,0.000000)\n" +
		" H (0.000000,0.000000,1.400000)\n"
	assert.Equal(t, want, mol.String())
}

func TestCGFString(t *testing.T) {
	cgf := NewCGF(Vec3{0, 0, 0})
	cgf.AddGTO(0.1543289673, 3.425250914, 0, 0, 0)
	cgf.AddGTO(0.5353281423, 0.6239137298, 0, 0, 0)
	cgf.AddGTO(0.4446345422, 0.1688554040, 0, 0, 0)

	want := "CGF; R=(0.000000,0.000000,0.000000)\n" +
		" 01 | GTO : c=0.154329, alpha=3.425251, l=0, m=0, n=0, R=(0.000000,0.000000,0.000000)\n" +
		" 02 | GTO : c=0.535328, alpha=0.623914, l=0, m=0, n=0, R=(0.000000,0.000000,0.000000)\n" +
		" 03 | GTO : c=0.444635, alpha=0.168855, l=0, m=0, n=0, R=(0.000000,0.000000,0.000000)\n"
	assert.Equal(t, want, cgf.String())
}

func TestAddAtomUnknownElement(t *testing.T) {
	mol := NewMolecule("bogus")
	err := mol.AddAtom("Xx", 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

func TestNelecAndNuclei(t *testing.T) {
	mol := NewMolecule("water")
	require.NoError(t, mol.AddAtom("O", 0, 0, 0))
	require.NoError(t, mol.AddAtom("H", 0, 1.43, -1.11))
	require.NoError(t, mol.AddAtom("H", 0, -1.43, -1.11))

	assert.Equal(t, 10, mol.Nelec())

	nuclei := mol.Nuclei()
	require.Len(t, nuclei, 3)
	assert.Equal(t, 8, nuclei[0].Charge)
	assert.Equal(t, 1, nuclei[1].Charge)
	assert.Equal(t, Vec3{0, -1.43, -1.11}, nuclei[2].R)
}

func TestBuildBasisH2(t *testing.T) {
	mol := h2(t)
	cgfs, nuclei, err := mol.BuildBasis("sto3g")
	require.NoError(t, err)

	require.Len(t, cgfs, 2)
	require.Len(t, nuclei, 2)
	for _, c := range cgfs {
		assert.Len(t, c.GTOs, 3)
	}
	assert.Equal(t, Vec3{0, 0, 1.4}, cgfs[1].R)
}

func TestBuildBasisCarbon(t *testing.T) {
	mol := NewMolecule("C")
	require.NoError(t, mol.AddAtom("C", 0, 0, 0))
	cgfs, _, err := mol.BuildBasis("sto3g")
	require.NoError(t, err)

	// 1s, 2s, 2px, 2py, 2pz
	require.Len(t, cgfs, 5)
	assert.Equal(t, 0, cgfs[1].GTOs[0].L)
	assert.Equal(t, 1, cgfs[2].GTOs[0].L)
	assert.Equal(t, 1, cgfs[3].GTOs[0].M)
	assert.Equal(t, 1, cgfs[4].GTOs[0].N)
}

func TestBuildBasisUnknownBasis(t *testing.T) {
	mol := h2(t)
	_, _, err := mol.BuildBasis("def2-nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBasis))
}

func TestBuildBasisElementNotInSet(t *testing.T) {
	mol := NewMolecule("NaH")
	require.NoError(t, mol.AddAtom("Na", 0, 0, 0))
	require.NoError(t, mol.AddAtom("H", 0, 0, 3.57))
	_, _, err := mol.BuildBasis("sto3g")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBasis))
}

func TestNuclearRepulsion(t *testing.T) {
	mol := h2(t)
	assert.InDelta(t, 1.0/1.4, nuclearRepulsion(mol.Nuclei()), 1e-12)
}
