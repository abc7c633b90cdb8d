// molecule.go --  This file is part of the pyqint project.
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
	"strings"
)

// Atom is a nucleus together with its element identity. Coordinates are
// in bohr.
type Atom struct {
	Symbol string
	Z      int
	R      Vec3
}

// Nucleus is the (position, charge) pair the integral engine and the
// SCF driver operate on; the ordered nucleus sequence forms the
// molecule's nuclear frame.
type Nucleus struct {
	R      Vec3
	Charge int
}

// Molecule is an ordered collection of atoms.
type Molecule struct {
	Name  string
	Atoms []Atom
}

func NewMolecule(name string) *Molecule {
	return &Molecule{Name: name}
}

// AddAtom appends an atom by element symbol at position (x, y, z) in
// bohr.
func (m *Molecule) AddAtom(symbol string, x, y, z float64) error {
	z0, err := elementNumber(symbol)
	if err != nil {
		return err
	}
	m.Atoms = append(m.Atoms, Atom{Symbol: symbol, Z: z0, R: Vec3{x, y, z}})
	return nil
}

// Nelec returns the total electron count of the neutral molecule.
func (m *Molecule) Nelec() int {
	result := 0
	for _, a := range m.Atoms {
		result += a.Z
	}
	return result
}

// Nuclei returns the nuclear frame in atom order.
func (m *Molecule) Nuclei() []Nucleus {
	result := make([]Nucleus, 0, len(m.Atoms))
	for _, a := range m.Atoms {
		result = append(result, Nucleus{R: a.R, Charge: a.Z})
	}
	return result
}

func (m *Molecule) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Molecule: %s\n", m.Name)
	for _, a := range m.Atoms {
		fmt.Fprintf(&sb, " %s (%f,%f,%f)\n", a.Symbol, a.R[0], a.R[1], a.R[2])
	}
	return sb.String()
}

// nuclearRepulsion is the Coulomb repulsion between all nucleus pairs.
func nuclearRepulsion(nuclei []Nucleus) float64 {
	result := 0.0
	for i := range nuclei {
		for j := 0; j < i; j++ {
			r := nuclei[i].R.Sub(nuclei[j].R).Norm()
			result += float64(nuclei[i].Charge*nuclei[j].Charge) / r
		}
	}
	return result
}
