// element.go --  This file is part of the pyqint project.
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
	_ "embed"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

//go:embed data/mendeleev.csv
var elementData string

// Mendeleev holds the periodic-table records shipped with the package.
type Mendeleev struct {
	Z          []int
	Symb, Name []string
	Mass       []float64
}

var elements Mendeleev

func init() {
	elements.build()
}

func (m *Mendeleev) build() {
	for i, str := range strings.Split(strings.TrimSpace(elementData), "\n") {
		if i == 0 {
			continue // header
		}
		words := strings.Split(str, ",")
		z, _ := strconv.Atoi(words[0])
		mass, _ := strconv.ParseFloat(words[3], 64)
		m.Z = append(m.Z, z)
		m.Symb = append(m.Symb, words[1])
		m.Name = append(m.Name, words[2])
		m.Mass = append(m.Mass, mass)
	}
}

// elementNumber resolves an element symbol to its nuclear charge.
func elementNumber(symbol string) (int, error) {
	idx := slices.Index(elements.Symb, symbol)
	if idx < 0 {
		return 0, errors.Wrapf(ErrUnknownElement, "symbol %q", symbol)
	}
	return elements.Z[idx], nil
}
