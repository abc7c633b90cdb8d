// basis.go --  This file is part of the pyqint project.
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
	"embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

//go:embed data/sto3g.toml
var basisFiles embed.FS

type basisSet struct {
	Name     string         `toml:"name"`
	Elements []basisElement `toml:"element"`
}

type basisElement struct {
	Symbol string       `toml:"symbol"`
	Shells []basisShell `toml:"shell"`
}

type basisShell struct {
	Type          string    `toml:"type"` // "s" or "sp"
	Exponents     []float64 `toml:"exponents"`
	Coefficients  []float64 `toml:"coefficients"`
	PCoefficients []float64 `toml:"p-coefficients"`
}

func loadBasisSet(name string) (*basisSet, error) {
	data, err := basisFiles.ReadFile("data/" + strings.ToLower(name) + ".toml")
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownBasis, "%q", name)
	}
	var bs basisSet
	if err := toml.Unmarshal(data, &bs); err != nil {
		return nil, errors.Wrapf(err, "basis set %q", name)
	}
	return &bs, nil
}

func (bs *basisSet) element(symbol string) (*basisElement, error) {
	for i := range bs.Elements {
		if bs.Elements[i].Symbol == symbol {
			return &bs.Elements[i], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownBasis, "no %s entry in basis set %q", symbol, bs.Name)
}

// BuildBasis expands the molecule in the named basis set. It returns
// the ordered list of contracted Gaussians (per atom: s shells, then
// for each sp shell the 2s function followed by px, py, pz) and the
// nuclear frame.
func (m *Molecule) BuildBasis(name string) ([]CGF, []Nucleus, error) {
	bs, err := loadBasisSet(name)
	if err != nil {
		return nil, nil, err
	}

	var cgfs []CGF
	for _, at := range m.Atoms {
		el, err := bs.element(at.Symbol)
		if err != nil {
			return nil, nil, err
		}
		for _, sh := range el.Shells {
			switch sh.Type {
			case "s":
				cgf := NewCGF(at.R)
				for i, alpha := range sh.Exponents {
					cgf.AddGTO(sh.Coefficients[i], alpha, 0, 0, 0)
				}
				cgfs = append(cgfs, cgf)
			case "sp":
				cgf := NewCGF(at.R)
				for i, alpha := range sh.Exponents {
					cgf.AddGTO(sh.Coefficients[i], alpha, 0, 0, 0)
				}
				cgfs = append(cgfs, cgf)
				for p := 0; p < 3; p++ {
					cgf := NewCGF(at.R)
					l := [3]int{}
					l[p] = 1
					for i, alpha := range sh.Exponents {
						cgf.AddGTO(sh.PCoefficients[i], alpha, l[0], l[1], l[2])
					}
					cgfs = append(cgfs, cgf)
				}
			default:
				return nil, nil, errors.Newf("unsupported shell type %q in basis set %q", sh.Type, bs.Name)
			}
		}
	}

	return cgfs, m.Nuclei(), nil
}
