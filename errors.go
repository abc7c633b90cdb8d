// errors.go --  This file is part of the pyqint project.
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

import "github.com/cockroachdb/errors"

// Calculation errors. All are fatal to the invocation that produced them;
// none are retried. Running out of SCF iterations is not an error (see
// RHF), callers detect it from the length of the energy trace.
var (
	// ErrIllConditionedOverlap marks an overlap matrix that is not
	// positive-definite, typically a near-linearly-dependent basis.
	ErrIllConditionedOverlap = errors.New("ill-conditioned overlap matrix")

	// ErrSingularDIIS marks a bordered DIIS system that cannot be
	// solved because the stored error vectors are linearly dependent.
	ErrSingularDIIS = errors.New("singular DIIS subspace system")

	// ErrOddElectronCount marks a molecule whose electron count breaks
	// the closed-shell double-occupation assumption.
	ErrOddElectronCount = errors.New("odd electron count in closed-shell calculation")

	// ErrEmptyBasis marks a calculation attempted with zero basis
	// functions.
	ErrEmptyBasis = errors.New("empty basis")

	ErrUnknownElement = errors.New("unknown element")
	ErrUnknownBasis   = errors.New("unknown basis set")
)
