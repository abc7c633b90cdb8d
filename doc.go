// doc.go --  This file is part of the pyqint project.
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

// Package pyqint performs restricted (closed-shell) Hartree-Fock
// calculations over contracted cartesian Gaussian basis sets.
//
// The package contains a native integral engine (overlap, kinetic,
// nuclear attraction and two-electron repulsion integrals plus their
// geometric derivatives, evaluated with the Taketa-Huzinaga-O-ohata
// scheme), a self-consistent-field driver with DIIS convergence
// acceleration, and an analytic nuclear gradient. All quantities are in
// atomic units.
//
// A calculation is driven through RHF:
//
//	mol := pyqint.NewMolecule("H2")
//	mol.AddAtom("H", 0, 0, 0)
//	mol.AddAtom("H", 0, 0, 1.4)
//	res, err := pyqint.RHF(mol, "sto3g", nil)
//
// The returned Result holds the total energy, the per-iteration energy
// trace, orbital energies and coefficients, the converged density and
// Fock matrices, and, on request, the forces on the nuclei.
package pyqint
