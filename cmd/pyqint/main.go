// main.go --  This file is part of the pyqint project.
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
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/TobyHilpert/pyqint"
)

type inputAtom struct {
	Symbol   string     `toml:"symbol"`
	Position [3]float64 `toml:"position"`
}

type inputSCF struct {
	MaxIterations int     `toml:"max-iterations"`
	Tolerance     float64 `toml:"tolerance"`
	DIIS          *bool   `toml:"diis"`
	Forces        bool    `toml:"forces"`
}

type inputFile struct {
	Name  string      `toml:"name"`
	Basis string      `toml:"basis"`
	Atoms []inputAtom `toml:"atoms"`
	SCF   inputSCF    `toml:"scf"`
}

var verbose bool

func main() {
	cmd := &cobra.Command{
		Use:   "pyqint <input.toml>",
		Short: "restricted Hartree-Fock calculations over Gaussian basis sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every SCF iteration")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	var in inputFile
	if _, err := toml.DecodeFile(path, &in); err != nil {
		return errors.Wrapf(err, "reading input %s", path)
	}
	if in.Basis == "" {
		in.Basis = "sto3g"
	}
	if len(in.Atoms) == 0 {
		return errors.Newf("no atoms in input %s", path)
	}

	mol := pyqint.NewMolecule(in.Name)
	for _, at := range in.Atoms {
		if err := mol.AddAtom(at.Symbol, at.Position[0], at.Position[1], at.Position[2]); err != nil {
			return err
		}
	}

	opts := pyqint.DefaultOptions()
	if in.SCF.MaxIterations > 0 {
		opts.MaxIterations = in.SCF.MaxIterations
	}
	if in.SCF.Tolerance > 0 {
		opts.Tolerance = in.SCF.Tolerance
	}
	if in.SCF.DIIS != nil {
		opts.UseDIIS = *in.SCF.DIIS
	}
	opts.CalcForces = in.SCF.Forces
	opts.Verbose = verbose

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	opts.Logger = logger

	res, err := pyqint.RHF(mol, in.Basis, opts)
	if err != nil {
		return err
	}

	delim := strings.Repeat("-", 70)
	fmt.Println(delim)
	fmt.Print(mol)
	fmt.Println(delim)

	for i, e := range res.Energies {
		fmt.Printf("Iteration %3d  Energy = %18.10f\n", i+1, e)
	}
	fmt.Println(delim)
	if len(res.Energies) == opts.MaxIterations {
		fmt.Println("Warning! SCF may not be converged; iteration limit reached.")
	}
	fmt.Println("Nuclei repulsion energy: ", nucRepulsion(res), " a.u.")
	fmt.Println("One-electron core energy:", res.ECore, " a.u.")
	fmt.Println("Final total energy =     ", res.Energy, " a.u.")
	fmt.Println(delim)

	fmt.Println("Orbital energies (a.u.):")
	for i, e := range res.OrbitalEnergies {
		fmt.Printf("  %3d  %14.8f\n", i+1, e)
	}

	if res.Forces != nil {
		fmt.Println(delim)
		fmt.Println("Forces (a.u.):")
		printDense(res.Forces)
	}

	fmt.Println(delim)
	fmt.Println("Integral evaluation:", res.TimeStats.IntegralEvaluation)
	fmt.Println("Self convergence:   ", res.TimeStats.SelfConvergence)

	return nil
}

func nucRepulsion(res *pyqint.Result) float64 {
	// total minus electronic part of the final iterate
	n, _ := res.Density.Dims()
	elec := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			elec += 0.5 * res.Density.At(j, i) * (res.HCore.At(i, j) + res.Fock.At(i, j))
		}
	}
	return res.Energy - elec
}

func printDense(d *mat.Dense) {
	fa := mat.Formatted(d, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("    %.8f\n", fa)
}
