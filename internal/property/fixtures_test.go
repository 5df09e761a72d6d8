package property_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"

	"github.com/dptools/elastic/internal/elasticity"
)

const fccAl = `Al4
1.0
4.05 0.0 0.0
0.0 4.05 0.0
0.0 0.0 4.05
Al
4
Direct
0.0 0.0 0.0
0.0 0.5 0.5
0.5 0.0 0.5
0.5 0.5 0.0
`

func cubic(c11, c12, c44 float64) elasticity.ElasticTensor {
	var c elasticity.ElasticTensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = c12
		}
		c[i][i] = c11
		c[3+i][3+i] = c44
	}
	return c
}

// driverStress returns the stress a driver would report, in kBar with
// compression positive, for a material with stiffness c in GPa.
func driverStress(c elasticity.ElasticTensor, e elasticity.Strain) [][]float64 {
	ev := e.Voigt()
	out := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	for j, p := range elasticity.VoigtPairs {
		s := 0.0
		for i := 0; i < 6; i++ {
			s += c[j][i] * ev[i]
		}
		out[p[0]][p[1]] = -10 * s
		out[p[1]][p[0]] = -10 * s
	}
	return out
}

// withResidual adds a hydrostatic residual of p kBar to a driver stress.
func withResidual(stress [][]float64, p float64) [][]float64 {
	out := make([][]float64, 3)
	for i := range stress {
		out[i] = append([]float64{}, stress[i]...)
		out[i][i] += p
	}
	return out
}

func writeResult(path string, frames ...[][]float64) {
	data, err := json.Marshal(map[string]interface{}{"stress": frames, "energies": []float64{-1}})
	Expect(err).To(BeNil())
	Expect(os.WriteFile(path, data, 0o644)).To(Succeed())
}

func zeroStress() [][]float64 {
	return [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
}

// makeEquilibrium writes a finished relaxation below root and returns its directory.
func makeEquilibrium(root string) string {
	equi := filepath.Join(root, "confs", "Al", "relaxation", "relax_task")
	Expect(os.MkdirAll(equi, 0o755)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(equi, "CONTCAR"), []byte(fccAl), 0o644)).To(Succeed())
	writeResult(filepath.Join(equi, "result.json"), [][]float64{{5, 0, 0}, {0, 5, 0}, {0, 0, 5}}, zeroStress())
	return equi
}
