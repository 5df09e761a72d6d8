package elasticity

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

type strainState struct {
	strains  []float64
	stresses [6][]float64
}

// FromIndependentStrains fits the elastic tensor from strain/stress pairs in
// which every strain has exactly one non-zero Voigt component. The pairs for
// each of the six components are extended with the zero-strain point at
// eqStress, and C[i][j] is the least-squares slope of stress component j
// against strain component i. Strains with several non-zero components do
// not contribute.
func FromIndependentStrains(strains []Strain, stresses []Stress, eqStress Stress) (ElasticTensor, error) {
	if len(strains) != len(stresses) {
		return ElasticTensor{}, fmt.Errorf("%w: %d strains, %d stresses", ErrLengthMismatch, len(strains), len(stresses))
	}

	states := map[int]*strainState{}
	skipped := 0
	for n := range strains {
		v := strains[n].Voigt()
		component := -1
		nonZero := 0
		for k := range v {
			if math.Abs(v[k]) > DefaultTolerance {
				component = k
				nonZero++
			}
		}
		if nonZero != 1 {
			skipped++
			continue
		}

		st, ok := states[component]
		if !ok {
			st = &strainState{}
			states[component] = st
		}
		sv := Stress(Matrix3(stresses[n]).Zeroed(DefaultTolerance)).Voigt()
		st.strains = append(st.strains, v[component])
		for j := 0; j < 6; j++ {
			st.stresses[j] = append(st.stresses[j], sv[j])
		}
	}
	if skipped > 0 {
		zap.S().Named("elasticity").Warnf("%d strain-stress pairs are not independent strain states and were neglected", skipped)
	}

	eq := eqStress.Voigt()
	var c ElasticTensor
	for i := 0; i < 6; i++ {
		st, ok := states[i]
		if !ok {
			return ElasticTensor{}, fmt.Errorf("%w: voigt component %d", ErrMissingStrainState, i)
		}
		x := append(append([]float64{}, st.strains...), 0)
		for j := 0; j < 6; j++ {
			y := append(append([]float64{}, st.stresses[j]...), eq[j])
			_, slope := stat.LinearRegression(x, y, nil, false)
			c[i][j] = slope
		}
	}
	return c.Zeroed(DefaultTolerance), nil
}
