package property

import (
	"fmt"
	"strings"

	"github.com/dptools/elastic/internal/elasticity"
	"github.com/dptools/elastic/internal/fileio"
)

// Report is the aggregated result of the elastic stage. The tensor is in
// GPa, flattened row-major.
type Report struct {
	ElasticTensor []float64 `json:"elastic_tensor"`
	BV            float64   `json:"BV"`
	GV            float64   `json:"GV"`
	EV            float64   `json:"EV"`
	UV            float64   `json:"uV"`
}

// Tensor returns the elastic tensor as a 6x6 matrix.
func (r *Report) Tensor() (elasticity.ElasticTensor, error) {
	c, ok := elasticity.ElasticTensorFromFlat(r.ElasticTensor)
	if !ok {
		return c, fmt.Errorf("elastic tensor has %d entries, want 36", len(r.ElasticTensor))
	}
	return c, nil
}

// Format renders the report as a human-readable block headed by header.
func (r *Report) Format(header string) string {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	c, _ := elasticity.ElasticTensorFromFlat(r.ElasticTensor)
	for _, row := range c {
		for _, v := range row {
			fmt.Fprintf(&sb, "%7.2f ", v)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "# Bulk   Modulus BV = %.2f GPa\n", r.BV)
	fmt.Fprintf(&sb, "# Shear  Modulus GV = %.2f GPa\n", r.GV)
	fmt.Fprintf(&sb, "# Youngs Modulus EV = %.2f GPa\n", r.EV)
	fmt.Fprintf(&sb, "# Poisson Ratio uV = %.2f\n", r.UV)
	return sb.String()
}

// ReadReport loads a report written by Compute.
func ReadReport(path string) (*Report, error) {
	var r Report
	if err := fileio.NewReader("").ReadJSON(path, &r); err != nil {
		return nil, err
	}
	if _, err := r.Tensor(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}
