package vasp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Structure is a periodic crystal structure. The lattice is stored with
// the POSCAR scale already applied and positions are always fractional.
type Structure struct {
	Comment string
	// Lattice rows are the a, b and c vectors in Angstrom.
	Lattice [3][3]float64
	// Species is empty for VASP 4 files that omit the element line.
	Species []string
	Counts  []int
	// Frac holds one fractional position per site, grouped by species.
	Frac [][3]float64
	// Flags holds selective-dynamics flags; nil when the file had none.
	Flags [][3]bool
}

// NumSites returns the number of atoms in the cell.
func (s *Structure) NumSites() int {
	return len(s.Frac)
}

// Volume returns the cell volume in cubic Angstrom.
func (s *Structure) Volume() float64 {
	return math.Abs(mat.Det(latticeDense(s.Lattice)))
}

// Copy returns a deep copy of s.
func (s *Structure) Copy() *Structure {
	c := &Structure{
		Comment: s.Comment,
		Lattice: s.Lattice,
		Species: append([]string(nil), s.Species...),
		Counts:  append([]int(nil), s.Counts...),
		Frac:    append([][3]float64(nil), s.Frac...),
	}
	if s.Flags != nil {
		c.Flags = append([][3]bool(nil), s.Flags...)
	}
	return c
}

// ReadPoscarFile parses the POSCAR or CONTCAR at path.
func ReadPoscarFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadPoscar(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return s, nil
}

// ReadPoscar parses a structure in POSCAR format.
func ReadPoscar(r io.Reader) (*Structure, error) { // nolint: gocyclo
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 7 {
		return nil, errors.Wrap(ErrMalformedPoscar, "file too short")
	}

	s := &Structure{Comment: strings.TrimSpace(lines[0])}

	scales, err := parseFloats(lines[1])
	if err != nil || (len(scales) != 1 && len(scales) != 3) {
		return nil, errors.Wrapf(ErrMalformedPoscar, "bad scaling line %q", lines[1])
	}

	var raw [3][3]float64
	for i := 0; i < 3; i++ {
		vec, err := parseFloats(lines[2+i])
		if err != nil || len(vec) < 3 {
			return nil, errors.Wrapf(ErrMalformedPoscar, "bad lattice vector %q", lines[2+i])
		}
		copy(raw[i][:], vec[:3])
	}

	axisScale := [3]float64{1, 1, 1}
	switch {
	case len(scales) == 3:
		axisScale = [3]float64{scales[0], scales[1], scales[2]}
	case scales[0] < 0:
		// negative scale is the target volume
		vol := math.Abs(mat.Det(latticeDense(raw)))
		if vol == 0 {
			return nil, ErrSingularLattice
		}
		f := math.Cbrt(-scales[0] / vol)
		axisScale = [3]float64{f, f, f}
	default:
		axisScale = [3]float64{scales[0], scales[0], scales[0]}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.Lattice[i][j] = raw[i][j] * axisScale[j]
		}
	}

	idx := 5
	fields := strings.Fields(lines[idx])
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrMalformedPoscar, "missing species or counts line")
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		s.Species = fields
		idx++
		if idx >= len(lines) {
			return nil, errors.Wrap(ErrMalformedPoscar, "missing counts line")
		}
		fields = strings.Fields(lines[idx])
	}
	total := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			break
		}
		s.Counts = append(s.Counts, n)
		total += n
	}
	if len(s.Counts) == 0 {
		return nil, errors.Wrapf(ErrMalformedPoscar, "bad counts line %q", lines[idx])
	}
	if len(s.Species) > 0 && len(s.Species) != len(s.Counts) {
		return nil, errors.Wrapf(ErrMalformedPoscar, "%d species but %d counts", len(s.Species), len(s.Counts))
	}
	idx++

	if idx >= len(lines) {
		return nil, errors.Wrap(ErrMalformedPoscar, "missing coordinate mode")
	}
	selective := false
	if mode := strings.TrimSpace(lines[idx]); mode != "" && (mode[0] == 's' || mode[0] == 'S') {
		selective = true
		idx++
	}
	if idx >= len(lines) {
		return nil, errors.Wrap(ErrMalformedPoscar, "missing coordinate mode")
	}
	mode := strings.TrimSpace(lines[idx])
	cartesian := mode != "" && strings.ContainsRune("cCkK", rune(mode[0]))
	idx++

	if len(lines)-idx < total {
		return nil, errors.Wrapf(ErrMalformedPoscar, "expected %d positions, found %d lines", total, len(lines)-idx)
	}

	var inv mat.Dense
	if cartesian {
		if err := inv.Inverse(latticeDense(s.Lattice)); err != nil {
			return nil, ErrSingularLattice
		}
	}

	for n := 0; n < total; n++ {
		fields := strings.Fields(lines[idx+n])
		if len(fields) < 3 {
			return nil, errors.Wrapf(ErrMalformedPoscar, "bad position %q", lines[idx+n])
		}
		var pos [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedPoscar, "bad position %q", lines[idx+n])
			}
			pos[k] = v
		}
		if cartesian {
			var cart [3]float64
			for k := 0; k < 3; k++ {
				cart[k] = pos[k] * axisScale[k]
			}
			for k := 0; k < 3; k++ {
				pos[k] = cart[0]*inv.At(0, k) + cart[1]*inv.At(1, k) + cart[2]*inv.At(2, k)
			}
		}
		s.Frac = append(s.Frac, pos)

		if selective {
			var flags [3]bool
			for k := 0; k < 3 && 3+k < len(fields); k++ {
				flags[k] = strings.HasPrefix(strings.ToUpper(fields[3+k]), "T")
			}
			s.Flags = append(s.Flags, flags)
		}
	}

	return s, nil
}

// WritePoscarFile writes s to path in POSCAR format.
func (s *Structure) WritePoscarFile(path string) error {
	var buf bytes.Buffer
	if err := s.WritePoscar(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WritePoscar writes s in POSCAR format with unit scale and Direct positions.
func (s *Structure) WritePoscar(w io.Writer) error {
	bw := bufio.NewWriter(w)
	comment := s.Comment
	if comment == "" {
		comment = s.Formula()
	}
	fmt.Fprintln(bw, comment)
	fmt.Fprintln(bw, "1.0")
	for _, row := range s.Lattice {
		fmt.Fprintf(bw, "%22.16f%22.16f%22.16f\n", row[0], row[1], row[2])
	}
	if len(s.Species) > 0 {
		fmt.Fprintln(bw, strings.Join(s.Species, " "))
	}
	counts := make([]string, len(s.Counts))
	for i, c := range s.Counts {
		counts[i] = strconv.Itoa(c)
	}
	fmt.Fprintln(bw, strings.Join(counts, " "))
	if s.Flags != nil {
		fmt.Fprintln(bw, "Selective dynamics")
	}
	fmt.Fprintln(bw, "direct")

	labels := s.siteLabels()
	for n, p := range s.Frac {
		fmt.Fprintf(bw, "%20.16f%20.16f%20.16f", p[0], p[1], p[2])
		if s.Flags != nil && n < len(s.Flags) {
			for _, f := range s.Flags[n] {
				if f {
					fmt.Fprint(bw, " T")
				} else {
					fmt.Fprint(bw, " F")
				}
			}
		}
		if labels != nil {
			fmt.Fprintf(bw, " %s", labels[n])
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// Formula returns a compact composition string such as "Al4" or "Mg1O1".
func (s *Structure) Formula() string {
	if len(s.Species) == 0 {
		return "unknown"
	}
	var b strings.Builder
	for i, sp := range s.Species {
		fmt.Fprintf(&b, "%s%d", sp, s.Counts[i])
	}
	return b.String()
}

func (s *Structure) siteLabels() []string {
	if len(s.Species) == 0 {
		return nil
	}
	labels := make([]string, 0, len(s.Frac))
	for i, sp := range s.Species {
		for n := 0; n < s.Counts[i]; n++ {
			labels = append(labels, sp)
		}
	}
	if len(labels) != len(s.Frac) {
		return nil
	}
	return labels
}

func parseFloats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			// trailing annotations are allowed after the numbers
			if len(out) > 0 {
				break
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func latticeDense(l [3][3]float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		l[0][0], l[0][1], l[0][2],
		l[1][0], l[1][1], l[1][2],
		l[2][0], l[2][1], l[2][2],
	})
}
