package vasp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Incar holds INCAR tags keyed by their upper-cased name. Values are kept
// verbatim and converted on access.
type Incar map[string]string

// ReadIncarFile parses the INCAR at path.
func ReadIncarFile(path string) (Incar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseIncar(f)
}

// ParseIncar reads KEY = VALUE pairs. Several pairs may share a line when
// separated by ';'; '#' and '!' start comments. Lines without '=' are skipped.
func ParseIncar(r io.Reader) (Incar, error) {
	incar := Incar{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexAny(line, "#!"); i >= 0 {
			line = line[:i]
		}
		for _, part := range strings.Split(line, ";") {
			key, value, ok := strings.Cut(part, "=")
			if !ok {
				continue
			}
			key = strings.ToUpper(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			incar[key] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return incar, nil
}

// Has reports whether the tag is set.
func (i Incar) Has(key string) bool {
	_, ok := i[strings.ToUpper(key)]
	return ok
}

// Float returns the numeric value of key. ok is false when the tag is absent.
func (i Incar) Float(key string) (value float64, ok bool, err error) {
	raw, ok := i[strings.ToUpper(key)]
	if !ok {
		return 0, false, nil
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, true, fmt.Errorf("INCAR tag %s has no value", key)
	}
	value, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, true, fmt.Errorf("INCAR tag %s: %w", key, err)
	}
	return value, true, nil
}

// Bool returns the logical value of key, or def when the tag is absent.
// Accepted spellings include .TRUE., T, True, .FALSE., F and false.
func (i Incar) Bool(key string, def bool) (bool, error) {
	raw, ok := i[strings.ToUpper(key)]
	if !ok {
		return def, nil
	}
	v := strings.TrimPrefix(strings.TrimSpace(raw), ".")
	if v == "" {
		return def, fmt.Errorf("INCAR tag %s has no value", key)
	}
	switch v[0] {
	case 't', 'T':
		return true, nil
	case 'f', 'F':
		return false, nil
	default:
		return def, fmt.Errorf("INCAR tag %s: %q is not a logical", key, raw)
	}
}
