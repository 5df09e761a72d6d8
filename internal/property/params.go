package property

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

const (
	ParamType           = "type"
	ParamNormDeform     = "norm_deform"
	ParamShearDeform    = "shear_deform"
	ParamCalType        = "cal_type"
	ParamCalSetting     = "cal_setting"
	ParamReprodOpt      = "reprod-opt"
	ParamStartConfsPath = "start_confs_path"
	ParamInitFromSuffix = "init_from_suffix"
	ParamOutputSuffix   = "output_suffix"

	// DefaultNormDeform is the largest normal strain applied.
	DefaultNormDeform = 2e-3
	// DefaultShearDeform is the largest shear strain applied.
	DefaultShearDeform = 5e-3
	// DefaultCalType is the calculation the driver runs in each task.
	DefaultCalType = "relaxation"
)

// DefaultCalSetting relaxes atomic positions only.
func DefaultCalSetting() map[string]interface{} {
	return map[string]interface{}{
		"relax_pos":   true,
		"relax_shape": false,
		"relax_vol":   false,
	}
}

// Config is the typed view of the stage parameters.
type Config struct {
	Type           string
	NormDeform     float64
	ShearDeform    float64
	CalType        string
	CalSetting     map[string]interface{}
	Reprod         bool
	StartConfsPath string
	InitFromSuffix string
	OutputSuffix   string
}

// RelaxPos reports whether the driver relaxes atomic positions.
func (c *Config) RelaxPos() bool { return c.calFlag("relax_pos") }

// RelaxShape reports whether the driver relaxes the cell shape.
func (c *Config) RelaxShape() bool { return c.calFlag("relax_shape") }

// RelaxVol reports whether the driver relaxes the cell volume.
func (c *Config) RelaxVol() bool { return c.calFlag("relax_vol") }

func (c *Config) calFlag(key string) bool {
	v, _ := c.CalSetting[key].(bool)
	return v
}

// ResolveParams fills cal_type, cal_setting and reprod-opt into params in
// place and returns the resolved configuration. Only the types of present
// keys are checked; unknown keys are left alone.
func ResolveParams(params map[string]interface{}) (*Config, error) {
	if params == nil {
		return nil, ErrNilParameters
	}

	var err error
	cfg := &Config{}
	if cfg.NormDeform, err = floatOr(params, ParamNormDeform, DefaultNormDeform); err != nil {
		return nil, err
	}
	if cfg.ShearDeform, err = floatOr(params, ParamShearDeform, DefaultShearDeform); err != nil {
		return nil, err
	}

	if _, ok := params[ParamCalType]; !ok {
		params[ParamCalType] = DefaultCalType
	}
	if cfg.CalType, err = stringOr(params, ParamCalType, DefaultCalType); err != nil {
		return nil, err
	}

	if _, ok := params[ParamCalSetting]; !ok {
		params[ParamCalSetting] = DefaultCalSetting()
	}
	setting, ok := params[ParamCalSetting].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object (type: %T)", ErrInvalidParameter, ParamCalSetting, params[ParamCalSetting])
	}
	cfg.CalSetting = setting

	params[ParamReprodOpt] = false
	cfg.Reprod = false

	for key, dst := range map[string]*string{
		ParamType:           &cfg.Type,
		ParamStartConfsPath: &cfg.StartConfsPath,
		ParamInitFromSuffix: &cfg.InitFromSuffix,
		ParamOutputSuffix:   &cfg.OutputSuffix,
	} {
		if *dst, err = stringOr(params, key, ""); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadParams reads a JSON or YAML parameter file.
func LoadParams(path string) (map[string]interface{}, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	params := map[string]interface{}{}
	if err := yaml.Unmarshal(contents, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parameter file: %w", err)
	}
	return params, nil
}

func floatOr(params map[string]interface{}, key string, def float64) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil // JSON default
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s is not a number (type: %T)", ErrInvalidParameter, key, raw)
	}
}

func stringOr(params map[string]interface{}, key, def string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string (type: %T)", ErrInvalidParameter, key, raw)
	}
	return v, nil
}
