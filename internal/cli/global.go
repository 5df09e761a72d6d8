package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/config"
	"github.com/dptools/elastic/pkg/log"
	"github.com/dptools/elastic/pkg/metrics"
)

type GlobalOptions struct {
	LogLevel string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error). Defaults to ELASTIC_LOG_LEVEL.")
}

// Complete installs the global logger.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	level := o.LogLevel
	if level == "" {
		level = cfg.Service.LogLevel
	}
	zap.ReplaceGlobals(log.InitLog(log.LevelOrDefault(level)))
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// flushMetrics dumps the collected metrics when ELASTIC_METRICS_FILE is set.
func (o *GlobalOptions) flushMetrics() {
	cfg, err := config.New()
	if err != nil || cfg.Service.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(cfg.Service.MetricsFile); err != nil {
		zap.S().Named("metrics").Warnf("failed to write %s: %v", cfg.Service.MetricsFile, err)
	}
}

// StageOptions are shared by the commands operating on a work directory.
type StageOptions struct {
	GlobalOptions

	ParamFile string
	WorkDir   string
}

func DefaultStageOptions() StageOptions {
	return StageOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func (o *StageOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.ParamFile, "param", "p", o.ParamFile, "Path of the elastic parameter file (JSON or YAML).")
	fs.StringVarP(&o.WorkDir, "work-dir", "w", o.WorkDir, "Work directory of the elastic stage.")
}

func (o *StageOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *StageOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.ParamFile == "" {
		return fmt.Errorf("--param is required")
	}
	if o.WorkDir == "" {
		return fmt.Errorf("--work-dir is required")
	}
	return nil
}
