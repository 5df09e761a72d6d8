package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type GenerateOptions struct {
	StageOptions

	EquiDir string
	Refine  bool
}

func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		StageOptions: DefaultStageOptions(),
	}
}

func NewCmdGenerate() *cobra.Command {
	o := DefaultGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the deformed task directories of the elastic stage.",
		Example: "generate --param param.json --work-dir confs/Al/elastic_00 --equi-dir confs/Al/relaxation/relax_task\n" +
			"generate -p param.json -w confs/Al/elastic_01 -e confs/Al/relaxation/relax_task --refine",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *GenerateOptions) Bind(fs *pflag.FlagSet) {
	o.StageOptions.Bind(fs)

	fs.StringVarP(&o.EquiDir, "equi-dir", "e", o.EquiDir, "Directory of the finished equilibrium relaxation.")
	fs.BoolVar(&o.Refine, "refine", o.Refine, "Start from the relaxed tasks of an earlier run.")
}

func (o *GenerateOptions) Validate(args []string) error {
	if err := o.StageOptions.Validate(args); err != nil {
		return err
	}
	if o.EquiDir == "" {
		return fmt.Errorf("--equi-dir is required")
	}
	return nil
}

func (o *GenerateOptions) Run(ctx context.Context, args []string) error {
	defer o.flushMetrics()

	e, err := newElastic(o.ParamFile)
	if err != nil {
		return err
	}
	tasks, err := e.MakeConfs(o.WorkDir, o.EquiDir, o.Refine)
	if err != nil {
		return fmt.Errorf("generating tasks: %w", err)
	}
	zap.S().Named("cli").Infof("generated %d tasks in %s", len(tasks), o.WorkDir)
	for _, t := range tasks {
		fmt.Println(t.Dir)
	}
	return nil
}
