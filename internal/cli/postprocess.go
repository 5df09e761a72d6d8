package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type PostProcessOptions struct {
	StageOptions
}

func DefaultPostProcessOptions() *PostProcessOptions {
	return &PostProcessOptions{
		StageOptions: DefaultStageOptions(),
	}
}

func NewCmdPostProcess() *cobra.Command {
	o := DefaultPostProcessOptions()
	cmd := &cobra.Command{
		Use:     "post-process",
		Short:   "Share one KPOINTS mesh between the tasks of a work directory.",
		Example: "post-process --param param.json --work-dir confs/Al/elastic_00",
		Args:    cobra.NoArgs,
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

func (o *PostProcessOptions) Run(ctx context.Context, args []string) error {
	defer o.flushMetrics()

	e, err := newElastic(o.ParamFile)
	if err != nil {
		return err
	}
	tasks, err := taskDirs(o.WorkDir)
	if err != nil {
		return err
	}
	if err := e.PostProcess(tasks); err != nil {
		return fmt.Errorf("post-processing tasks: %w", err)
	}
	return nil
}
