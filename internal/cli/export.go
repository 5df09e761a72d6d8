package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dptools/elastic/internal/export"
	"github.com/dptools/elastic/internal/property"
)

type ExportOptions struct {
	GlobalOptions

	Output string
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        "elastic.xlsx",
	}
}

func NewCmdExport() *cobra.Command {
	o := DefaultExportOptions()
	cmd := &cobra.Command{
		Use:     "export REPORT",
		Short:   "Write a report JSON file as a spreadsheet.",
		Example: "export confs/Al/elastic_00/result.json --output Al.xlsx",
		Args:    cobra.ExactArgs(1),
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

func (o *ExportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, "Path of the xlsx file.")
}

func (o *ExportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Output == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

func (o *ExportOptions) Run(ctx context.Context, args []string) error {
	report, err := property.ReadReport(args[0])
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	return export.WriteWorkbook(report, o.Output)
}
