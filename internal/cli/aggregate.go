package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/config"
	"github.com/dptools/elastic/internal/property"
	"github.com/dptools/elastic/internal/store"
	"github.com/dptools/elastic/internal/store/model"
)

type AggregateOptions struct {
	StageOptions

	OutputFile string
	PrintFile  string
	Archive    bool
}

func DefaultAggregateOptions() *AggregateOptions {
	return &AggregateOptions{
		StageOptions: DefaultStageOptions(),
		OutputFile:   "result.json",
		PrintFile:    "result.out",
	}
}

func NewCmdAggregate() *cobra.Command {
	o := DefaultAggregateOptions()
	cmd := &cobra.Command{
		Use:     "aggregate",
		Short:   "Fit the elastic tensor from the finished tasks.",
		Example: "aggregate --param param.json --work-dir confs/Al/elastic_00 --archive",
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

func (o *AggregateOptions) Bind(fs *pflag.FlagSet) {
	o.StageOptions.Bind(fs)

	fs.StringVarP(&o.OutputFile, "output", "o", o.OutputFile, "Report JSON file, relative to the work directory.")
	fs.StringVar(&o.PrintFile, "print-file", o.PrintFile, "Human-readable report, relative to the work directory. Empty disables it.")
	fs.BoolVar(&o.Archive, "archive", o.Archive, "Store the report in the report database.")
}

func (o *AggregateOptions) Validate(args []string) error {
	if err := o.StageOptions.Validate(args); err != nil {
		return err
	}
	if o.OutputFile == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

func (o *AggregateOptions) Run(ctx context.Context, args []string) error {
	defer o.flushMetrics()

	e, err := newElastic(o.ParamFile)
	if err != nil {
		return err
	}
	tasks, err := taskDirs(o.WorkDir)
	if err != nil {
		return err
	}

	report, text, err := e.Compute(inDir(o.WorkDir, o.OutputFile), tasks, nil)
	if err != nil {
		return fmt.Errorf("computing elastic report: %w", err)
	}
	fmt.Print(text)

	if o.PrintFile != "" {
		if err := os.WriteFile(inDir(o.WorkDir, o.PrintFile), []byte(text), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", o.PrintFile, err)
		}
	}

	if o.Archive {
		return o.archive(ctx, report, e.TaskParam())
	}
	return nil
}

func (o *AggregateOptions) archive(ctx context.Context, report *property.Report, params map[string]interface{}) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	db, err := store.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("opening report database: %w", err)
	}
	s := store.NewStore(db)
	defer s.Close()

	if err := s.InitialMigration(ctx); err != nil {
		return fmt.Errorf("migrating report database: %w", err)
	}

	workDir, err := filepath.Abs(o.WorkDir)
	if err != nil {
		return err
	}
	return store.InTransaction(ctx, s, func(ctx context.Context) error {
		created, err := s.Report().Create(ctx, model.Report{
			WorkDir:       workDir,
			Params:        model.MakeJSONField(params),
			ElasticTensor: model.MakeJSONField(report.ElasticTensor),
			BV:            report.BV,
			GV:            report.GV,
			EV:            report.EV,
			UV:            report.UV,
		})
		if err != nil {
			return fmt.Errorf("archiving report: %w", err)
		}
		zap.S().Named("cli").Infof("archived report %s", created.ID)
		return nil
	})
}

func inDir(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
