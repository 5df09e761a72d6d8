package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/dptools/elastic/internal/config"
	"github.com/dptools/elastic/internal/store"
	"github.com/dptools/elastic/internal/store/model"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type HistoryOptions struct {
	GlobalOptions

	Output  string
	WorkDir string
	Limit   int
}

func DefaultHistoryOptions() *HistoryOptions {
	return &HistoryOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Limit:         20,
	}
}

func NewCmdHistory() *cobra.Command {
	o := DefaultHistoryOptions()
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived elastic reports.",
		Args:  cobra.NoArgs,
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

func (o *HistoryOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVarP(&o.WorkDir, "work-dir", "w", o.WorkDir, "Only list reports of this work directory.")
	fs.IntVar(&o.Limit, "limit", o.Limit, "Maximum number of reports; 0 lists all.")
}

func (o *HistoryOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	if o.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	return nil
}

func (o *HistoryOptions) Run(ctx context.Context, args []string) error {
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

	filter := store.NewReportQueryFilter().WithLimit(o.Limit)
	if o.WorkDir != "" {
		filter = filter.ByWorkDir(o.WorkDir)
	}
	reports, err := s.Report().List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}
	return printReports(os.Stdout, reports, o.Output)
}

func printReports(out io.Writer, reports model.ReportList, output string) error {
	var (
		marshalled []byte
		err        error
	)
	switch output {
	case jsonFormat:
		marshalled, err = json.Marshal(reports)
	case yamlFormat:
		marshalled, err = yaml.Marshal(reports)
	default:
		w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
		fmt.Fprintln(w, "ID\tCREATED\tWORK DIR\tBV\tGV\tEV\tuV")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
				r.ID, r.CreatedAt.Format(time.DateTime), r.WorkDir, r.BV, r.GV, r.EV, r.UV)
		}
		return w.Flush()
	}
	if err != nil {
		return fmt.Errorf("marshalling reports: %w", err)
	}
	_, err = fmt.Fprintln(out, string(marshalled))
	return err
}
