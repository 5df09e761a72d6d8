package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dptools/elastic/internal/cli"
)

func main() {
	command := NewElasticCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewElasticCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elastic [flags] [options]",
		Short: "elastic prepares and evaluates elastic-constant calculations.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdGenerate())
	cmd.AddCommand(cli.NewCmdPostProcess())
	cmd.AddCommand(cli.NewCmdAggregate())
	cmd.AddCommand(cli.NewCmdExport())
	cmd.AddCommand(cli.NewCmdHistory())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
