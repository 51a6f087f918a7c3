package terminal

import (
	"io"
	"os"

	"github.com/aq-tools/air-atlas/pkg/runtime/terminal/commands"
	"github.com/aq-tools/air-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "air-atlas",
		Short: "Purple Air sensor analysis tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.reporter))
	cmd.AddCommand(commands.NewSensorsCmd(output))

	return cmd
}
