package cli

import (
	"github.com/spf13/cobra"

	"github.com/YasinAHA/calculator-mcp/pkg/mcp"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		Long: `Serve the calculator as MCP tools over stdio.

Tools: ping, status, add, subtract, multiply, divide. Each arithmetic tool
takes integer arguments "a" and "b". Logs are written to stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.Config()
			if err != nil {
				return err
			}

			s := mcp.NewCalculatorServer(cfg.Server.Name, rootOpts.Version, cfg.NewCalculator())
			if err := s.ServeStdio(); err != nil {
				return WrapExitError(ExitFailure, "server error", err)
			}
			return nil
		},
	}
}
