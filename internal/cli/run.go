package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/opencode-labs/opencode-wrapper/internal/agent"
	"github.com/opencode-labs/opencode-wrapper/internal/branding"
	"github.com/opencode-labs/opencode-wrapper/internal/config"
)

var runNonInteractive bool

var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Run the " + branding.AgentExecutable() + " agent with managed configuration",
	Long: `Execute the ` + branding.AgentExecutable() + ` agent. All arguments are passed through unmodified.

By default the agent inherits this terminal and streams its output live. With
--non-interactive, stdout and stderr are captured and echoed once the agent
exits. The agent's exit code becomes this process's exit code either way.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runNonInteractive, "non-interactive", false, "Capture agent output instead of streaming")
	// Everything after the first positional argument belongs to the agent.
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	result, err := config.Load("")
	if err != nil {
		return err
	}

	log.Debug("resolved configuration",
		"model", result.Config.Model,
		"max_tokens", result.Config.MaxTokens,
		"workspace_dir", result.Config.WorkspaceDir,
		"api_key_set", result.Config.APIKey != "")
	for _, src := range result.Sources {
		log.Debug("config source", "path", src.Path, "exists", src.Exists, "loaded", src.Loaded)
	}

	runner := agent.NewRunner()
	res, err := runner.Run(cmd.Context(), result.Config, args, !runNonInteractive)
	if err != nil {
		return err
	}

	if res.Captured {
		if res.Stdout != "" {
			fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
		}
		if res.Stderr != "" {
			fmt.Fprint(cmd.ErrOrStderr(), res.Stderr)
		}
	}

	// A non-zero agent exit is data, forwarded as our own exit status.
	if res.ExitCode != 0 {
		return &exitCodeError{code: res.ExitCode}
	}
	return nil
}
