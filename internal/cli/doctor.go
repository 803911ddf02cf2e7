package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-labs/opencode-wrapper/internal/agent"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt to repair issues")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check agent installation and configuration health",
	RunE: func(cmd *cobra.Command, args []string) error {
		return agent.Check(cmd.OutOrStdout(), doctorFix)
	},
}
