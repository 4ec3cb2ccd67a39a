package cmd

import (
	"github.com/spf13/cobra"

	"github.com/filumlabs/painpoint-agent/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize painpoint configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the agent and generates a .painpoint.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
