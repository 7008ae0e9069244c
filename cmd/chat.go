package cmd

import (
	"github.com/spf13/cobra"
)

// chatCmd is an explicit alias for the default action, for people who
// reach for `simtutor chat` after running `simtutor serve`.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
