// Package listflags registers the flags shared by report commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag to list commands.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("all", false, "Include deleted and archived tasks")
		return
	}

	cmd.Flags().BoolVar(target, "all", false, "Include deleted and archived tasks")
}

// AddJSONFlag adds a shared --json flag to report commands.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}
