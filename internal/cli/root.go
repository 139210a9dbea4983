// Package cli implements the vendor-supply-hub command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vendor-supply-hub",
		Short:         "Supplier marketplace backend for street-food vendors",
		Long:          "Serves the group-order discount meter, vendor alerts and supplier assistant endpoints.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMilestonesCommand())
	return cmd
}
