package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vferreira/mos/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mos %s\n", buildinfo.Summary())
			return err
		},
	}
}
