package cli

import (
	"github.com/spf13/cobra"
	"github.com/vferreira/mos/internal/shell"
)

// NewRootCmd creates the root command. Without a subcommand it runs the
// interactive loop on the command's input and output streams.
func NewRootCmd() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "mos",
		Short: "A minimal interactive command interpreter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), shell.WithPrompt(prompt))
			return s.Run()
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.Flags().StringVar(&prompt, "prompt", shell.DefaultPrompt, "Prompt written before each line")

	// Subcommands
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
