// Package commands provides CLI commands for geminichat.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions holds the flag values shared by every command
type rootOptions struct {
	model    string
	envFiles []string
	verbose  bool
	raw      bool
	file     string
	output   string
	version  bool
}

// NewRootCmd creates the geminichat command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "geminichat [prompt]",
		Short: "Chat with Google Gemini from the terminal",
		Long: `geminichat is a terminal chat client for Google Gemini.

It reads the API key from GEMINI_API_KEY (or a .env file) and keeps the
whole conversation as context for every message.

Examples:
  geminichat                            Start interactive chat
  geminichat "What is Go?"              Send a single message
  geminichat -f prompt.md               Read the message from a file
  cat prompt.md | geminichat            Read the message from stdin
  geminichat "Hello" -o reply.md        Save the reply to a file
  geminichat config show                Show the effective settings`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintf(deps.Stdout, "geminichat %s (built %s)\n", Version, BuildTime)
				return nil
			}

			prompt, ok, err := readPrompt(deps, opts, args)
			if err != nil {
				return err
			}
			if ok {
				return runQuery(cmd.Context(), deps, opts, prompt)
			}
			return runChat(cmd.Context(), deps, opts)
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "Model to use (e.g., gemini-1.5-pro-latest)")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "Load environment variables from these files (default .env)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log debug details to the log file")
	cmd.PersistentFlags().BoolVar(&opts.raw, "raw", false, "Print replies without markdown rendering")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the message from a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save the reply to a file")
	cmd.Flags().BoolVarP(&opts.version, "version", "v", false, "Show version and exit")

	cmd.AddCommand(newChatCmd(deps, opts))
	cmd.AddCommand(newConfigCmd(deps, opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	deps := NewDependencies()
	if err := NewRootCmd(deps).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(deps.Stderr, formatErrorMessage(err))
		os.Exit(1)
	}
}
