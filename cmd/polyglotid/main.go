// Command polyglotid identifies the language of each token in its
// input and prints the resulting segments, optionally color-coded by
// language.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tassa-yoniso-manasi-karoto/polyglotid/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polyglotid [text]",
		Short:         "Identify the language of each token in mixed-language text",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := cli.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return cli.Run(cmd.OutOrStdout(), text, cli.Options{
				Explain: viper.GetBool("explain"),
				NoColor: viper.GetBool("no-color"),
			})
		},
	}

	root.Flags().Bool("explain", false, "print the per-token signal trail alongside each segment")
	root.Flags().Bool("no-color", false, "disable color-coded segment output")

	viper.SetEnvPrefix("POLYGLOTID")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("explain", root.Flags().Lookup("explain"))
	_ = viper.BindPFlag("no-color", root.Flags().Lookup("no-color"))

	return root
}
