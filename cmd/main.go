package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const DemoVersion = "0.0.1"

func newRootCmd() *cobra.Command {
	var ctx *DemoContext
	var cfg demoConfig

	// prepare loads options and the logger before any subcommand runs.
	prepare := func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = getDemoConfig(cmd)
		if err != nil {
			return err
		}
		log, err := setupLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx = NewDemoContext(cmd.OutOrStdout(), log)
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "dlist",
		Short:             "exercise the doubly linked list",
		Long:              "Runs a fixed push/pop sequence on a doubly linked list and prints every result.",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(ctx)
			return nil
		},
	}
	registerRootFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "exec [script...]",
		Short: "run a script of list operations",
		Long: "Runs list operations against a fresh list. Statements are separated by newlines or ';'.\n" +
			"Operations: pushfront, pushback, popfront, popback, front, back, len, empty, clear, print.\n" +
			"Reads the script from stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(args, "\n")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "cannot read script from stdin")
				}
				script = string(b)
			}

			cmds, err := ParseScript(script)
			if err != nil {
				return errors.Wrap(err, "cannot parse script")
			}
			runScript(ctx, cmds)
			return nil
		},
	})

	stressCmd := &cobra.Command{
		Use:   "stress",
		Short: "build a large list and tear it down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runStress(ctx, cfg.Stress.Size, cfg.Stress.Drain)
			return err
		},
	}
	registerStressFlags(stressCmd.Flags())
	rootCmd.AddCommand(stressCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "dumpconfig <file>",
		Short: "write the default config to a toml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDemoConfigToFile(defaultConfig(), args[0]); err != nil {
				return errors.Wrapf(err, "cannot write config to %#v", args[0])
			}
			ctx.log.Info().Str("file", args[0]).Msg("[dumpconfig] config written")
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "dlist version "+DemoVersion)
			return nil
		},
	})

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
