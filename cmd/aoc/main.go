package main

import (
	"os"

	"github.com/cordialsys/aoc/cmd/aoc/commands"
	"github.com/cordialsys/aoc/cmd/aoc/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdAoc() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Fetch, solve and submit puzzles",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args)

			cfg, err := setup.LoadConfig(args)
			if err != nil {
				return err
			}
			registry := setup.LoadRegistry()

			logrus.WithFields(logrus.Fields{
				"year":       cfg.Year,
				"challenges": cfg.ChallengesDir,
				"days":       registry.Len(),
			}).Info("config")
			cmd.SetContext(setup.CreateContext(cfg, registry))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdList())
	cmd.AddCommand(commands.CmdCheck())
	cmd.AddCommand(commands.CmdRun())
	cmd.AddCommand(commands.CmdFetch())
	cmd.AddCommand(commands.CmdDescribe())
	cmd.AddCommand(commands.CmdSubmit())
	cmd.AddCommand(commands.CmdHistory())

	return cmd
}

func main() {
	rootCmd := CmdAoc()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
