package commands

import (
	"fmt"
	"time"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/client"
	"github.com/cordialsys/aoc/cmd/aoc/setup"
	"github.com/cordialsys/aoc/history"
	"github.com/cordialsys/aoc/scaffold"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdFetch() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch <day>",
		Aliases: []string{"scaffold"},
		Short:   "Download the input and description for a day and create its directory with a solution stub.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			cli, err := setup.NewClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.CloseIdleConnections()

			input, err := cli.FetchInput(cmd.Context(), day)
			if err != nil {
				return err
			}
			description, err := cli.FetchDescription(cmd.Context(), day)
			if err != nil {
				return err
			}
			project, err := scaffold.Create(cfg.ChallengesDir, day, input, description)
			if err != nil {
				return err
			}
			fmt.Println(project.Dir)
			return nil
		},
	}
	return cmd
}

func CmdDescribe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <day>",
		Short: "Refresh and print the description of a day, which includes part two once part one is solved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			cli, err := setup.NewClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.CloseIdleConnections()

			description, err := cli.FetchDescription(cmd.Context(), day)
			if err != nil {
				return err
			}
			project := scaffold.New(cfg.ChallengesDir, day)
			if err := project.WriteDescription(description); err != nil {
				logrus.WithError(err).Warn("could not save description, has the day been fetched?")
			}
			fmt.Print(description)
			return nil
		},
	}
	return cmd
}

func CmdSubmit() *cobra.Command {
	answerFlag := ""
	force := false
	cmd := &cobra.Command{
		Use:   "submit <day> [part]",
		Short: "Solve a part and submit the answer. The part defaults to the next unsolved one.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := setup.UnwrapConfig(ctx)
			registry := setup.UnwrapRegistry(ctx)
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			project := scaffold.New(cfg.ChallengesDir, day)

			var part aoc.Part
			if len(args) > 1 {
				part, err = aoc.ParsePart(args[1])
			} else {
				part, err = project.NextPart()
			}
			if err != nil {
				return err
			}

			var answer aoc.Answer
			if answerFlag != "" {
				answer, err = aoc.NewAnswerFromStr(answerFlag)
				if err != nil {
					return fmt.Errorf("invalid --answer: %v", err)
				}
			} else {
				parse, ok := registry.Get(day)
				if !ok {
					return fmt.Errorf("%s has no solution, pass --answer to submit one directly", day)
				}
				input, err := project.ReadInput()
				if err != nil {
					return err
				}
				challenge, err := parse(input)
				if err != nil {
					return err
				}
				answer, err = aoc.Solve(challenge, part)
				if err != nil {
					return err
				}
			}

			h, err := history.Load(history.Path(project.Dir), day)
			if err != nil {
				return err
			}
			if entry, ok := h.Known(part, answer); ok && !force {
				fmt.Printf("%s part %s answer %s was already submitted: %s\n", day, part, answer, entry.Verdict)
				return nil
			}

			cli, err := setup.NewClient(ctx)
			if err != nil {
				return err
			}
			defer cli.CloseIdleConnections()

			submission, err := cli.Submit(ctx, day, part, answer)
			if err != nil {
				return err
			}
			fmt.Printf("%s part %s answer %s: %s\n", day, part, answer, submission.Verdict)
			if submission.Message != "" {
				fmt.Println(submission.Message)
			}

			switch submission.Verdict {
			case client.TooRecent:
				// nothing was judged, so nothing to remember
				return nil
			case client.Wrong:
				if err := project.SaveResponse(submission.Body); err != nil {
					logrus.WithError(err).Warn("could not save response")
				}
			case client.Correct:
				description, err := cli.FetchDescription(ctx, day)
				if err != nil {
					logrus.WithError(err).Warn("could not refresh description")
				} else if err := project.WriteDescription(description); err != nil {
					logrus.WithError(err).Warn("could not save description")
				}
			}
			h.Record(part, answer, string(submission.Verdict), submission.Message, time.Now())
			return h.Save()
		},
	}
	cmd.Flags().StringVar(&answerFlag, "answer", "", "Submit this answer instead of solving.")
	cmd.Flags().BoolVar(&force, "force", false, "Submit even if the same answer was already judged.")
	return cmd
}

func CmdHistory() *cobra.Command {
	format := ""
	cmd := &cobra.Command{
		Use:   "history <day>",
		Short: "Show every answer submitted for a day.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			h, err := history.Load(history.Path(cfg.DayDir(day)), day)
			if err != nil {
				return err
			}
			if format != "text" {
				return printAs(format, h.Submissions)
			}
			for _, entry := range h.Submissions {
				fmt.Printf("%s\tpart %s\t%s\t%s\n", entry.SubmittedAt.Format(time.RFC3339), entry.Part, entry.Answer, entry.Verdict)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Format may be text, json or yaml")
	return cmd
}
