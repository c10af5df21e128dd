package commands

import (
	"fmt"
	"os"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/cmd/aoc/setup"
	"github.com/cordialsys/aoc/history"
	"github.com/cordialsys/aoc/scaffold"
	"github.com/spf13/cobra"
)

func CmdList() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solution, and whether their input has been fetched.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			registry := setup.UnwrapRegistry(cmd.Context())
			for _, day := range registry.Days() {
				project := scaffold.New(cfg.ChallengesDir, day)
				status := "input"
				if _, err := os.Stat(project.InputPath()); err != nil {
					status = "no input"
				}
				fmt.Printf("%s\t%s\n", day, status)
			}
			return nil
		},
	}
	return cmd
}

// checked is a report along with whether it agrees with the accepted answers.
type checked struct {
	*aoc.Report `yaml:",inline"`
	Mismatches  []string `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

func verify(dayDir string, report *aoc.Report) (*checked, error) {
	h, err := history.Load(history.Path(dayDir), report.Day)
	if err != nil {
		return nil, err
	}
	result := &checked{Report: report}
	for _, part := range []aoc.Part{aoc.PartOne, aoc.PartTwo} {
		accepted, ok := h.Solved(part)
		if ok && !accepted.Equal(report.Answer(part)) {
			result.Mismatches = append(result.Mismatches,
				fmt.Sprintf("part %s: got %s, accepted answer is %s", part, report.Answer(part), accepted))
		}
	}
	return result, nil
}

func CmdCheck() *cobra.Command {
	format := ""
	cmd := &cobra.Command{
		Use:   "check [day...]",
		Short: "Solve days with a local input and compare against accepted answers. Checks every day by default.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			registry := setup.UnwrapRegistry(cmd.Context())
			days, err := setup.ParseDays(registry, args)
			if err != nil {
				return err
			}
			selected := aoc.NewRegistry()
			for _, day := range days {
				parse, ok := registry.Get(day)
				if !ok {
					return fmt.Errorf("%s has no solution", day)
				}
				selected.MustRegister(day, parse)
			}

			reports, err := aoc.CheckAll(selected, inputLoader(cfg))
			if err != nil {
				return err
			}
			results := []*checked{}
			failed := 0
			for _, report := range reports {
				result, err := verify(cfg.DayDir(report.Day), report)
				if err != nil {
					return err
				}
				if len(result.Mismatches) > 0 {
					failed++
				}
				results = append(results, result)
			}

			if format == "text" {
				for _, result := range results {
					fmt.Println(result.Report.String())
					for _, mismatch := range result.Mismatches {
						fmt.Println("  " + mismatch)
					}
				}
			} else if err := printAs(format, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d days disagree with accepted answers", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Format may be text, json or yaml")
	return cmd
}

func CmdRun() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <day> [part]",
		Short: "Solve a day using its local input and print the answer(s).",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())
			registry := setup.UnwrapRegistry(cmd.Context())
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			parse, ok := registry.Get(day)
			if !ok {
				return fmt.Errorf("%s has no solution", day)
			}
			input, err := scaffold.New(cfg.ChallengesDir, day).ReadInput()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				report, err := aoc.Check(day, parse, input)
				if err != nil {
					return err
				}
				fmt.Println(report.String())
				return nil
			}

			part, err := aoc.ParsePart(args[1])
			if err != nil {
				return err
			}
			challenge, err := parse(input)
			if err != nil {
				return err
			}
			answer, err := aoc.Solve(challenge, part)
			if err != nil {
				return err
			}
			fmt.Println(answer.String())
			return nil
		},
	}
	return cmd
}
