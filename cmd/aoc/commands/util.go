package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/config"
	"github.com/cordialsys/aoc/scaffold"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

func printAs(format string, data any) error {
	switch format {
	case "json":
		fmt.Println(asJson(data))
	case "yaml":
		bz, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Print(string(bz))
	default:
		return fmt.Errorf("invalid format %q, may be json or yaml", format)
	}
	return nil
}

// inputLoader reads dayNN/input.txt under the challenges directory. A missing
// input is reported as absent rather than as an error.
func inputLoader(cfg *config.Config) func(aoc.Day) (string, bool) {
	return func(day aoc.Day) (string, bool) {
		project := scaffold.New(cfg.ChallengesDir, day)
		if _, err := os.Stat(project.InputPath()); err != nil {
			return "", false
		}
		input, err := project.ReadInput()
		if err != nil {
			logrus.WithError(err).WithField("day", day).Warn("could not read input")
			return "", false
		}
		return input, true
	}
}

func parseDayArg(arg string) (aoc.Day, error) {
	day, err := aoc.ParseDay(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid <day>: %v", err)
	}
	return day, nil
}
