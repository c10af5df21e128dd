// Package scaffold lays out the directory for a day's puzzle.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/describe"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const InputFile = "input.txt"
const ReadmeFile = "README.md"
const ResponseFile = "resp.html"
const SolutionFile = "solution.go"

var solutionTemplate = template.Must(template.New("solution").Parse(`package {{ .Package }}

import (
	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
)

type Challenge struct {
	Lines []string
}

func Parse(input string) (aoc.Challenge, error) {
	lines, err := parsers.Finish(parsers.Lines(parsers.NotLineEnding[string]), input)
	if err != nil {
		return nil, err
	}
	return &Challenge{Lines: lines}, nil
}

func (c *Challenge) PartOne() aoc.Answer {
	return aoc.NewAnswer(int64(len(c.Lines)))
}

func (c *Challenge) PartTwo() aoc.Answer {
	return aoc.NewAnswer(0)
}
`))

// Project is the directory of one day.
type Project struct {
	Dir string
	Day aoc.Day
}

func New(root string, day aoc.Day) *Project {
	return &Project{Dir: filepath.Join(root, day.String()), Day: day}
}

func (p *Project) InputPath() string {
	return filepath.Join(p.Dir, InputFile)
}

func (p *Project) ReadmePath() string {
	return filepath.Join(p.Dir, ReadmeFile)
}

func (p *Project) ResponsePath() string {
	return filepath.Join(p.Dir, ResponseFile)
}

// Create makes the day directory with its input, description and a
// solution stub. An existing input or solution is never overwritten; the
// description is always refreshed since part two appears in it later.
func Create(root string, day aoc.Day, input string, description string) (*Project, error) {
	p := New(root, day)
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "could not create %s", p.Dir)
	}

	if _, err := os.Stat(p.InputPath()); err == nil {
		logrus.WithField("path", p.InputPath()).Info("input exists, not overwriting")
	} else if err := os.WriteFile(p.InputPath(), []byte(input), 0644); err != nil {
		return nil, errors.Wrapf(err, "could not write %s", p.InputPath())
	}

	if err := p.WriteDescription(description); err != nil {
		return nil, err
	}

	solution := filepath.Join(p.Dir, SolutionFile)
	if _, err := os.Stat(solution); err != nil {
		var buf bytes.Buffer
		if err := solutionTemplate.Execute(&buf, map[string]string{"Package": day.String()}); err != nil {
			return nil, errors.Wrap(err, "could not render solution")
		}
		if err := os.WriteFile(solution, buf.Bytes(), 0644); err != nil {
			return nil, errors.Wrapf(err, "could not write %s", solution)
		}
	}
	logrus.WithField("day", day).WithField("dir", p.Dir).Info("scaffolded")
	return p, nil
}

func (p *Project) WriteDescription(description string) error {
	return errors.Wrapf(os.WriteFile(p.ReadmePath(), []byte(description), 0644), "could not write %s", p.ReadmePath())
}

func (p *Project) ReadInput() (string, error) {
	bz, err := os.ReadFile(p.InputPath())
	if err != nil {
		return "", errors.Wrapf(err, "could not read input for %s", p.Day)
	}
	return string(bz), nil
}

// SaveResponse keeps the page returned for a rejected answer.
func (p *Project) SaveResponse(body string) error {
	return errors.Wrapf(os.WriteFile(p.ResponsePath(), []byte(body), 0644), "could not write %s", p.ResponsePath())
}

// NextPart is the part to solve next: part two once its description has
// been fetched.
func (p *Project) NextPart() (aoc.Part, error) {
	bz, err := os.ReadFile(p.ReadmePath())
	if err != nil {
		return 0, errors.Wrapf(err, "could not read description for %s", p.Day)
	}
	if PartTwoUnlocked(string(bz)) {
		return aoc.PartTwo, nil
	}
	return aoc.PartOne, nil
}

// PartTwoUnlocked reports whether a description includes part two.
func PartTwoUnlocked(readme string) bool {
	return strings.Contains(readme, describe.PartTwoMarker)
}
