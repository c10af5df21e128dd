// Package history keeps a per-day record of submitted answers so that a
// known wrong answer is never submitted twice.
package history

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/cordialsys/aoc"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const FileName = "answers.toml"

const VerdictCorrect = "Correct"

type Entry struct {
	Part        aoc.Part   `toml:"part"`
	Answer      aoc.Answer `toml:"answer"`
	Verdict     string     `toml:"verdict"`
	Message     string     `toml:"message,omitempty"`
	SubmittedAt time.Time  `toml:"submitted_at"`
}

type History struct {
	Day         aoc.Day `toml:"day"`
	Submissions []Entry `toml:"submissions"`

	path string
}

// Path is where the history for a day directory is kept.
func Path(dayDir string) string {
	return filepath.Join(dayDir, FileName)
}

// Load reads the history at path. A missing file is an empty history.
func Load(path string, day aoc.Day) (*History, error) {
	h := &History{Day: day, Submissions: []Entry{}, path: path}
	bz, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	if err := toml.Unmarshal(bz, h); err != nil {
		return nil, errors.Wrapf(err, "invalid history in %s", path)
	}
	if h.Day != day {
		return nil, errors.Errorf("%s holds the history of %s, not %s", path, h.Day, day)
	}
	return h, nil
}

// Record appends a submission; call Save to persist it.
func (h *History) Record(part aoc.Part, answer aoc.Answer, verdict string, message string, at time.Time) {
	h.Submissions = append(h.Submissions, Entry{
		Part:        part,
		Answer:      answer,
		Verdict:     verdict,
		Message:     message,
		SubmittedAt: at.UTC().Truncate(time.Second),
	})
}

// Known returns the last verdict recorded for answer to part.
func (h *History) Known(part aoc.Part, answer aoc.Answer) (Entry, bool) {
	for i := len(h.Submissions) - 1; i >= 0; i-- {
		entry := h.Submissions[i]
		if entry.Part == part && entry.Answer.Equal(answer) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Solved returns the accepted answer for part, if there is one.
func (h *History) Solved(part aoc.Part) (aoc.Answer, bool) {
	for _, entry := range h.Submissions {
		if entry.Part == part && entry.Verdict == VerdictCorrect {
			return entry.Answer, true
		}
	}
	return aoc.Answer{}, false
}

func (h *History) Save() error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(h); err != nil {
		return errors.Wrap(err, "could not encode history")
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return errors.Wrapf(err, "could not create %s", filepath.Dir(h.path))
	}
	return errors.Wrapf(os.WriteFile(h.path, buf.Bytes(), 0644), "could not write %s", h.path)
}
