package client

import (
	"strings"

	"github.com/cordialsys/aoc/describe"
	"golang.org/x/net/html"
)

type Verdict string

const Correct Verdict = "Correct"
const Wrong Verdict = "Wrong"

// An answer was submitted too recently; nothing was checked
const TooRecent Verdict = "TooRecent"

// The part was already solved, or is not unlocked yet
const AlreadySolved Verdict = "AlreadySolved"

const tooRecentText = "You gave an answer too recently"
const wrongLevelText = "You don't seem to be solving the right level"

// Submission is the site's response to an answer.
type Submission struct {
	Verdict Verdict
	// Text of the response article
	Message string
	// Raw response page
	Body string
}

func NewSubmission(body string) *Submission {
	return &Submission{
		Verdict: ParseVerdict(body),
		Message: describe.ArticleText(body),
		Body:    body,
	}
}

// ParseVerdict classifies the page returned after submitting an answer. The
// answer was accepted only if the response article contains a
// span.day-success.
func ParseVerdict(body string) Verdict {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return Wrong
	}
	for _, article := range describe.FindAll(doc, "article", "") {
		if len(describe.FindAll(article, "span", "day-success")) > 0 {
			return Correct
		}
	}
	text := describe.ArticleText(body)
	switch {
	case strings.Contains(text, tooRecentText):
		return TooRecent
	case strings.Contains(text, wrongLevelText):
		return AlreadySolved
	}
	return Wrong
}
