package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cordialsys/aoc"
	clienterrors "github.com/cordialsys/aoc/client/errors"
	"github.com/cordialsys/aoc/config"
	"github.com/cordialsys/aoc/config/constants"
	"github.com/cordialsys/aoc/describe"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const UserAgent = "github.com/cordialsys/aoc"

// Client fetches puzzles and submits answers for one event year.
type Client interface {
	// Fetch the raw puzzle input for a day
	FetchInput(ctx context.Context, day aoc.Day) (string, error)

	// Fetch the puzzle description for a day as markdown. Part two is only
	// included once part one has been solved.
	FetchDescription(ctx context.Context, day aoc.Day) (string, error)

	// Submit an answer for one part of a day
	Submit(ctx context.Context, day aoc.Day, part aoc.Part, answer aoc.Answer) (*Submission, error)
}

type SiteClient struct {
	baseUrl string
	year    int
	session string
	limiter *rate.Limiter
	http    *http.Client
}

var _ Client = &SiteClient{}

func NewClient(cfg *config.Config) (*SiteClient, error) {
	session, err := cfg.Session.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load session %s: %w", cfg.Session, err)
	}
	if session == "" {
		return nil, clienterrors.Unauthorizedf("no session configured, set %s or session in config.yaml", constants.SessionEnv)
	}
	timeout := cfg.Timeout.Duration()
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &SiteClient{
		baseUrl: strings.TrimSuffix(cfg.BaseURL, "/"),
		year:    cfg.Year,
		session: session,
		limiter: cfg.NewLimiter(),
		http: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// DayURL is the puzzle page for day.
func (client *SiteClient) DayURL(day aoc.Day) string {
	return fmt.Sprintf("%s/%d/day/%d", client.baseUrl, client.year, day.Int())
}

func (client *SiteClient) do(ctx context.Context, method string, target string, form url.Values) (string, error) {
	err := client.limiter.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("failed waiting on limiter: %w", err)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return "", err
	}
	if form != nil {
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Add("User-Agent", UserAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: client.session})

	logrus.WithField("url", target).WithField("method", method).Debug("request")
	resp, err := client.http.Do(req)
	if err != nil {
		return "", clienterrors.NetworkErrorf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	bz, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", clienterrors.NetworkErrorf("reading response from %s: %v", target, err)
	}
	logrus.WithField("url", target).WithField("status", resp.StatusCode).WithField("length", len(bz)).Debug("response")
	if resp.StatusCode != http.StatusOK {
		return "", clienterrors.FromStatusCode(resp.StatusCode, "%s %s failed (%d): %s", method, target, resp.StatusCode, strings.TrimSpace(string(bz)))
	}
	return string(bz), nil
}

func (client *SiteClient) FetchInput(ctx context.Context, day aoc.Day) (string, error) {
	input, err := client.do(ctx, http.MethodGet, client.DayURL(day)+"/input", nil)
	if err != nil {
		return "", fmt.Errorf("could not fetch input for %s: %w", day, err)
	}
	return input, nil
}

// FetchPage returns the puzzle page html for day.
func (client *SiteClient) FetchPage(ctx context.Context, day aoc.Day) (string, error) {
	page, err := client.do(ctx, http.MethodGet, client.DayURL(day), nil)
	if err != nil {
		return "", fmt.Errorf("could not fetch description for %s: %w", day, err)
	}
	return page, nil
}

func (client *SiteClient) FetchDescription(ctx context.Context, day aoc.Day) (string, error) {
	page, err := client.FetchPage(ctx, day)
	if err != nil {
		return "", err
	}
	md, err := describe.Markdown(page, client.DayURL(day))
	if err != nil {
		return "", fmt.Errorf("could not convert description for %s: %w", day, err)
	}
	if md == "" {
		return "", clienterrors.NotFoundf("no description found for %s", day)
	}
	return md, nil
}

func (client *SiteClient) Submit(ctx context.Context, day aoc.Day, part aoc.Part, answer aoc.Answer) (*Submission, error) {
	if !part.Valid() {
		return nil, fmt.Errorf("invalid part %d", part)
	}
	form := url.Values{}
	form.Set("level", part.String())
	form.Set("answer", answer.String())

	page, err := client.do(ctx, http.MethodPost, client.DayURL(day)+"/answer", form)
	if err != nil {
		return nil, fmt.Errorf("could not submit %s part %s: %w", day, part, err)
	}
	submission := NewSubmission(page)
	logrus.WithFields(logrus.Fields{
		"day":     day,
		"part":    part,
		"answer":  answer,
		"verdict": submission.Verdict,
	}).Info("submitted")
	return submission, nil
}

// CloseIdleConnections releases pooled connections once the client is no
// longer needed.
func (client *SiteClient) CloseIdleConnections() {
	client.http.CloseIdleConnections()
}
