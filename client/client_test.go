package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/client"
	clienterrors "github.com/cordialsys/aoc/client/errors"
	"github.com/cordialsys/aoc/config"
	"github.com/stretchr/testify/require"
)

const descriptionPage = `<html><body><main>
<article class="day-desc"><h2>--- Day 9: Mirage Maintenance ---</h2><p>You ride the camel.</p></article>
</main></body></html>`

const correctPage = `<html><body><main><article><p>That's the right answer! You are <span class="day-success">one gold star</span> closer to restoring snow operations.</p></article></main></body></html>`

const tooRecentPage = `<html><body><main><article><p>You gave an answer too recently; you have to wait after submitting an answer before trying again. You have 41s left to wait.</p></article></main></body></html>`

const wrongLevelPage = `<html><body><main><article><p>You don't seem to be solving the right level. Did you already complete it?</p></article></main></body></html>`

const wrongPage = `<html><body><main><article><p>That's not the right answer; your answer is too high.</p></article></main></body></html>`

type recorded struct {
	method  string
	path    string
	session string
	agent   string
	form    url.Values
}

type recorder struct {
	mu       sync.Mutex
	requests []recorded
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded{}, r.requests...)
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *recorder) {
	requests := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, agent: r.UserAgent()}
		if cookie, err := r.Cookie("session"); err == nil {
			rec.session = cookie.Value
		}
		if r.Method == http.MethodPost {
			bz, _ := io.ReadAll(r.Body)
			rec.form, _ = url.ParseQuery(string(bz))
		}
		requests.mu.Lock()
		requests.requests = append(requests.requests, rec)
		requests.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, requests
}

func newClient(t *testing.T, baseURL string) *client.SiteClient {
	cfg := &config.Config{
		Year:    2023,
		BaseURL: baseURL + "/",
		Session: config.NewRawSecret("cafe"),
		Timeout: config.Duration(5 * time.Second),
	}
	cli, err := client.NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(cli.CloseIdleConnections)
	return cli
}

func TestFetchInput(t *testing.T) {
	require := require.New(t)
	server, requests := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0 3 6 9 12 15\n"))
	})
	cli := newClient(t, server.URL)

	input, err := cli.FetchInput(context.Background(), aoc.Day(9))
	require.NoError(err)
	require.Equal("0 3 6 9 12 15\n", input)

	require.Len(requests.all(), 1)
	req := requests.all()[0]
	require.Equal(http.MethodGet, req.method)
	require.Equal("/2023/day/9/input", req.path)
	require.Equal("cafe", req.session)
	require.Equal(client.UserAgent, req.agent)
}

func TestFetchErrors(t *testing.T) {
	vectors := []struct {
		code   int
		status clienterrors.Status
	}{
		{http.StatusBadRequest, clienterrors.Unauthorized},
		{http.StatusNotFound, clienterrors.NotFound},
		{http.StatusTooManyRequests, clienterrors.RateLimited},
		{http.StatusInternalServerError, clienterrors.UnknownError},
	}
	for _, v := range vectors {
		t.Run(http.StatusText(v.code), func(t *testing.T) {
			server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(v.code)
				_, _ = w.Write([]byte("Please don't repeatedly request this endpoint before it unlocks!"))
			})
			cli := newClient(t, server.URL)
			_, err := cli.FetchInput(context.Background(), aoc.Day(25))
			require.Error(t, err)
			require.Equal(t, v.status, clienterrors.StatusOf(err))
			require.Contains(t, err.Error(), "day25")
		})
	}
}

func TestFetchDescription(t *testing.T) {
	require := require.New(t)
	server, requests := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(descriptionPage))
	})
	cli := newClient(t, server.URL)

	md, err := cli.FetchDescription(context.Background(), aoc.Day(9))
	require.NoError(err)
	require.Equal("## --- Day 9: Mirage Maintenance ---\n\nYou ride the camel.\n", md)
	require.Equal("/2023/day/9", requests.all()[0].path)
}

func TestFetchDescriptionMissing(t *testing.T) {
	server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing here</body></html>"))
	})
	cli := newClient(t, server.URL)
	_, err := cli.FetchDescription(context.Background(), aoc.Day(9))
	require.Equal(t, clienterrors.NotFound, clienterrors.StatusOf(err))
}

func TestSubmit(t *testing.T) {
	vectors := []struct {
		name    string
		page    string
		verdict client.Verdict
	}{
		{"correct", correctPage, client.Correct},
		{"too recent", tooRecentPage, client.TooRecent},
		{"wrong level", wrongLevelPage, client.AlreadySolved},
		{"wrong", wrongPage, client.Wrong},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			require := require.New(t)
			server, requests := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(v.page))
			})
			cli := newClient(t, server.URL)

			submission, err := cli.Submit(context.Background(), aoc.Day(6), aoc.PartTwo, aoc.NewAnswer(71503))
			require.NoError(err)
			require.Equal(v.verdict, submission.Verdict)
			require.Equal(v.page, submission.Body)
			require.NotEmpty(submission.Message)

			req := requests.all()[0]
			require.Equal(http.MethodPost, req.method)
			require.Equal("/2023/day/6/answer", req.path)
			require.Equal("2", req.form.Get("level"))
			require.Equal("71503", req.form.Get("answer"))
		})
	}
}

func TestSubmitInvalidPart(t *testing.T) {
	server, requests := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
	cli := newClient(t, server.URL)
	_, err := cli.Submit(context.Background(), aoc.Day(6), aoc.Part(3), aoc.NewAnswer(1))
	require.Error(t, err)
	require.Empty(t, requests.all())
}

func TestLimiterIsWaitedOn(t *testing.T) {
	require := require.New(t)
	var count atomic.Int32
	server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
	})
	cfg := &config.Config{
		Year:        2023,
		BaseURL:     server.URL,
		Session:     config.NewRawSecret("cafe"),
		PeriodLimit: config.Duration(time.Hour),
		Burst:       1,
	}
	cli, err := client.NewClient(cfg)
	require.NoError(err)
	defer cli.CloseIdleConnections()

	_, err = cli.FetchInput(context.Background(), aoc.Day(1))
	require.NoError(err)

	// the next token is an hour away
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = cli.FetchInput(ctx, aoc.Day(1))
	require.ErrorContains(err, "limiter")
	require.Equal(int32(1), count.Load())
}

func TestNewClientRequiresSession(t *testing.T) {
	t.Setenv("AOC_TEST_SESSION", "")
	_, err := client.NewClient(&config.Config{Year: 2023, BaseURL: "http://localhost", Session: "env:AOC_TEST_SESSION"})
	require.Equal(t, clienterrors.Unauthorized, clienterrors.StatusOf(err))
}

func TestParseVerdict(t *testing.T) {
	require := require.New(t)
	require.Equal(client.Correct, client.ParseVerdict(correctPage))
	require.Equal(client.Wrong, client.ParseVerdict(""))
	// a success span outside the response article does not count
	require.Equal(client.Wrong, client.ParseVerdict(`<html><body><span class="day-success">x</span><article><p>Nope.</p></article></body></html>`))
}
