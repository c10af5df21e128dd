package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cordialsys/aoc/client/errors"
	"github.com/stretchr/testify/require"
)

func TestFromStatusCode(t *testing.T) {
	vectors := []struct {
		code   int
		status errors.Status
	}{
		{http.StatusBadRequest, errors.Unauthorized},
		{http.StatusUnauthorized, errors.Unauthorized},
		{http.StatusNotFound, errors.NotFound},
		{http.StatusTooManyRequests, errors.RateLimited},
		{http.StatusServiceUnavailable, errors.NetworkError},
		{http.StatusInternalServerError, errors.UnknownError},
	}
	for _, v := range vectors {
		err := errors.FromStatusCode(v.code, "day %d", 7)
		require.Equal(t, v.status, errors.StatusOf(err), v.code)
		require.Equal(t, fmt.Sprintf("%s: day 7", v.status), err.Error())
	}
}

func TestStatusOfWrapped(t *testing.T) {
	err := fmt.Errorf("fetching input: %w", errors.NotFoundf("day 25 is locked"))
	require.Equal(t, errors.NotFound, errors.StatusOf(err))
	require.Equal(t, errors.UnknownError, errors.StatusOf(fmt.Errorf("plain")))
}
