package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture_model/pkg/api/respond"
	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.OK(rec, map[string]int{"answer": 42})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)

	// Timestamp is RFC3339 UTC.
	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestFail(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Fail(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "bad input", env.Error)
	assert.Nil(t, env.Data)
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			"validation error",
			&engine.ValidationError{Field: "monthly_fee", Reason: "must be positive"},
			http.StatusBadRequest,
		},
		{
			"unknown key",
			&params.UnknownKeyError{Kind: "scenario", Key: "nope"},
			http.StatusBadRequest,
		},
		{
			"wrapped unknown key",
			fmt.Errorf("resolve: %w", &params.UnknownKeyError{Kind: "variant", Key: "x"}),
			http.StatusBadRequest,
		},
		{
			"anything else",
			errors.New("boom"),
			http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.FromError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestCORS(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.False(t, respond.CORS(rec, req))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	assert.True(t, respond.CORS(rec, req))
	assert.Equal(t, http.StatusOK, rec.Code)
}
