package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackcwru/signup/internal/domain"
	"github.com/hackcwru/signup/internal/httpx"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:        42,
		Email:     "a@b.com",
		FirstName: "Ann",
		Major:     "CS",
		School:    domain.School{ID: 1, Name: "State U"},
	}
}

func TestAnnounce(t *testing.T) {
	var got domain.WebhookMessage
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	w := New(Config{
		URL:      srv.URL,
		Channel:  "#signups",
		Username: "Signup bot",
		Icon:     ":tada:",
	}, srv.Client())

	err := w.Announce(context.Background(), testProfile())
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	assert.Equal(t, "#signups", got.Channel)
	assert.Equal(t, "Signup bot", got.Username)
	assert.Equal(t, ":tada:", got.IconEmoji)
	assert.Contains(t, got.Text, "Ann")
	assert.Contains(t, got.Text, "CS")
	assert.Contains(t, got.Text, "State U")
}

func TestAnnounceRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := New(Config{URL: srv.URL}, srv.Client())

	err := w.Announce(context.Background(), testProfile())

	var callErr *httpx.Error
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, httpx.StageNotify, callErr.Stage)
	assert.Equal(t, httpx.KindRejectedServer, callErr.Kind)
}

func TestAnnounceTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	w := New(Config{URL: srv.URL}, &http.Client{})

	err := w.Announce(context.Background(), testProfile())

	var callErr *httpx.Error
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, httpx.KindTransport, callErr.Kind)
}

func TestAnnounceDisabled(t *testing.T) {
	w := New(Config{}, &http.Client{})
	assert.NoError(t, w.Announce(context.Background(), testProfile()))
}
