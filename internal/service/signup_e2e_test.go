package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackcwru/signup/internal/domain"
	"github.com/hackcwru/signup/internal/notifier"
	"github.com/hackcwru/signup/internal/provider"
	"github.com/hackcwru/signup/internal/service"
)

type memoryProfileStore struct {
	inserted []*domain.Profile
}

func (m *memoryProfileStore) Insert(_ context.Context, p *domain.Profile, _ int) error {
	m.inserted = append(m.inserted, p)
	return nil
}

type memoryEmailStore struct{}

func (m *memoryEmailStore) Insert(context.Context, string) error { return nil }

// Full flow against fake provider and webhook servers: exchange the code,
// fetch the profile, persist it, announce it, land on the success redirect.
func TestCallbackFlow(t *testing.T) {
	providerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			require.Equal(t, "abc", r.URL.Query().Get("code"))
			_ = json.NewEncoder(w).Encode(domain.TokenResponse{AccessToken: "tok1"})
		case "/api/user":
			require.Equal(t, "tok1", r.URL.Query().Get("access_token"))
			_ = json.NewEncoder(w).Encode(map[string]domain.Profile{"data": {
				ID:        42,
				Email:     "a@b.com",
				FirstName: "Ann",
				Major:     "CS",
				School:    domain.School{ID: 1, Name: "State U"},
			}})
		default:
			t.Errorf("unexpected provider path %s", r.URL.Path)
		}
	}))
	defer providerSrv.Close()

	var announced domain.WebhookMessage
	webhookSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&announced))
	}))
	defer webhookSrv.Close()

	pipeline := provider.New(provider.Config{
		BaseURL:      providerSrv.URL,
		ClientID:     "app-id",
		ClientSecret: "app-secret",
		RedirectURI:  "http://localhost/callback",
	}, &http.Client{})

	webhook := notifier.New(notifier.Config{
		URL:      webhookSrv.URL,
		Channel:  "#signups",
		Username: "Signup bot",
		Icon:     ":tada:",
	}, &http.Client{})

	store := &memoryProfileStore{}
	svc := service.NewSignupService(pipeline, store, &memoryEmailStore{}, webhook, service.SignupConfig{
		SuccessURL: "https://example.com/done",
		FailureURL: "https://example.com/sorry",
		Year:       2016,
	})

	target, err := svc.HandleCallback(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/done", target)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, int64(42), store.inserted[0].ID)
	assert.Equal(t, "a@b.com", store.inserted[0].Email)

	assert.Contains(t, announced.Text, "Ann")
	assert.Contains(t, announced.Text, "CS")
	assert.Contains(t, announced.Text, "State U")
}
