package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honesttour/pkg/utils"
)

func newTestNewsletterService(baseURL string) *EmailOctopusService {
	svc := NewEmailOctopusService("key", "list-1")
	svc.BaseURL = baseURL
	return svc
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := newTestNewsletterService("http://unused")

	for _, email := range []string{"", "no-at-sign", "   "} {
		err := svc.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, utils.ErrInvalidEmail)
	}
}

func TestSubscribeRequiresCredentials(t *testing.T) {
	svc := NewEmailOctopusService("", "")

	err := svc.Subscribe(context.Background(), "anna@example.com")
	assert.ErrorIs(t, err, utils.ErrNewsletterConfig)
}

func TestSubscribeForwardsToProvider(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newTestNewsletterService(srv.URL)
	require.NoError(t, svc.Subscribe(context.Background(), "anna@example.com"))

	assert.Equal(t, "/api/1.6/lists/list-1/contacts", gotPath)
	assert.Equal(t, "key", gotBody["api_key"])
	assert.Equal(t, "anna@example.com", gotBody["email_address"])
	assert.Equal(t, "SUBSCRIBED", gotBody["status"])
}

func TestSubscribeMapsMemberExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"code":    "MEMBER_EXISTS_WITH_EMAIL_ADDRESS",
				"message": "A member with this email already exists",
			},
		})
	}))
	defer srv.Close()

	svc := newTestNewsletterService(srv.URL)
	err := svc.Subscribe(context.Background(), "anna@example.com")
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
}

func TestSubscribeSurfacesProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestNewsletterService(srv.URL)
	err := svc.Subscribe(context.Background(), "anna@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrAlreadySubscribed)
}
