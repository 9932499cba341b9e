package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleService(userInfoURL string) *GoogleServiceImpl {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/api/Account/OAuth/Callback/Google", []string{"email"}).(*GoogleServiceImpl)
	svc.userInfoURL = userInfoURL
	return svc
}

func TestGenerateStateAndRedirectURL(t *testing.T) {
	svc := newTestGoogleService("")

	s1, err := svc.GenerateState()
	require.NoError(t, err)
	s2, err := svc.GenerateState()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)

	url := svc.RedirectURL(s1)
	assert.True(t, strings.HasPrefix(url, "https://accounts.google.com/"))
	assert.Contains(t, url, "state="+s1)
	assert.Contains(t, url, "client_id=client-id")
}

func TestVerifyUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"g-1","email":"user1@test.com","verified_email":true}`))
	}))
	defer server.Close()

	svc := newTestGoogleService(server.URL)
	info, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "access-123", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, "user1@test.com", info.Email)
	assert.Equal(t, "g-1", info.GoogleID)
}

func TestVerifyUser_Unverified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"g-2","email":"user2@test.com","verified_email":false}`))
	}))
	defer server.Close()

	svc := newTestGoogleService(server.URL)
	_, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "x"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}
