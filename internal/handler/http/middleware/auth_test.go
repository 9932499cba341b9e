package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))

	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(caller.UserID))
	})
	r.With(AdminOnly).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func call(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", "1h")
	router := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateAccessToken(user.User{ID: "u-1", Email: "user1@test.com", Role: user.RoleUser})
	require.NoError(t, err)

	w := call(router, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call(router, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, "/me", "not-a-jwt").Code)

	jwtService.RevokeToken(token, time.Now().Add(time.Hour).Unix())
	assert.Equal(t, http.StatusUnauthorized, call(router, "/me", token).Code)
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-test-secret", "1h")
	router := newTestRouter(jwtService)

	userToken, _, err := jwtService.GenerateAccessToken(user.User{ID: "u-1", Role: user.RoleUser})
	require.NoError(t, err)
	adminToken, _, err := jwtService.GenerateAccessToken(user.User{ID: "a-1", Role: user.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, call(router, "/admin", userToken).Code)
	assert.Equal(t, http.StatusNoContent, call(router, "/admin", adminToken).Code)
}
