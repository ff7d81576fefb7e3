// README: Auth middleware tests with a stub token verifier.
package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/http/middleware"
	"github.com/Blast-git/Journey-Sync/internal/infra"
)

type stubVerifier struct {
	token *infra.FirebaseToken
	err   error
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return s.token, s.err
}

func buildRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(verifier))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(middleware.UIDKey)})
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := buildRouter(&stubVerifier{token: &infra.FirebaseToken{UID: "user-1"}})
	w := get(r, "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != `{"uid":"user-1"}` {
		t.Errorf("body = %s", body)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	r := buildRouter(&stubVerifier{token: &infra.FirebaseToken{UID: "user-1"}})
	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := buildRouter(&stubVerifier{token: &infra.FirebaseToken{UID: "user-1"}})
	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token"} {
		if w := get(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d", header, w.Code)
		}
	}
}

func TestAuth_VerifierRejects(t *testing.T) {
	r := buildRouter(&stubVerifier{err: errors.New("token expired")})
	if w := get(r, "Bearer stale"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuth_NilVerifierDisablesAuth(t *testing.T) {
	r := buildRouter(nil)
	if w := get(r, ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
