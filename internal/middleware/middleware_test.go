package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"combolunch/internal/auth"

	"github.com/gin-gonic/gin"
)

func newIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret-key-for-testing-only", time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	return issuer
}

func sessionRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionAuth(issuer))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessionID": c.GetString("sessionID")})
	})
	return router
}

// TestSessionAuth_MissingAuthHeader tests the middleware with missing Authorization header
func TestSessionAuth_MissingAuthHeader(t *testing.T) {
	router := sessionRouter(newIssuer(t))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestSessionAuth_InvalidAuthFormat tests the middleware with invalid Bearer format
func TestSessionAuth_InvalidAuthFormat(t *testing.T) {
	router := sessionRouter(newIssuer(t))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	router := sessionRouter(newIssuer(t))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token_xyz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestSessionAuth_ValidToken(t *testing.T) {
	issuer := newIssuer(t)
	token, err := issuer.GenerateToken("test-session-id")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	router := sessionRouter(issuer)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if want := `{"sessionID":"test-session-id"}`; w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestRequireAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		configured string
		header     string
		want       int
	}{
		{"disabled", "", "Bearer anything", http.StatusForbidden},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"wrong token", "s3cret", "Bearer nope", http.StatusForbidden},
		{"right token", "s3cret", "Bearer s3cret", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequireAdminToken(tc.configured))
			router.POST("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest("POST", "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("expected request id to be echoed, got %q", got)
	}

	req = httptest.NewRequest("GET", "/ping", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}
}
