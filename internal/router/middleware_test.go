package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/voltmart/internal/config"
	"github.com/voltmart/internal/constants"
)

func corsTestConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   []string{"https://shop.example.com"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSessionMiddlewareRejectsMissingHeader(t *testing.T) {
	r := newTestEngine()
	handled := false
	r.GET("/cart", SessionMiddleware(), func(c *gin.Context) {
		handled = true
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	if handled {
		t.Fatalf("handler should not run without session header")
	}
	if !strings.Contains(w.Body.String(), `"status_code":400`) {
		t.Fatalf("expected status_code 400 in body, got %s", w.Body.String())
	}
}

func TestSessionMiddlewareInjectsSessionID(t *testing.T) {
	r := newTestEngine()
	var got string
	r.GET("/cart", SessionMiddleware(), func(c *gin.Context) {
		got = getSessionID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(constants.SessionHeader, "sess-42")
	r.ServeHTTP(w, req)

	if got != "sess-42" {
		t.Fatalf("expected session id sess-42, got %q", got)
	}
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	r := newTestEngine()
	r.GET("/ping", RequestIDMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	r := newTestEngine()
	r.GET("/ping", RequestIDMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("expected request id req-123, got %q", got)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	r := newTestEngine()
	r.Use(CORSMiddleware(corsTestConfig()))
	r.POST("/checkout", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/checkout", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), constants.SessionHeader) {
		t.Fatalf("session header should be allowed, got %q", w.Header().Get("Access-Control-Allow-Headers"))
	}
}
