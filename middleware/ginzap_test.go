package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appctx "Donghwa/pkg/context"
	"Donghwa/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinZap_LogsRedactedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	orig := log.L
	log.L = zap.New(core)
	t.Cleanup(func() { log.L = orig })

	engine := gin.New()
	engine.Use(GinZap())
	engine.GET("/boom", appctx.Wrap(func(c *gin.Context) error {
		return errors.New("upstream rejected key sk-verysecret123")
	}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("request log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	errField, ok := fields["errors"].(string)
	if !ok || errField == "" {
		t.Fatal("handler error should appear in the request log")
	}
	if strings.Contains(errField, "sk-verysecret123") {
		t.Errorf("logged error leaks the key: %q", errField)
	}
	if !strings.Contains(errField, "[API_KEY_HIDDEN]") {
		t.Errorf("logged error should carry the redaction marker: %q", errField)
	}
	if status, ok := fields["status"].(int64); !ok || status != http.StatusInternalServerError {
		t.Errorf("logged status = %v, want 500", fields["status"])
	}
}

func TestGinZap_NoErrorFieldOnSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	orig := log.L
	log.L = zap.New(core)
	t.Cleanup(func() { log.L = orig })

	engine := gin.New()
	engine.Use(GinZap())
	engine.GET("/ok", appctx.Wrap(func(c *gin.Context) error {
		c.Status(http.StatusNoContent)
		return nil
	}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("request log entries = %d, want 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["errors"]; ok {
		t.Error("successful request should not log an errors field")
	}
}
