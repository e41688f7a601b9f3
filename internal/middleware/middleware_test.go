package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homekeep/api/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter builds a gin engine with the given middleware and a GET /probe
// route that echoes the request ID from the context.
func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.GET("/probe", func(c *gin.Context) {
		c.String(200, GetRequestID(c))
	})
	return router
}

// get serves a GET request through the router, with optional header pairs.
func get(router *gin.Engine, path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		w := get(newRouter(RequestID()), "/probe")

		headerID := w.Header().Get(RequestIDHeader)
		if headerID == "" {
			t.Fatal("X-Request-ID header not set")
		}
		if w.Body.String() != headerID {
			t.Errorf("context ID %q differs from header ID %q", w.Body.String(), headerID)
		}
	})

	t.Run("keeps the ID from an upstream proxy", func(t *testing.T) {
		w := get(newRouter(RequestID()), "/probe", RequestIDHeader, "proxy-id-123")

		if w.Body.String() != "proxy-id-123" {
			t.Errorf("request ID = %q, want proxy-id-123", w.Body.String())
		}
	})

	t.Run("GetRequestID without middleware", func(t *testing.T) {
		if id := GetRequestID(&gin.Context{}); id != "" {
			t.Errorf("request ID = %q, want empty", id)
		}
	})
}

func TestCORS(t *testing.T) {
	origins := []string{"http://localhost:3000"}

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		w := get(newRouter(CORS(origins)), "/probe", "Origin", "http://localhost:3000")

		if w.Code != 200 {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("credentials header not set")
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		w := get(newRouter(CORS(origins)), "/probe", "Origin", "http://evil.example")

		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("CORS headers set for unknown origin")
		}
	})

	t.Run("preflight", func(t *testing.T) {
		router := newRouter(CORS(origins))

		req := httptest.NewRequest("OPTIONS", "/probe", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != 204 {
			t.Errorf("preflight status = %d, want 204", w.Code)
		}
	})
}

func TestLogger(t *testing.T) {
	t.Run("stores a request logger in the context", func(t *testing.T) {
		log := logger.New("test")
		router := gin.New()
		router.Use(RequestID(), Logger(log))
		router.GET("/probe", func(c *gin.Context) {
			if GetLogger(c) == nil {
				t.Error("no logger in context")
			}
			c.String(200, "OK")
		})

		if w := get(router, "/probe?sort=name"); w.Code != 200 {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("GetLogger without middleware", func(t *testing.T) {
		if log := GetLogger(&gin.Context{}); log != nil {
			t.Error("expected nil logger")
		}
	})
}

func TestRecovery(t *testing.T) {
	t.Run("panic becomes a 500 response", func(t *testing.T) {
		log := logger.New("test")
		router := gin.New()
		router.Use(RequestID(), Recovery(log))
		router.GET("/boom", func(c *gin.Context) {
			panic("unreachable state")
		})

		w := get(router, "/boom")

		if w.Code != 500 {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "INTERNAL_SERVER_ERROR") {
			t.Errorf("body missing error code: %s", body)
		}
		if !strings.Contains(body, "request_id") {
			t.Errorf("body missing request_id: %s", body)
		}
	})

	t.Run("normal requests pass through", func(t *testing.T) {
		w := get(newRouter(Recovery(logger.New("test"))), "/probe")

		if w.Code != 200 {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestMiddlewareStack(t *testing.T) {
	log := logger.New("test")
	router := gin.New()
	router.Use(RequestID(), Logger(log), Recovery(log), CORS([]string{"http://localhost:3000"}))
	router.GET("/probe", func(c *gin.Context) {
		if GetRequestID(c) == "" {
			t.Error("no request ID in context")
		}
		if GetLogger(c) == nil {
			t.Error("no logger in context")
		}
		c.String(200, "OK")
	})

	w := get(router, "/probe", "Origin", "http://localhost:3000")

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("X-Request-ID header not set")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("CORS headers not set")
	}
}

func TestAuth(t *testing.T) {
	t.Run("empty token disables the gate", func(t *testing.T) {
		w := get(newRouter(Auth("")), "/probe")

		if w.Code != 200 {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("accepts the configured bearer token", func(t *testing.T) {
		w := get(newRouter(Auth("secret-token")), "/probe",
			"Authorization", "Bearer secret-token")

		if w.Code != 200 {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		w := get(newRouter(Auth("secret-token")), "/probe",
			"Authorization", "Bearer wrong")

		if w.Code != 401 {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if !strings.Contains(w.Body.String(), "UNAUTHORIZED") {
			t.Errorf("body missing UNAUTHORIZED code: %s", w.Body.String())
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := get(newRouter(Auth("secret-token")), "/probe")

		if w.Code != 401 {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
