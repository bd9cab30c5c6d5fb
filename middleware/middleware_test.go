package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubbook/config"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ownerRouter() *gin.Engine {
	r := gin.New()
	r.PUT("/resources/:resourceID", JWTAuthMiddleware(), RequireResourceOwner(), func(c *gin.Context) {
		c.String(http.StatusOK, SubjectID(c))
	})
	return r
}

func TestAuthAndOwnership(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken("coach-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name, path, auth string
		want             int
	}{
		{"missing header", "/resources/coach-1", "", http.StatusUnauthorized},
		{"garbage token", "/resources/coach-1", "Bearer nope", http.StatusUnauthorized},
		{"other resource", "/resources/coach-2", "Bearer " + token, http.StatusForbidden},
		{"owner", "/resources/coach-1", "Bearer " + token, http.StatusOK},
	}
	r := ownerRouter()
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPut, c.path, nil)
		if c.auth != "" {
			req.Header.Set("Authorization", c.auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != c.want {
			t.Errorf("%s: status %d, want %d", c.name, w.Code, c.want)
		}
	}
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := hit("1.1.1.1"); code != http.StatusOK {
			t.Fatalf("request %d: %d", i, code)
		}
	}
	if code := hit("1.1.1.1"); code != http.StatusTooManyRequests {
		t.Fatalf("third request: %d", code)
	}
	if code := hit("2.2.2.2"); code != http.StatusOK {
		t.Fatalf("other ip limited: %d", code)
	}
}
