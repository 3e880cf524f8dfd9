package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "todo-service/internal/domain"
	"todo-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver map[string]dom.User

func (s stubResolver) Resolve(_ context.Context, username string) (dom.User, error) {
	if username == "broken" {
		return dom.User{}, errors.New("boom")
	}
	u, ok := s[username]
	if !ok {
		return dom.User{}, service.ErrInvalidCredential
	}
	return u, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	users := stubResolver{"alice": {ID: "1", Name: "Alice", Username: "alice"}}
	r.GET("/me", RequireUser(users), func(c *gin.Context) {
		c.String(http.StatusOK, UsernameFromContext(c))
	})
	return r
}

func TestRequireUser(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"known user", "alice", http.StatusOK, "alice"},
		{"missing header", "", http.StatusBadRequest, `{"error":""}`},
		{"unknown user", "mallory", http.StatusBadRequest, `{"error":""}`},
		{"case sensitive", "Alice", http.StatusBadRequest, `{"error":""}`},
		{"resolver failure", "broken", http.StatusInternalServerError, `{"error":"boom"}`},
	}
	r := newEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(HeaderUsername, tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}
