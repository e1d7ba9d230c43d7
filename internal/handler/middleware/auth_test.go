//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkease/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (s *stubValidator) ValidateToken(string) (uuid.UUID, error) {
	return s.userID, s.err
}

func newAuthRouter(validator middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewAuthMiddleware(validator).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		header     string
		validator  *stubValidator
		expectCode int
	}{
		{
			name:       "valid bearer token passes",
			header:     "Bearer good-token",
			validator:  &stubValidator{userID: userID},
			expectCode: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			validator:  &stubValidator{userID: userID},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme",
			header:     "Basic dXNlcjpwYXNz",
			validator:  &stubValidator{userID: userID},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			header:     "Bearer bad-token",
			validator:  &stubValidator{err: errors.New("expired")},
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(tc.validator)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "Unauthorized")
			}
			if tc.expectCode == http.StatusOK {
				require.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}
