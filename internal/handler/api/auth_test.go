//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkease/internal/domain/user"
	"parkease/internal/handler/api"
	"parkease/internal/usecase"
	usecasemock "parkease/internal/usecase/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)

	s.router.POST("/signup", s.handler.Signup)
	s.router.POST("/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(url string, body map[string]any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleUser() *user.User {
	return &user.User{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func signupBody() map[string]any {
	return map[string]any{
		"email":    "alice@example.com",
		"password": "s3cret",
		"name":     "Alice",
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	testCases := []struct {
		name         string
		mutate       func(m map[string]any)
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name: "created",
			setupMock: func() {
				s.mockAuth.EXPECT().
					SignUp(gomock.Any(), "alice@example.com", "s3cret", "Alice").
					Return(sampleUser(), nil)
			},
			expectCode:   http.StatusCreated,
			expectInBody: "alice@example.com",
		},
		{
			name: "duplicate email maps to 400",
			setupMock: func() {
				s.mockAuth.EXPECT().
					SignUp(gomock.Any(), "alice@example.com", "s3cret", "Alice").
					Return(nil, usecase.ErrEmailTaken)
			},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Email already registered",
		},
		{
			name:         "malformed email fails binding",
			mutate:       func(m map[string]any) { m["email"] = "not-an-email" },
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request format",
		},
		{
			name:         "short password fails binding",
			mutate:       func(m map[string]any) { m["password"] = "abc" },
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request format",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			body := signupBody()
			if tc.mutate != nil {
				tc.mutate(body)
			}
			if tc.setupMock != nil {
				tc.setupMock()
			}

			rec := s.postJSON("/signup", body)

			s.Equal(tc.expectCode, rec.Code)
			s.Contains(rec.Body.String(), tc.expectInBody)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{
		"email":    "alice@example.com",
		"password": "s3cret",
	}

	s.Run("returns the token and user", func() {
		s.mockAuth.EXPECT().
			Login(gomock.Any(), "alice@example.com", "s3cret").
			Return("test-jwt-token", sampleUser(), nil)

		rec := s.postJSON("/login", body)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"accessToken":"test-jwt-token"`)
		s.Contains(rec.Body.String(), "alice@example.com")
	})

	s.Run("bad credentials map to 401", func() {
		s.mockAuth.EXPECT().
			Login(gomock.Any(), "alice@example.com", "s3cret").
			Return("", nil, usecase.ErrInvalidCredentials)

		rec := s.postJSON("/login", body)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Invalid email or password")
	})
}
