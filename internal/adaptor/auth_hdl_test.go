package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"
	"review-hub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	SignUpFn     func(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	IssueTokenFn func(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

func (f *fakeAuthService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	return f.SignUpFn(ctx, req)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	return f.IssueTokenFn(ctx, req)
}

func TestSignUpHandlerSuccess(t *testing.T) {
	svc := &fakeAuthService{
		SignUpFn: func(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
			return &response.SignUpResponse{Username: req.Username, Email: req.Email}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	body := `{"username":"reader","email":"reader@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignUp(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status bool                    `json:"status"`
		Data   response.SignUpResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "reader", resp.Data.Username)
}

func TestSignUpHandlerValidation(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"username":`},
		{"missing email", `{"username":"reader"}`},
		{"bad email", `{"username":"reader","email":"not-an-email"}`},
		{"short username", `{"username":"ab","email":"a@b.io"}`},
		{"non-alphanumeric username", `{"username":"rea der","email":"a@b.io"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SignUp(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignUpHandlerReservedUsername(t *testing.T) {
	svc := &fakeAuthService{
		SignUpFn: func(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
			return nil, fmt.Errorf("signup as %q: %w", req.Username, usecase.ErrReservedUsername)
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	body := `{"username":"somebody","email":"me@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenHandler(t *testing.T) {
	svc := &fakeAuthService{
		IssueTokenFn: func(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
			if req.ConfirmationCode == "good" {
				return &response.TokenResponse{Token: "signed.jwt.here"}, nil
			}
			return nil, fmt.Errorf("user %s: %w", req.Username, usecase.ErrBadConfirmationCode)
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	t.Run("valid code", func(t *testing.T) {
		body := `{"username":"reader","confirmation_code":"good"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Token(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed.jwt.here")
	})

	t.Run("rejected code", func(t *testing.T) {
		body := `{"username":"reader","confirmation_code":"bad"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Token(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
