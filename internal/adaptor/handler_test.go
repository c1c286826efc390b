package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"review-hub/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrNotFound, http.StatusNotFound},
		{usecase.ErrForbidden, http.StatusForbidden},
		{usecase.ErrAlreadyExists, http.StatusBadRequest},
		{usecase.ErrValidation, http.StatusBadRequest},
		{usecase.ErrReservedUsername, http.StatusBadRequest},
		{usecase.ErrBadConfirmationCode, http.StatusBadRequest},
		{errors.New("db on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			// Wrapped errors must map the same as bare sentinels.
			handleServiceError(rec, zap.NewNop(), fmt.Errorf("context: %w", tt.err), "test")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), errors.New("pq: connection refused"), "test")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func requestWithPathParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	id, ok := pathID(requestWithPathParam("titleID", "42"), "titleID")
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-5", "1.5"} {
		_, ok := pathID(requestWithPathParam("titleID", bad), "titleID")
		assert.False(t, ok, "value %q", bad)
	}
}

func TestPaginationFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&per_page=25", nil)
	page := paginationFromQuery(req)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 25, page.PerPage)

	req = httptest.NewRequest(http.MethodGet, "/?page=junk&per_page=-1", nil)
	page = paginationFromQuery(req)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
}
