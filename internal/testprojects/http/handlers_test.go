package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/testboard/webapi-backend/config"
	"github.com/testboard/webapi-backend/internal/report"
	"github.com/testboard/webapi-backend/internal/storage/postgres"
	"github.com/testboard/webapi-backend/internal/testprojects/domain"
)

type stubStore struct {
	listFn   func(ctx context.Context) ([]domain.TestProject, error)
	getFn    func(ctx context.Context, id int) (*domain.TestProject, error)
	createFn func(ctx context.Context, name string) (*domain.TestProject, error)
	updateFn func(ctx context.Context, id int, name string) error
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubStore) List(ctx context.Context) ([]domain.TestProject, error) {
	return s.listFn(ctx)
}
func (s *stubStore) Get(ctx context.Context, id int) (*domain.TestProject, error) {
	return s.getFn(ctx, id)
}
func (s *stubStore) Create(ctx context.Context, name string) (*domain.TestProject, error) {
	return s.createFn(ctx, name)
}
func (s *stubStore) Update(ctx context.Context, id int, name string) error {
	return s.updateFn(ctx, id, name)
}
func (s *stubStore) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reporter := report.NewReporter(config.ReportingConfig{}, zap.NewNop())
	r.Use(reporter.Middleware())
	NewHandler(store).Register(r.Group("/api/test"))
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestList(t *testing.T) {
	router := newTestRouter(&stubStore{
		listFn: func(ctx context.Context) ([]domain.TestProject, error) {
			return []domain.TestProject{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}, nil
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, float64(1), items[0]["Id"])
	assert.Equal(t, "alpha", items[0]["Name"])
}

func TestListEmpty(t *testing.T) {
	router := newTestRouter(&stubStore{
		listFn: func(ctx context.Context) ([]domain.TestProject, error) {
			return []domain.TestProject{}, nil
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGet(t *testing.T) {
	router := newTestRouter(&stubStore{
		getFn: func(ctx context.Context, id int) (*domain.TestProject, error) {
			require.Equal(t, 7, id)
			return &domain.TestProject{ID: 7, Name: "gamma"}, nil
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Id":7,"Name":"gamma"}`, rr.Body.String())
}

func TestGetNotFound(t *testing.T) {
	router := newTestRouter(&stubStore{
		getFn: func(ctx context.Context, id int) (*domain.TestProject, error) {
			return nil, domain.ErrNotFound
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/99", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Project not found"}`, rr.Body.String())
}

func TestGetNonIntegerID(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rr := doJSON(t, router, "GET", "/api/test/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreate(t *testing.T) {
	router := newTestRouter(&stubStore{
		createFn: func(ctx context.Context, name string) (*domain.TestProject, error) {
			require.Equal(t, "new project", name)
			return &domain.TestProject{ID: 42, Name: name}, nil
		},
	})

	rr := doJSON(t, router, "POST", "/api/test/", `{"name":"new project"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":42,"name":"new project"}`, rr.Body.String())
}

func TestCreateMissingName(t *testing.T) {
	router := newTestRouter(&stubStore{})

	rr := doJSON(t, router, "POST", "/api/test/", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdate(t *testing.T) {
	router := newTestRouter(&stubStore{
		updateFn: func(ctx context.Context, id int, name string) error {
			require.Equal(t, 3, id)
			require.Equal(t, "renamed", name)
			return nil
		},
	})

	rr := doJSON(t, router, "PUT", "/api/test/3", `{"name":"renamed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Updated successfully"}`, rr.Body.String())
}

func TestUpdateNotFound(t *testing.T) {
	router := newTestRouter(&stubStore{
		updateFn: func(ctx context.Context, id int, name string) error {
			return domain.ErrNotFound
		},
	})

	rr := doJSON(t, router, "PUT", "/api/test/99", `{"name":"renamed"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Project not found"}`, rr.Body.String())
}

func TestDelete(t *testing.T) {
	router := newTestRouter(&stubStore{
		deleteFn: func(ctx context.Context, id int) error { return nil },
	})

	rr := doJSON(t, router, "DELETE", "/api/test/3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Deleted successfully"}`, rr.Body.String())
}

func TestDeleteAlreadyRemoved(t *testing.T) {
	deleted := false
	router := newTestRouter(&stubStore{
		deleteFn: func(ctx context.Context, id int) error {
			if deleted {
				return domain.ErrNotFound
			}
			deleted = true
			return nil
		},
	})

	rr := doJSON(t, router, "DELETE", "/api/test/3", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "DELETE", "/api/test/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStoreNotConfigured(t *testing.T) {
	router := newTestRouter(&stubStore{
		listFn: func(ctx context.Context) ([]domain.TestProject, error) {
			return nil, postgres.ErrNotConfigured
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStoreUnavailable(t *testing.T) {
	router := newTestRouter(&stubStore{
		listFn: func(ctx context.Context) ([]domain.TestProject, error) {
			return nil, postgres.ErrUnavailable
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUnexpectedErrorFunnelsToCatchAll(t *testing.T) {
	router := newTestRouter(&stubStore{
		getFn: func(ctx context.Context, id int) (*domain.TestProject, error) {
			return nil, errors.New("column vanished")
		},
	})

	rr := doJSON(t, router, "GET", "/api/test/1", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "An error occurred while processing your request", body["error"])
	assert.Equal(t, "column vanished", body["message"])
}
