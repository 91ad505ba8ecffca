package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dkovalyov/go-user-store/internal/server/api"
	"github.com/dkovalyov/go-user-store/internal/server/models"
	"github.com/dkovalyov/go-user-store/internal/server/service"
	svcmocks "github.com/dkovalyov/go-user-store/internal/server/service/mocks"
	serr "github.com/dkovalyov/go-user-store/internal/shared/errors"
	"github.com/dkovalyov/go-user-store/internal/shared/logger"
	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

const fixedID = "11111111-1111-1111-1111-111111111111"

func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := svcmocks.NewMockUsersRepo(ctrl)

	// --- настоящий сервис + handler + роутер, мокаем только хранилище ---
	usersSvc := service.NewUsersService(repo, 0, func() string { return fixedID })
	svc := &service.Services{Users: usersSvc}

	httpLogger := logger.NewHTTPLogger()

	h := api.NewHandler(svc, httpLogger)
	return NewRouter(h), repo
}

// Полный путь POST /users через роутер и middleware
func TestRouter_CreateUser_OK(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{}, serr.ErrNotFound)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	body := `{"name":"Alice","email":"alice@example.com","age":30}`

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp sharedModels.User
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != fixedID {
		t.Fatalf("expected id %q, got %q", fixedID, resp.ID)
	}
}

// {id}-параметр доезжает до хендлера через chi
func TestRouter_GetUser_OK(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		GetByID(gomock.Any(), fixedID).
		Return(models.User{ID: fixedID, Name: "Alice", Email: "alice@example.com", Age: 30}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/"+fixedID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.User
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// query-параметры пагинации доезжают до сервиса
func TestRouter_ListUsers_Paging(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		List(gomock.Any(), 5, 10).
		Return([]models.User{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users?skip=5&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

// PUT несуществующего id через роутер — 404
func TestRouter_UpdateUser_NotFound(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		Update(gomock.Any(), "missing", gomock.Any()).
		Return(models.User{}, serr.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/users/missing", strings.NewReader(`{"age":31}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

// DELETE через роутер — 204 без тела
func TestRouter_DeleteUser_NoContent(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		Delete(gomock.Any(), fixedID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+fixedID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}

// health-check зарегистрирован
func TestRouter_Ping(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		Ping(gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

// Неизвестный маршрут — 404 от chi
func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
