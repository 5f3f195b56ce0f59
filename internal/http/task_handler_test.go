package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/auth"
	"charity-connect.com/charity-connect/internal/constants"
	model "charity-connect.com/charity-connect/internal/models"
	repository "charity-connect.com/charity-connect/internal/repositories"
	"charity-connect.com/charity-connect/internal/services"
)

type testAPI struct {
	e      *echo.Echo
	db     *gorm.DB
	tokens *auth.TokenIssuer
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&model.User{}, &model.Benefactor{}, &model.Charity{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	roles := auth.NewDirectory(db)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	handler := NewHandler(
		services.NewAccountService(userRepo, tokens),
		services.NewProfileService(profileRepo, roles),
		services.NewTaskService(taskRepo),
		services.NewWorkflowService(taskRepo),
	)

	e := echo.New()
	Register(e, handler, tokens, roles, 1000)

	return &testAPI{e: e, db: db, tokens: tokens}
}

// signupBenefactor and signupCharity create accounts through the services
// and return a ready-to-use bearer token.
func (a *testAPI) signupBenefactor(t *testing.T, username string) string {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "x"}
	if err := repository.NewUserRepository(a.db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	_, err := repository.NewProfileRepository(a.db).
		CreateBenefactor(context.Background(), user.ID, constants.ExperienceBeginner, 4)
	if err != nil {
		t.Fatalf("failed to create benefactor: %v", err)
	}
	return a.tokenFor(t, user.ID)
}

func (a *testAPI) signupCharity(t *testing.T, username string) string {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "x"}
	if err := repository.NewUserRepository(a.db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	_, err := repository.NewProfileRepository(a.db).
		CreateCharity(context.Background(), user.ID, username+" org", "12345")
	if err != nil {
		t.Fatalf("failed to create charity: %v", err)
	}
	return a.tokenFor(t, user.ID)
}

func (a *testAPI) tokenFor(t *testing.T, userID string) string {
	t.Helper()

	token, err := a.tokens.Issue(userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var payload map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func TestTaskEndpoints_WireContract(t *testing.T) {
	api := setupAPI(t)
	charity := api.signupCharity(t, "charity")
	b1 := api.signupBenefactor(t, "benefactor1")
	b2 := api.signupBenefactor(t, "benefactor2")

	rec, body := api.do(t, http.MethodPost, "/tasks", charity, `{"title": "Paint the shelter"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	taskID, _ := body["id"].(string)
	if taskID == "" {
		t.Fatal("create task: response carries no id")
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/request", b1, "")
	if rec.Code != http.StatusOK || body["detail"] != "Request sent." {
		t.Errorf("request: expected 200 Request sent., got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/request", b2, "")
	if rec.Code != http.StatusNotFound || body["detail"] != "This task is not pending." {
		t.Errorf("second request: expected 404 not pending, got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/response", charity, `{"response": "X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid response value: expected 400, got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/response", charity, `{"response": "R"}`)
	if rec.Code != http.StatusOK || body["detail"] != "Response sent." {
		t.Errorf("reject: expected 200 Response sent., got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/request", b2, "")
	if rec.Code != http.StatusOK {
		t.Errorf("request after reject: expected 200, got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/response", charity, `{"response": "A"}`)
	if rec.Code != http.StatusOK || body["detail"] != "Response sent." {
		t.Errorf("accept: expected 200 Response sent., got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/done", charity, "")
	if rec.Code != http.StatusOK || body["detail"] != "Task has been done successfully." {
		t.Errorf("done: expected 200, got %d %v", rec.Code, body)
	}

	rec, body = api.do(t, http.MethodPost, "/tasks/"+taskID+"/done", charity, "")
	if rec.Code != http.StatusNotFound || body["detail"] != "Task is not assigned yet." {
		t.Errorf("second done: expected 404 not assigned, got %d %v", rec.Code, body)
	}
}

func TestTaskEndpoints_RoleEnforcement(t *testing.T) {
	api := setupAPI(t)
	charity := api.signupCharity(t, "owner")
	stranger := api.signupCharity(t, "stranger")
	benefactor := api.signupBenefactor(t, "benefactor")

	rec, body := api.do(t, http.MethodPost, "/tasks", benefactor, `{"title": "nope"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("benefactor creating a task: expected 403, got %d %v", rec.Code, body)
	}

	_, body = api.do(t, http.MethodPost, "/tasks", charity, `{"title": "Sort donations"}`)
	taskID, _ := body["id"].(string)

	rec, _ = api.do(t, http.MethodPost, "/tasks/"+taskID+"/request", charity, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("charity requesting assignment: expected 403, got %d", rec.Code)
	}

	api.do(t, http.MethodPost, "/tasks/"+taskID+"/request", benefactor, "")
	rec, _ = api.do(t, http.MethodPost, "/tasks/"+taskID+"/response", stranger, `{"response": "A"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign charity responding: expected 403, got %d", rec.Code)
	}
}

func TestEndpoints_RequireToken(t *testing.T) {
	api := setupAPI(t)

	rec, _ := api.do(t, http.MethodGet, "/tasks", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodGet, "/tasks", "bogus-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a bogus token, got %d", rec.Code)
	}
}

func TestProfileEndpoints(t *testing.T) {
	api := setupAPI(t)

	user := &model.User{Username: "newcomer", PasswordHash: "x"}
	if err := repository.NewUserRepository(api.db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token := api.tokenFor(t, user.ID)

	rec, _ := api.do(t, http.MethodPost, "/benefactors", token, `{"experience": 5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range experience: expected 400, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodPost, "/benefactors", token, `{"experience": 1, "free_time_per_week": 6}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("register benefactor: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec, _ = api.do(t, http.MethodPost, "/benefactors", token, `{"experience": 1, "free_time_per_week": 6}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate benefactor: expected 400, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodPost, "/charities", token, `{"name": "Helping Hands"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing reg_number: expected 400, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodPost, "/charities", token, `{"name": "Helping Hands", "reg_number": "987654"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("register charity: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAccountEndpoints(t *testing.T) {
	api := setupAPI(t)

	rec, _ := api.do(t, http.MethodPost, "/signup", "", `{"username": "alice", "password": "short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("weak password: expected 400, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodPost, "/signup", "", `{"username": "alice", "password": "long enough"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec, body := api.do(t, http.MethodPost, "/login", "", `{"username": "alice", "password": "long enough"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login: no token in response")
	}

	rec, _ = api.do(t, http.MethodGet, "/tasks", token, "")
	if rec.Code != http.StatusOK {
		t.Errorf("list with fresh token: expected 200, got %d", rec.Code)
	}

	rec, _ = api.do(t, http.MethodPost, "/login", "", `{"username": "alice", "password": "wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad credentials: expected 401, got %d", rec.Code)
	}
}
