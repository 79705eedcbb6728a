package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/models"
	"spendlyo/internal/services"
	"spendlyo/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(email, password, firstName, lastName string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
}

func (m *mockUserService) CreateUser(email, password, firstName, lastName string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, firstName, lastName)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/profile", injectUserID("user-1"), handler.GetProfile)
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 with token on success", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(email, _, firstName, lastName string) (*models.User, error) {
				return &models.User{
					Base:      models.Base{ID: "user-1"},
					Email:     email,
					FirstName: firstName,
					LastName:  lastName,
				}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"priya@example.com","password":"password123","first_name":"Priya"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" {
			t.Error("expected a token in the response")
		}
		user := result["user"].(map[string]interface{})
		if user["email"] != "priya@example.com" {
			t.Errorf("unexpected user payload: %v", user)
		}
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"not-an-email","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"priya@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"priya@example.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token on success", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: "user-1"}, Email: email}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"priya@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" {
			t.Error("expected a token in the response")
		}
	})

	t.Run("returns 401 for unknown email", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByEmailFn: func(string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"nobody@example.com","password":"password123"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 401 for wrong password", func(t *testing.T) {
		userSvc := &mockUserService{
			verifyPasswordFn: func(*models.User, string) bool { return false },
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"priya@example.com","password":"wrong-password"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	userSvc := &mockUserService{
		getUserByIDFn: func(id string) (*models.User, error) {
			return &models.User{Base: models.Base{ID: id}, Email: "priya@example.com"}, nil
		},
	}
	r := setupAuthRouter(NewAuthHandler(userSvc))

	rec := doRequest(r, "GET", "/profile", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["id"] != "user-1" {
		t.Errorf("expected injected user ID, got %v", user["id"])
	}
}
