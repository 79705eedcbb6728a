package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendlyo/internal/categorize"
	"spendlyo/internal/handlers"
	"spendlyo/internal/logger"
	"spendlyo/internal/middleware"
	"spendlyo/internal/models"
	"spendlyo/internal/services"
	"spendlyo/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite. No remote classifier is wired, so categorization runs keyword-or-Other.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	classifier := categorize.NewClassifier(nil, time.Second)

	// Services
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db, classifier)
	chatService := services.NewChatService(db, nil, "")

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categorizeHandler := handlers.NewCategorizeHandler(classifier)
	chatHandler := handlers.NewChatHandler(chatService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/quick-add", transactionHandler.QuickAdd)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", transactionHandler.GetSummary)
	dashboard.GET("/categories", transactionHandler.GetCategoryBreakdown)

	protected.POST("/categorize", categorizeHandler.Categorize)
	protected.POST("/categorize/amount", categorizeHandler.ExtractAmount)
	protected.POST("/chat", chatHandler.Chat)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// quickAdd creates a transaction from free text and returns its payload.
func (app *testApp) quickAdd(t *testing.T, token, text string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"text":%q}`, text)
	rec := app.request("POST", "/api/v1/transactions/quick-add", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("quick-add failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["transaction"].(map[string]interface{})
}
