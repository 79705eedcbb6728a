package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"spendlyo/internal/categorize"
	"spendlyo/internal/config"
	"spendlyo/internal/database"
	"spendlyo/internal/handlers"
	"spendlyo/internal/logger"
	"spendlyo/internal/middleware"
	"spendlyo/internal/services"
	"spendlyo/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendlyo/internal/docs" // Import swagger docs
)

// @title           Spendlyo API
// @version         1.0
// @description     Spendlyo is a personal expense tracker: record income and expense transactions (manually or via free-text quick add), view aggregated dashboards, and chat with an AI assistant about your finances.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Set up the remote categorization tier. A missing provider is not
	// fatal: classification degrades to keyword-or-Other.
	remote := buildRemoteClassifier(appConfig)
	classifier := categorize.NewClassifier(remote, appConfig.RemoteTimeout)

	// Chat shares the Groq completion client
	var chatClient *openai.Client
	if appConfig.GroqAPIKey != "" {
		cfg := openai.DefaultConfig(appConfig.GroqAPIKey)
		cfg.BaseURL = appConfig.GroqBaseURL
		chatClient = openai.NewClientWithConfig(cfg)
	} else {
		log.Warn("GROQ_API_KEY not set, chat assistant disabled")
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db, classifier)
	chatService := services.NewChatService(db, chatClient, appConfig.ChatModel)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categorizeHandler := handlers.NewCategorizeHandler(classifier)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/quick-add", transactionHandler.QuickAdd)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", transactionHandler.GetSummary)
	dashboard.GET("/categories", transactionHandler.GetCategoryBreakdown)

	// Categorization routes
	protected.POST("/categorize", categorizeHandler.Categorize)
	protected.POST("/categorize/amount", categorizeHandler.ExtractAmount)

	// Chat assistant
	protected.POST("/chat", chatHandler.Chat)

	log.Infof("Starting Spendlyo backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// buildRemoteClassifier picks the configured remote provider. Returns nil
// (never a typed nil) when no provider could be set up.
func buildRemoteClassifier(appConfig *config.Config) categorize.RemoteClassifier {
	log := logger.Get()

	switch appConfig.AIProvider {
	case "gemini":
		gemini, err := categorize.NewGeminiClassifier(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			log.Warnf("Gemini categorizer unavailable: %v (falling back to keyword-only)", err)
			return nil
		}
		return gemini
	case "groq":
		groq, err := categorize.NewGroqClassifier(appConfig.GroqAPIKey, appConfig.GroqBaseURL, appConfig.GroqModel)
		if err != nil {
			log.Warnf("Groq categorizer unavailable: %v (falling back to keyword-only)", err)
			return nil
		}
		return groq
	default:
		log.Warnf("Unknown AI_PROVIDER %q, remote categorization disabled", appConfig.AIProvider)
		return nil
	}
}
