package api

import (
	"fmt"
	"log"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/gestuab/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/gestuab/internal/api/modules/health"
	memorandum_module "github.com/ethanbaker/gestuab/internal/api/modules/memorandum"
)

// NewEngine builds the gin engine with every module registered and initialized
func NewEngine(cfg *utils.Config) (*gin.Engine, error) {
	if mode := cfg.Get("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.GetBool("CORS_ALLOW_CREDENTIALS"),
		MaxAge:           time.Duration(cfg.GetIntWithDefault("CORS_MAX_AGE_HOURS", 12)) * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	if err := memorandum_module.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize memorandum module: %w", err)
	}
	memorandum_module.RegisterRoutes(baseGroup)

	health_module.RegisterRoutes(baseGroup, memorandum_module.StoreKind)

	return engine, nil
}

// Start builds the engine and serves it on API_PORT
func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	engine, err := NewEngine(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to set up server: ", err)
	}
	defer memorandum_module.Close()

	// Then after performing initial setup, start the server
	log.Printf("[API-MAIN]: Listening on port %s", port)
	if err := engine.Run(":" + port); err != nil {
		log.Print("[API-MAIN]: Failed to start server: ", err)
	}
}
