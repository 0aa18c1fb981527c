// main.go
package main

import (
	"log"

	"ecommerce-api/cmd"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/identity"
	"ecommerce-api/internal/wire"
	"ecommerce-api/pkg/cache"
	"ecommerce-api/pkg/database"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("server_id", config.App.ServerID),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize the profile store
	repos := repository.NewRepository(db, logger)

	// Optional Redis read cache in front of the profile store
	if config.Redis.Addr != "" {
		rdb, err := cache.InitRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		repos.Profile = repository.NewCachedProfileStore(repos.Profile, rdb, config.Redis.ProfileTTL, logger)
		logger.Info("Profile cache enabled", zap.String("addr", config.Redis.Addr))
	}

	// Select the identity provider driver
	var idp identity.Provider
	switch config.Identity.Driver {
	case "local":
		idp = identity.NewLocalProvider(db, identity.LocalConfig{
			TokenSecret: config.Identity.TokenSecret,
			TokenTTL:    config.Identity.TokenTTL,
		}, logger)
	default:
		idp = identity.NewFirebaseProvider(identity.FirebaseConfig{
			APIKey:      config.Identity.FirebaseAPIKey,
			BaseURL:     config.Identity.FirebaseBaseURL,
			TokenSecret: config.Identity.TokenSecret,
			TokenTTL:    config.Identity.TokenTTL,
		}, logger)
	}

	logger.Info("Identity provider ready", zap.String("driver", config.Identity.Driver))

	// Wire all dependencies
	app := wire.Wiring(repos, idp, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
