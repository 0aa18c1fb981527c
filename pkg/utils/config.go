package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Identity IdentityConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	ServerID string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	ProfileTTL time.Duration
}

// IdentityConfig selects and configures the identity provider driver.
// Driver "firebase" talks to the Identity Toolkit API, "local" keeps
// accounts in Postgres for dev and test deployments.
type IdentityConfig struct {
	Driver          string
	FirebaseAPIKey  string
	FirebaseBaseURL string
	TokenSecret     string
	TokenTTL        time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "ecommerce-api")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PROFILE_CACHE_TTL_MINUTES", 5)
	viper.SetDefault("IDENTITY_DRIVER", "firebase")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	serverID := viper.GetString("SERVER_ID")
	if serverID == "" {
		serverID, _ = os.Hostname()
	}

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Port:     viper.GetString("PORT"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			ServerID: serverID,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			ProfileTTL: time.Duration(viper.GetInt("PROFILE_CACHE_TTL_MINUTES")) * time.Minute,
		},
		Identity: IdentityConfig{
			Driver:          viper.GetString("IDENTITY_DRIVER"),
			FirebaseAPIKey:  viper.GetString("FIREBASE_API_KEY"),
			FirebaseBaseURL: viper.GetString("FIREBASE_BASE_URL"),
			TokenSecret:     viper.GetString("TOKEN_SECRET"),
			TokenTTL:        time.Duration(viper.GetInt("TOKEN_EXPIRY_HOURS")) * time.Hour,
		},
	}

	return config, nil
}
