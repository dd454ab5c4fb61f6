package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	TrueLayer TrueLayerConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig holds the settings used to verify bearer tokens issued by the
// auth provider. Tokens are HS256 JWTs signed with a shared secret.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// TrueLayerConfig holds the OAuth client settings for the open-banking
// aggregator. AuthBaseURL serves the token endpoint, APIBaseURL the data API.
type TrueLayerConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthBaseURL  string
	APIBaseURL   string
	Providers    string
	Timeout      time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finboard_user"),
			Password:        getEnv("DB_PASSWORD", "finboard_password"),
			Name:            getEnv("DB_NAME", "finboard_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			Issuer:    getEnv("AUTH_JWT_ISSUER", ""),
		},
		TrueLayer: TrueLayerConfig{
			ClientID:     getEnv("TRUELAYER_CLIENT_ID", ""),
			ClientSecret: getEnv("TRUELAYER_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("TRUELAYER_REDIRECT_URI", "http://localhost:3000/callback"),
			AuthBaseURL:  getEnv("TRUELAYER_AUTH_BASE_URL", "https://auth.truelayer.com"),
			APIBaseURL:   getEnv("TRUELAYER_API_BASE_URL", "https://api.truelayer.com"),
			Providers:    getEnv("TRUELAYER_PROVIDERS", "uk-ob-all uk-oauth-all"),
			Timeout:      getDurationEnv("TRUELAYER_TIMEOUT", 30*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.IsProduction() {
		if config.Auth.JWTSecret == "" {
			log.Fatal("AUTH_JWT_SECRET must be set in production environments")
		}
		if config.TrueLayer.ClientID == "" || config.TrueLayer.ClientSecret == "" {
			log.Fatal("TRUELAYER_CLIENT_ID and TRUELAYER_CLIENT_SECRET must be set in production environments")
		}
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves the CORS allow-list from the environment.
// Origins are matched exactly against the request Origin header; there is no
// wildcard default because the API issues credentialed cookies.
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, no cross-origin requests will be allowed")
			return []string{}
		}
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
