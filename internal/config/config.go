package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Nautobot NautobotConfig
	MCP      MCPConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port int
	Host string
}

// NautobotConfig holds Nautobot API configuration
type NautobotConfig struct {
	URL     string `json:"url" env:"NAUTOBOT_URL"`
	Token   string `json:"token" env:"NAUTOBOT_TOKEN"`
	Timeout int    `json:"timeout" env:"NAUTOBOT_TIMEOUT"`

	// TLS Configuration
	InsecureSkipVerify bool `json:"insecureSkipVerify" env:"NAUTOBOT_INSECURE_SKIP_VERIFY"`

	// Query engine limits
	MaxResponseBytes int `json:"maxResponseBytes" env:"NAUTOBOT_MAX_RESPONSE_BYTES"`

	// ID cache configuration
	IDCache IDCacheConfig `json:"idCache"`
}

// IDCacheConfig holds name-to-identifier cache configuration
type IDCacheConfig struct {
	TTLSeconds int `json:"ttlSeconds" env:"NAUTOBOT_ID_CACHE_TTL_SECONDS"`
}

// MCPConfig holds MCP-specific configuration
type MCPConfig struct {
	Version    string
	MaxRetries int
}

// DefaultToken is the documented local/test token. Real deployments must set
// NAUTOBOT_TOKEN.
const DefaultToken = "0123456789abcdef0123456789abcdef01234567"

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() *Config {
	// Try to load .env file (fail silently if not found)
	loadEnvFile()

	config := &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Nautobot: NautobotConfig{
			URL:                getEnv("NAUTOBOT_URL", "http://127.0.0.1:8080"),
			Token:              getEnv("NAUTOBOT_TOKEN", DefaultToken),
			Timeout:            getEnvAsInt("NAUTOBOT_TIMEOUT", 30),
			InsecureSkipVerify: getEnvAsBool("NAUTOBOT_INSECURE_SKIP_VERIFY", false),
			MaxResponseBytes:   getEnvAsInt("NAUTOBOT_MAX_RESPONSE_BYTES", 50000),
			IDCache: IDCacheConfig{
				TTLSeconds: getEnvAsInt("NAUTOBOT_ID_CACHE_TTL_SECONDS", 300),
			},
		},
		MCP: MCPConfig{
			Version:    getEnv("MCP_VERSION", "v1"),
			MaxRetries: getEnvAsInt("MCP_MAX_RETRIES", 3),
		},
	}

	// Try to load JSON config file
	if err := loadJSONConfig(config); err != nil {
		debugLogger := logger.New()
		debugLogger.Debug("Could not load JSON config file: %v", err)
	}

	return config
}

// loadEnvFile loads environment variables from .env file
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		debugLogger := logger.New()
		debugLogger.Debug("Could not load .env file: %v", err)
	}
}

// loadJSONConfig loads configuration from a JSON file
func loadJSONConfig(config *Config) error {
	// Try to find config file in common locations
	configPaths := []string{
		"config.json",
		"examples/config.json",
		"/etc/nautobot-mcp/config.json",
	}

	var configFile []byte
	var err error
	for _, path := range configPaths {
		configFile, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("could not find config file in any location: %w", err)
	}

	// Parse JSON config
	var jsonConfig struct {
		Nautobot NautobotConfig `json:"nautobot"`
	}
	if err := json.Unmarshal(configFile, &jsonConfig); err != nil {
		return fmt.Errorf("failed to parse JSON config: %w", err)
	}

	// Update config with JSON values if they are not empty
	if jsonConfig.Nautobot.URL != "" {
		config.Nautobot.URL = jsonConfig.Nautobot.URL
	}
	if jsonConfig.Nautobot.Token != "" {
		config.Nautobot.Token = jsonConfig.Nautobot.Token
	}
	if jsonConfig.Nautobot.Timeout > 0 {
		config.Nautobot.Timeout = jsonConfig.Nautobot.Timeout
	}
	if jsonConfig.Nautobot.MaxResponseBytes > 0 {
		config.Nautobot.MaxResponseBytes = jsonConfig.Nautobot.MaxResponseBytes
	}
	if jsonConfig.Nautobot.IDCache.TTLSeconds > 0 {
		config.Nautobot.IDCache.TTLSeconds = jsonConfig.Nautobot.IDCache.TTLSeconds
	}

	return nil
}

// Helper function to get environment variable with default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as int with default
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Helper function to get environment variable as bool with default
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		lowerValue := strings.ToLower(strings.TrimSpace(value))
		return lowerValue == "true" || lowerValue == "1" || lowerValue == "yes" || lowerValue == "on"
	}
	return defaultValue
}
