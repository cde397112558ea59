package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env        string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	ServerPort string

	JWTSecret      string
	JWTExpiryHours int

	CORSOrigins        []string
	LoaderConcurrency  int
	DefaultProjectName string
}

var defaults = map[string]interface{}{
	"app_env":              "development",
	"db_driver":            DriverPostgres,
	"db_host":              "localhost",
	"db_port":              "5431",
	"db_user":              "kanban_user",
	"db_password":          "kanban_pass",
	"db_name":              "kanban_db",
	"sqlite_path":          "taskboard.db",
	"server_port":          "8080",
	"jwt_secret":           "supersecretkey",
	"jwt_expiry_hours":     24,
	"cors_origins":         "http://localhost:3000",
	"loader_concurrency":   8,
	"default_project_name": "My first project",
}

// Load reads configuration from an optional .env file, an optional YAML file
// named by CONFIG_FILE, and the environment, in increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Env:                v.GetString("app_env"),
		DBDriver:           strings.ToLower(v.GetString("db_driver")),
		DBHost:             v.GetString("db_host"),
		DBPort:             v.GetString("db_port"),
		DBUser:             v.GetString("db_user"),
		DBPassword:         v.GetString("db_password"),
		DBName:             v.GetString("db_name"),
		SQLitePath:         v.GetString("sqlite_path"),
		ServerPort:         v.GetString("server_port"),
		JWTSecret:          v.GetString("jwt_secret"),
		JWTExpiryHours:     v.GetInt("jwt_expiry_hours"),
		CORSOrigins:        splitList(v.GetString("cors_origins")),
		LoaderConcurrency:  v.GetInt("loader_concurrency"),
		DefaultProjectName: v.GetString("default_project_name"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid APP_ENV value %q: must be development, staging, or production", c.Env)
	}

	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		return fmt.Errorf("invalid DB_DRIVER value %q: must be %s or %s", c.DBDriver, DriverPostgres, DriverSQLite)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if c.LoaderConcurrency < 1 {
		return fmt.Errorf("LOADER_CONCURRENCY must be positive, got %d", c.LoaderConcurrency)
	}

	if c.JWTExpiryHours < 1 {
		return fmt.Errorf("JWT_EXPIRY_HOURS must be positive, got %d", c.JWTExpiryHours)
	}

	return nil
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// PostgresURL builds the URL form used by the migration driver.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
