package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPath          string
	RedisHost       string
	RedisPort       string
	SessionStore    string
	SessionSecret   string
	GinMode         string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	OpenAIAPIKey    string
}

var defaults = map[string]any{
	"DB_DRIVER":        "mysql",
	"DB_HOST":          "localhost",
	"DB_PORT":          "3306",
	"DB_USER":          "taskuser",
	"DB_PASSWORD":      "taskpassword",
	"DB_NAME":          "task_tracker",
	"DB_PATH":          "task_tracker.db",
	"REDIS_HOST":       "localhost",
	"REDIS_PORT":       "6379",
	"SESSION_STORE":    "redis",
	"SESSION_SECRET":   "default-secret-key-change-me",
	"GIN_MODE":         "debug",
	"HTTP_ADDR":        ":8080",
	"SHUTDOWN_TIMEOUT": "15s",
	"OPENAI_API_KEY":   "",
}

// Load reads configuration from the environment, falling back to defaults
func Load() *Config {
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DBDriver:        v.GetString("DB_DRIVER"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBPath:          v.GetString("DB_PATH"),
		RedisHost:       v.GetString("REDIS_HOST"),
		RedisPort:       v.GetString("REDIS_PORT"),
		SessionStore:    v.GetString("SESSION_STORE"),
		SessionSecret:   v.GetString("SESSION_SECRET"),
		GinMode:         v.GetString("GIN_MODE"),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
	}
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// RedisAddr returns host:port of the session redis
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
