package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	API   *APIconfig
	WS    *WebSocketconfig
	State *Stateconfig
	Log   *Loggerconfig
}

type APIconfig struct {
	BaseURL string
	Timeout time.Duration
}

type WebSocketconfig struct {
	URL            string
	UpdateInterval time.Duration
}

type Stateconfig struct {
	Dir string
}

type Loggerconfig struct {
	Level string
}

func New() (*Config, error) {
	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			return def
		}
		return val
	}

	getEnvSeconds := func(key string, def int) time.Duration {
		valStr := os.Getenv(key)
		if valStr == "" {
			return time.Duration(def) * time.Second
		}
		val, err := strconv.Atoi(valStr)
		if err != nil || val <= 0 {
			return time.Duration(def) * time.Second
		}
		return time.Duration(val) * time.Second
	}

	defaultStateDir := ".driver-trip"
	if home, err := os.UserHomeDir(); err == nil {
		defaultStateDir = filepath.Join(home, ".driver-trip")
	}

	cnf := &Config{
		API: &APIconfig{
			BaseURL: getEnv("API_BASE_URL", "http://api.test.acexustrans.com/api"),
			Timeout: getEnvSeconds("API_TIMEOUT_SECONDS", 10),
		},
		WS: &WebSocketconfig{
			URL:            getEnv("DISPATCH_WS_URL", ""),
			UpdateInterval: getEnvSeconds("LOCATION_UPDATE_SECONDS", 3),
		},
		State: &Stateconfig{
			Dir: getEnv("STATE_DIR", defaultStateDir),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	if cnf.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}

	return cnf, nil
}
