package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingAPIKey = errors.New("API key not found, set GOOGLE_API_KEY or GEMINI_API_KEY")

type Settings struct {
	Port           string
	APIKey         string
	Model          string
	BaseURL        string
	AITimeout      time.Duration
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string

	// CredentialErr is set when no usable provider credential could be resolved.
	CredentialErr error
}

func Load() *Settings {
	s := &Settings{
		Port:           getEnv("PORT", "5000"),
		Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		BaseURL:        getEnv("GEMINI_BASE_URL", ""),
		AITimeout:      time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}
	s.APIKey, s.CredentialErr = resolveAPIKey()
	return s
}

func resolveAPIKey() (string, error) {
	for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v, nil
		}
	}

	encrypted := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY_ENCRYPTED"))
	if encrypted == "" {
		return "", ErrMissingAPIKey
	}
	if err := InitCrypto(); err != nil {
		return "", fmt.Errorf("encrypted API key present but crypto is not configured: %w", err)
	}
	key, err := Decrypt(encrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt API key: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return "", ErrMissingAPIKey
	}
	return strings.TrimSpace(key), nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
