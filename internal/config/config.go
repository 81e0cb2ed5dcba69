package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"paper-summarizer/internal/domain"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"

	defaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultGroqModel     = "llama-3.1-8b-instant"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultVertexModel   = "gemini-2.0-flash-001"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	UploadPath     string
	MaxFileSize    int64
	LogLevel       string
	AccessToken    string
	AllowedOrigins []string

	LLMProvider    string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration
	GCPProjectID   string
	GCPLocation    string

	SummaryMode    domain.SummaryMode
	ChunkWords     int
	ChunkThreshold int
	CacheTTL       time.Duration
	CacheSize      int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderGroq))

	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:  getEnvOrDefault("UPLOAD_PATH", os.TempDir()),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		AccessToken: getEnvOrDefault("ACCESS_TOKEN", ""),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://localhost:3000",
		}),

		LLMProvider:    provider,
		LLMAPIKey:      apiKeyFor(provider),
		LLMBaseURL:     getEnvOrDefault("LLM_BASE_URL", defaultBaseURL(provider)),
		LLMModel:       getEnvOrDefault("LLM_MODEL", defaultModel(provider)),
		LLMTemperature: getEnvFloatOrDefault("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:   getEnvIntOrDefault("LLM_MAX_TOKENS", 4096),
		LLMTimeout:     time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		GCPProjectID:   getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:    getEnvOrDefault("GCP_LOCATION", "us-central1"),

		SummaryMode:    domain.ParseSummaryMode(getEnvOrDefault("SUMMARY_MODE", string(domain.SummaryModeAuto))),
		ChunkWords:     getEnvIntOrDefault("SUMMARY_CHUNK_WORDS", 1200),
		ChunkThreshold: getEnvIntOrDefault("SUMMARY_CHUNK_THRESHOLD", 6000),
		CacheTTL:       getEnvDurationOrDefault("EXTRACTION_CACHE_TTL", 30*time.Minute),
		CacheSize:      getEnvIntOrDefault("EXTRACTION_CACHE_SIZE", 32),
	}
}

// Validate checks that the selected model backend can be reached
func (c *AppConfig) Validate() error {
	switch c.LLMProvider {
	case ProviderGroq, ProviderOpenAI:
		if c.LLMAPIKey == "" {
			return fmt.Errorf("%w: set %s in api.env", domain.ErrMissingAPIKey, apiKeyEnv(c.LLMProvider))
		}
	case ProviderVertex:
		if c.GCPProjectID == "" {
			return fmt.Errorf("%w: set GCP_PROJECT_ID for the vertex provider", domain.ErrMissingAPIKey)
		}
	default:
		return &domain.ValidationError{Field: "LLM_PROVIDER", Message: "unsupported provider " + c.LLMProvider}
	}
	if c.ChunkWords <= 0 {
		return &domain.ValidationError{Field: "SUMMARY_CHUNK_WORDS", Message: "must be positive"}
	}
	if c.LLMMaxTokens <= 0 || c.LLMMaxTokens > math.MaxInt32 {
		return &domain.ValidationError{Field: "LLM_MAX_TOKENS", Message: fmt.Sprintf("must be between 1 and %d", math.MaxInt32)}
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string { return c.ServerPort }

// GetUploadPath returns the directory temporary uploads are written to
func (c *AppConfig) GetUploadPath() string { return c.UploadPath }

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 { return c.MaxFileSize }

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string { return c.LogLevel }

// GetAccessToken returns the optional bearer token guarding the API
func (c *AppConfig) GetAccessToken() string { return c.AccessToken }

func (c *AppConfig) GetAllowedOrigins() []string { return c.AllowedOrigins }

func (c *AppConfig) GetLLMProvider() string { return c.LLMProvider }

func (c *AppConfig) GetLLMAPIKey() string { return c.LLMAPIKey }

func (c *AppConfig) GetLLMBaseURL() string { return c.LLMBaseURL }

func (c *AppConfig) GetLLMModel() string { return c.LLMModel }

func (c *AppConfig) GetLLMTemperature() float64 { return c.LLMTemperature }

func (c *AppConfig) GetLLMMaxTokens() int { return c.LLMMaxTokens }

func (c *AppConfig) GetLLMTimeout() time.Duration { return c.LLMTimeout }

func (c *AppConfig) GetGCPProjectID() string { return c.GCPProjectID }

func (c *AppConfig) GetGCPLocation() string { return c.GCPLocation }

func (c *AppConfig) GetSummaryMode() domain.SummaryMode { return c.SummaryMode }

// GetChunkWords returns the maximum words per chunk in chunked mode
func (c *AppConfig) GetChunkWords() int { return c.ChunkWords }

// GetChunkThreshold returns the word count above which auto mode chunks
func (c *AppConfig) GetChunkThreshold() int { return c.ChunkThreshold }

func (c *AppConfig) GetCacheTTL() time.Duration { return c.CacheTTL }

func (c *AppConfig) GetCacheSize() int { return c.CacheSize }

func apiKeyEnv(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GROQ_API_KEY"
}

func apiKeyFor(provider string) string {
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		return key
	}
	return os.Getenv(apiKeyEnv(provider))
}

func defaultBaseURL(provider string) string {
	if provider == ProviderOpenAI {
		return defaultOpenAIBaseURL
	}
	return defaultGroqBaseURL
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return defaultOpenAIModel
	case ProviderVertex:
		return defaultVertexModel
	default:
		return defaultGroqModel
	}
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
