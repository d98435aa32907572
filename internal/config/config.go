package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/inklight/pdfmark/internal/pdfdoc"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Model endpoint (chat-completion shape)
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Pipeline
	ChunkSize           int     // sentences per model call
	LineTolerance       float64 // bbox line clustering quantum
	Margin              float64 // bbox expansion
	HighlightColor      pdfdoc.Color
	WorkerCount         int
	MaxQueueSize        int
	MaxConcurrentChunks int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("PDFMARK_API_KEY"),

		LLMBaseURL: envOr("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   envOr("LLM_MODEL", "gpt-4o-mini"),

		ChunkSize:           envInt("CHUNK_SIZE", 60),
		LineTolerance:       envFloat("LINE_TOLERANCE", 2.0),
		Margin:              envFloat("MARGIN", 1.0),
		HighlightColor:      ParseColor(envOr("HIGHLIGHT_COLOR", "1,0.85,0.3")),
		WorkerCount:         envInt("WORKER_COUNT", 2),
		MaxQueueSize:        envInt("MAX_QUEUE_SIZE", 50),
		MaxConcurrentChunks: envInt("MAX_CONCURRENT_CHUNKS", 4),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 60
	}
	if cfg.LineTolerance <= 0 {
		cfg.LineTolerance = 2.0
	}
	if cfg.Margin < 0 {
		cfg.Margin = 1.0
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxConcurrentChunks <= 0 {
		cfg.MaxConcurrentChunks = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PDFMARK_API_KEY is required")
	}
	if c.LLMAPIKey == "" && strings.Contains(c.LLMBaseURL, "api.openai.com") {
		return fmt.Errorf("LLM_API_KEY is required for %s", c.LLMBaseURL)
	}
	return nil
}

// ParseColor reads an "r,g,b" triple with components in [0,1]. Bad
// input falls back to the default highlight yellow.
func ParseColor(s string) pdfdoc.Color {
	fallback := pdfdoc.Color{R: 1, G: 0.85, B: 0.3}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fallback
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || v > 1 {
			return fallback
		}
		vals[i] = v
	}
	return pdfdoc.Color{R: vals[0], G: vals[1], B: vals[2]}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
