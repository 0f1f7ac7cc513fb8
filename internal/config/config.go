// Package config loads server and CLI settings from a .env file, an
// optional YAML file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"resume-builder/internal/logger"
)

type Config struct {
	Port           string   `yaml:"port" validate:"required,numeric"`
	Env            string   `yaml:"env" validate:"omitempty,oneof=development staging production test"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadMB    int      `yaml:"max_upload_mb" validate:"min=1,max=100"`

	Log logger.Config `yaml:"log"`

	AI  AIConfig  `yaml:"ai"`
	PDF PDFConfig `yaml:"pdf"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model" validate:"required"`
	ServiceURL   string `yaml:"service_url" validate:"omitempty,url"`
}

type PDFConfig struct {
	Compress   bool   `yaml:"compress"`
	ChromePath string `yaml:"chrome_path"`
	// TrueType files for text outside cp1252; unset keeps the core fonts.
	Font FontConfig `yaml:"font"`
}

type FontConfig struct {
	Regular    string `yaml:"regular" validate:"omitempty,file"`
	Bold       string `yaml:"bold" validate:"omitempty,file"`
	Italic     string `yaml:"italic" validate:"omitempty,file"`
	BoldItalic string `yaml:"bold_italic" validate:"omitempty,file"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:           "8080",
		Env:            "development",
		AllowedOrigins: []string{"*"},
		MaxUploadMB:    5,
		Log:            logger.Config{Level: "info", Format: "json"},
		AI:             AIConfig{GeminiModel: "gemini-1.5-flash", ServiceURL: "http://ai-service:8000"},
		PDF:            PDFConfig{Compress: true},
	}
}

// MaxUploadBytes is the upload limit in bytes.
func (c Config) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE (if
// set), then the environment, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &c.Port)
	str("APP_ENV", &c.Env)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("GEMINI_API_KEY", &c.AI.GeminiAPIKey)
	str("GEMINI_MODEL", &c.AI.GeminiModel)
	str("AI_SERVICE_URL", &c.AI.ServiceURL)
	str("CHROME_PATH", &c.PDF.ChromePath)
	str("PDF_FONT", &c.PDF.Font.Regular)
	str("PDF_FONT_BOLD", &c.PDF.Font.Bold)
	str("PDF_FONT_ITALIC", &c.PDF.Font.Italic)
	str("PDF_FONT_BOLD_ITALIC", &c.PDF.Font.BoldItalic)

	if v, ok := lookup("ALLOWED_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		c.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}
	if v, ok := lookup("MAX_UPLOAD_MB"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_MB: %w", err)
		}
		c.MaxUploadMB = n
	}
	if v, ok := lookup("PDF_COMPRESS"); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("PDF_COMPRESS: %w", err)
		}
		c.PDF.Compress = b
	}
	return nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Origins joins AllowedOrigins the way fiber's CORS middleware expects.
func (c Config) Origins() string {
	if len(c.AllowedOrigins) == 0 {
		return "*"
	}
	return strings.Join(c.AllowedOrigins, ",")
}
