package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	LLM     LLMConfig
	Extract ExtractConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

type ExtractConfig struct {
	OCRTimeout     time.Duration
	OCREngine      string // "vision" or "chat"
	PDFEnabled     bool
	PDFMaxPages    int
	MaxPromptChars int
	Concurrency    int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("server.body_limit", 25*1024*1024)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("llm.model", "openai/gpt-4o-mini")
	viper.SetDefault("llm.max_tokens", 4000)
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("extract.ocr_timeout", 45)
	viper.SetDefault("extract.ocr_engine", "vision")
	viper.SetDefault("extract.pdf.enabled", true)
	viper.SetDefault("extract.pdf.max_pages", 50)
	viper.SetDefault("extract.max_prompt_chars", 50000)
	viper.SetDefault("extract.concurrency", 4)

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			APIKey:      viper.GetString("llm.api_key"),
			BaseURL:     viper.GetString("llm.base_url"),
			Model:       viper.GetString("llm.model"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			Temperature: viper.GetFloat64("llm.temperature"),
		},
		Extract: ExtractConfig{
			OCRTimeout:     viper.GetDuration("extract.ocr_timeout") * time.Second,
			OCREngine:      viper.GetString("extract.ocr_engine"),
			PDFEnabled:     viper.GetBool("extract.pdf.enabled"),
			PDFMaxPages:    viper.GetInt("extract.pdf.max_pages"),
			MaxPromptChars: viper.GetInt("extract.max_prompt_chars"),
			Concurrency:    viper.GetInt("extract.concurrency"),
		},
	}

	// Secrets come from the environment, never from the config file.
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		config.LLM.APIKey = key
	}
	if model := os.Getenv("OPENROUTER_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if baseURL := os.Getenv("OPENROUTER_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}

	return config, nil
}
