package main

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/ai"
	"startup-namer/engine/internal/api"
	"startup-namer/engine/internal/domains"
)

type config struct {
	Port           string   `env:"PORT" envDefault:"2000"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	BankPath      string `env:"PATTERN_BANK_PATH"`
	StoplistPath  string `env:"STOPLIST_PATH"`
	FrequencyPath string `env:"WORD_FREQUENCY_PATH"`

	OpenAIKey         string  `env:"OPENAI_API_KEY"`
	OpenAIModel       string  `env:"OPENAI_MODEL"`
	OpenAIBaseURL     string  `env:"OPENAI_BASE_URL"`
	OpenAITemperature float64 `env:"OPENAI_TEMPERATURE"`
	OpenAIMaxTokens   int     `env:"OPENAI_MAX_TOKENS"`

	GeminiKey         string  `env:"GEMINI_API_KEY"`
	GeminiModel       string  `env:"GEMINI_MODEL"`
	GeminiTemperature float64 `env:"GEMINI_TEMPERATURE"`

	DisableAI bool `env:"DISABLE_AI"`

	RDAPBaseURL    string        `env:"RDAP_BASE_URL"`
	RDAPTimeout    time.Duration `env:"RDAP_TIMEOUT"`
	RDAPCacheTTL   time.Duration `env:"RDAP_CACHE_TTL"`
	DisableDomains bool          `env:"DISABLE_DOMAINS"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("parse environment: %v", err)
	}

	if level, err := logrus.ParseLevel(strings.TrimSpace(cfg.LogLevel)); err == nil {
		logrus.SetLevel(level)
	}

	server, err := api.NewServer(api.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		BankPath:       cfg.BankPath,
		StoplistPath:   cfg.StoplistPath,
		FrequencyPath:  cfg.FrequencyPath,
		AIConfig: ai.Config{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			BaseURL:     cfg.OpenAIBaseURL,
			Temperature: cfg.OpenAITemperature,
			MaxTokens:   cfg.OpenAIMaxTokens,
		},
		GeminiConfig: ai.GeminiConfig{
			APIKey:      cfg.GeminiKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.GeminiTemperature,
		},
		DisableAI: cfg.DisableAI,
		DomainsConfig: domains.Config{
			BaseURL:  cfg.RDAPBaseURL,
			Timeout:  cfg.RDAPTimeout,
			CacheTTL: cfg.RDAPCacheTTL,
		},
		DisableDomains: cfg.DisableDomains,
	})
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	logrus.Infof("starting naming engine on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
