// Package api exposes the naming engine over HTTP for the surrounding apps.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/ai"
	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/domains"
	"startup-namer/engine/internal/namer"
	"startup-namer/engine/internal/scoring"
	"startup-namer/engine/internal/util"
)

// Config defines server dependencies.
type Config struct {
	AllowedOrigins []string

	// Optional JSON data files; compiled-in defaults are used when empty.
	BankPath      string
	StoplistPath  string
	FrequencyPath string

	AIConfig       ai.Config
	GeminiConfig   ai.GeminiConfig
	DisableAI      bool
	DomainsConfig  domains.Config
	DisableDomains bool
}

// Server wires HTTP handlers to the naming engine.
type Server struct {
	engine         *namer.Engine
	checker        domains.Checker
	allowedOrigins []string
	aiEnabled      bool
}

// NewServer constructs the API server and its engine.
func NewServer(cfg Config) (*Server, error) {
	vocabulary := bank.Default()
	if path := strings.TrimSpace(cfg.BankPath); path != "" {
		loaded, err := bank.Load(path)
		if err != nil {
			return nil, fmt.Errorf("pattern bank: %w", err)
		}
		vocabulary = loaded
	}

	stoplist := scoring.DefaultStoplist()
	if path := strings.TrimSpace(cfg.StoplistPath); path != "" {
		loaded, err := scoring.LoadStoplist(path)
		if err != nil {
			return nil, fmt.Errorf("stoplist: %w", err)
		}
		stoplist = loaded
	}

	freq := scoring.DefaultFrequencyIndex()
	if path := strings.TrimSpace(cfg.FrequencyPath); path != "" {
		loaded, err := scoring.LoadFrequencyIndex(path)
		if err != nil {
			return nil, fmt.Errorf("frequency index: %w", err)
		}
		freq = loaded
	}

	provider := buildProvider(cfg)

	var checker domains.Checker
	if cfg.DisableDomains {
		logrus.Info("domain lookups disabled via configuration")
	} else {
		checker = domains.NewClient(cfg.DomainsConfig)
	}

	server := &Server{
		engine: namer.NewEngine(namer.Config{
			Bank:      vocabulary,
			Provider:  provider,
			Checker:   checker,
			Frequency: freq,
			Stoplist:  stoplist,
		}),
		checker:        checker,
		allowedOrigins: cfg.AllowedOrigins,
		aiEnabled:      provider != nil && provider.Enabled(),
	}
	return server, nil
}

// buildProvider chains the live providers in front of the deterministic
// local fallback, so adapter failure degrades instead of aborting.
func buildProvider(cfg Config) ai.Provider {
	if cfg.DisableAI {
		logrus.Info("AI provider disabled via configuration, using local fallback")
		return ai.NewLocal()
	}

	var chain ai.Provider = ai.NewLocal()
	if gemini, err := ai.NewGemini(cfg.GeminiConfig); err == nil {
		chain = ai.WithFallback(gemini, chain)
		logrus.WithField("model", cfg.GeminiConfig.Model).Info("Gemini provider enabled")
	} else if !errors.Is(err, ai.ErrDisabled) {
		logrus.WithError(err).Warn("gemini provider unavailable")
	}
	if client, err := ai.NewClient(cfg.AIConfig); err == nil {
		chain = ai.WithFallback(client, chain)
		logrus.WithField("model", cfg.AIConfig.Model).Info("OpenAI provider enabled")
	} else if !errors.Is(err, ai.ErrDisabled) {
		logrus.WithError(err).Warn("openai provider unavailable")
	}
	return chain
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.POST("/names", s.handleGenerate)
		api.POST("/suite", s.handleSuite)
		api.POST("/validate", s.handleValidate)
		api.GET("/patterns", s.handlePatterns)
		api.GET("/domains/check", s.handleDomainCheck)
	}

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ai_enabled":      s.aiEnabled,
		"domains_enabled": s.checker != nil,
		"styles":          bank.Styles(),
		"default_tlds":    domains.DefaultTLDs(),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	timer := util.StartTimer()

	candidates, err := s.engine.GenerateNames(c.Request.Context(), req.options())
	if err != nil {
		s.renderError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{
		Candidates: candidates,
		Count:      len(candidates),
		DurationMs: timer.ElapsedMs(),
	})
}

func (s *Server) handleSuite(c *gin.Context) {
	var req SuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	suite, err := s.engine.GenerateNamingSuite(c.Request.Context(), req.Concept, req.options())
	if err != nil {
		s.renderError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, suite)
}

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	report, err := s.engine.ValidateName(c.Request.Context(), req.Name)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handlePatterns(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.PatternTables())
}

func (s *Server) handleDomainCheck(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("name query parameter required"))
		return
	}
	if s.checker == nil {
		s.renderError(c, http.StatusServiceUnavailable, errors.New("domain lookups disabled"))
		return
	}
	var tlds []string
	if raw := strings.TrimSpace(c.Query("tlds")); raw != "" {
		for _, tld := range strings.Split(raw, ",") {
			if tld = strings.TrimSpace(tld); tld != "" {
				tlds = append(tlds, tld)
			}
		}
	}

	results := s.checker.CheckAvailability(c.Request.Context(), name, tlds)
	c.JSON(http.StatusOK, gin.H{"name": name, "results": results})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, namer.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.Is(err, namer.ErrNoCandidates):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	logrus.WithError(err).WithField("status", status).Debug("request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}
