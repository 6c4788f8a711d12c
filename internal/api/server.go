// Package api exposes the classifier and the navigator over HTTP/JSON.
package api

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/logger"
	"github.com/earlycareers/programme-survey/internal/navigator"
	"github.com/earlycareers/programme-survey/internal/survey"
)

// Classifier recommends programme categories for an answer set.
type Classifier interface {
	Classify(a survey.Answers) eligibility.Result
}

// Navigator picks the next survey question.
type Navigator interface {
	Next(a survey.Answers) navigator.Descriptor
}

// Options configures the HTTP surface.
type Options struct {
	// AllowedOrigins lists CORS origins. Empty or "*" allows any origin.
	AllowedOrigins []string
}

// Server routes survey requests to the core components.
type Server struct {
	classifier Classifier
	navigator  Navigator
	validator  *validator
	logger     *zap.Logger
	engine     *gin.Engine
}

func New(opts Options, classifier Classifier, nav Navigator, log *zap.Logger) (*Server, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if nav == nil {
		return nil, fmt.Errorf("navigator is required")
	}

	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	s := &Server{
		classifier: classifier,
		navigator:  nav,
		validator:  v,
		logger:     logger.WithFields(log, zap.String("component", "api")),
	}

	engine := gin.New()
	engine.Use(s.requestLogger(), s.recovery(), cors(opts.AllowedOrigins))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := engine.Group("/api/survey")
	{
		group.POST("", s.handleSubmit)
		group.POST("/submit", s.handleSubmit)
		group.POST("/step", s.handleStep)
	}

	s.engine = engine
	return s, nil
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := c.Writer.Status()
		latency := time.Since(start)

		httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route, method).Observe(latency.Seconds())

		s.logger.Info("http request",
			zap.String("method", method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

func cors(origins []string) gin.HandlerFunc {
	allowAny := len(origins) == 0 || slices.Contains(origins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAny:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(origins, origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
