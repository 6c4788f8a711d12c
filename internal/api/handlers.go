package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/logger"
	"github.com/earlycareers/programme-survey/internal/navigator"
	"github.com/earlycareers/programme-survey/internal/survey"
)

const (
	errNoInput        = "No input data provided"
	errInvalidJSON    = "Invalid JSON payload"
	errInvalidPayload = "Invalid survey payload"
)

func (s *Server) handleSubmit(c *gin.Context) {
	answers, ok := s.bindAnswers(c)
	if !ok {
		return
	}

	result := s.classifier.Classify(answers)
	recommendationsTotal.WithLabelValues(string(result.PrimaryCategory)).Inc()

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleStep(c *gin.Context) {
	answers, ok := s.bindAnswers(c)
	if !ok {
		return
	}

	d := s.next(answers)
	stepsTotal.WithLabelValues(d.NextStep.String()).Inc()
	if d.Error != "" {
		stepErrorsTotal.WithLabelValues(d.NextStep.String()).Inc()
	}

	c.JSON(http.StatusOK, d)
}

// next keeps step failures in-band whatever Navigator implementation is plugged in.
func (s *Server) next(a survey.Answers) (d navigator.Descriptor) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("step handler panicked", append(logger.AnswerFields(a), zap.Any("panic", r))...)
			d = navigator.Recovered(a, r)
		}
	}()
	return s.navigator.Next(a)
}

// bindAnswers reads and validates the request body. On failure the response
// has already been written.
func (s *Server) bindAnswers(c *gin.Context) (survey.Answers, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.logger.Warn("reading request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoInput})
		return survey.Answers{}, false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoInput})
		return survey.Answers{}, false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJSON})
		return survey.Answers{}, false
	}

	if len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoInput})
		return survey.Answers{}, false
	}

	details, err := s.validator.Validate(payload)
	if err != nil {
		s.logger.Error("validating payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return survey.Answers{}, false
	}
	if len(details) > 0 {
		s.logger.Debug("rejected payload", zap.Strings("details", details))
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPayload, "details": details})
		return survey.Answers{}, false
	}

	return survey.ParseAnswers(payload), true
}
