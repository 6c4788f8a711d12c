package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/logger"
	"github.com/earlycareers/programme-survey/internal/survey"
	"github.com/earlycareers/programme-survey/internal/utils"
)

const (
	systemInstruction   = "You are a concise, factual early-careers adviser. Never contradict the recommendation you are given."
	defaultMaxLogLength = 200
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Advisor asks Gemini for a personalised note on a recommendation.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		logger:    logger.WithFields(log),
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, profile survey.Profile, result eligibility.Result) (string, error) {
	if result.PrimaryCategory == "" {
		return "", fmt.Errorf("recommendation is required")
	}

	profileJSON, err := json.MarshalIndent(profilePayload(profile), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile payload: %w", err)
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal recommendation payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(resultJSON))

	a.logger.Debug("gemini advice request",
		zap.String("primary_category", string(result.PrimaryCategory)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	advice, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	a.logger.Debug("gemini advice response",
		zap.Int("response_length", utf8.RuneCountInString(advice)),
		zap.String("response_preview", utils.TruncateForLog(advice, a.maxLogLen)),
	)

	return strings.TrimSpace(advice), nil
}

// profilePayload keeps only the answers that shaped the recommendation.
func profilePayload(p survey.Profile) map[string]any {
	payload := map[string]any{
		survey.KeyEducationStage: string(p.EducationStage),
		survey.KeyHasPlacement:   p.HasPlacement,
		survey.KeyHasExperience:  p.HasExperience,
		survey.KeyHasGradOffer:   p.HasGradOffer,
		survey.KeyGraduated:      p.Graduated(),
	}
	if p.YearOfStudy != nil {
		payload[survey.KeyYearOfStudy] = *p.YearOfStudy
	}
	if p.YearsUntilGraduation != nil {
		payload["years_until_graduation"] = *p.YearsUntilGraduation
	}
	if p.HasSpringWeeks != nil {
		payload[survey.KeyHasSpringWeeks] = *p.HasSpringWeeks
	}
	return payload
}

func buildPrompt(profileJSON, resultJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Student profile:\n{{PROFILE_JSON}}\n\nRecommendation:\n{{RECOMMENDATION_JSON}}\n"
	}
	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{RECOMMENDATION_JSON}}", resultJSON)
	return prompt
}
