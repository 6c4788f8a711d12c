package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/survey"
)

const (
	// FieldEducationStage is the structured log field key for the education stage.
	FieldEducationStage = "education_stage"
	// FieldStep is the structured log field key for the current survey step.
	FieldStep = "step"
	// FieldYearOfStudy is the structured log field key for the derived year of study.
	FieldYearOfStudy = "year_of_study"
	// FieldYearsUntilGraduation is the structured log field key for the years left until graduation.
	FieldYearsUntilGraduation = "years_until_graduation"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// AnswerFields describes the parts of an answer set that matter for routing.
// Unknown values are left out to keep entries compact.
func AnswerFields(a survey.Answers) []zap.Field {
	fields := StringFields(StringField{Key: FieldEducationStage, Value: string(a.EducationStage)})

	if a.CurrentStep.Present {
		fields = append(fields, zap.Any(FieldStep, a.CurrentStep.Raw))
	}
	if a.IsPrevious {
		fields = append(fields, zap.Bool("is_previous", true))
	}

	return fields
}

// ProfileFields extends AnswerFields with the derived facts.
func ProfileFields(p survey.Profile) []zap.Field {
	fields := AnswerFields(p.Answers)

	if p.YearOfStudy != nil {
		fields = append(fields, zap.Int(FieldYearOfStudy, *p.YearOfStudy))
	}
	if p.YearsUntilGraduation != nil {
		fields = append(fields, zap.Int(FieldYearsUntilGraduation, *p.YearsUntilGraduation))
	}

	return fields
}
