package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/earlycareers/programme-survey/internal/survey"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  stage  ", Value: "  university  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "stage" || fields[0].String != "university" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestProfileFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	answers := survey.ParseAnswers(map[string]any{
		"education_stage": "university",
		"current_step":    2,
		"is_previous":     true,
	})
	year, left := 2, 1
	answers.YearOfStudy = &year

	logger.Info("profile", ProfileFields(survey.Profile{Answers: answers, YearsUntilGraduation: &left})...)

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldEducationStage] != "university" {
		t.Fatalf("unexpected stage %v", ctx[FieldEducationStage])
	}
	if ctx[FieldYearOfStudy] != int64(2) {
		t.Fatalf("unexpected year of study %v", ctx[FieldYearOfStudy])
	}
	if ctx[FieldYearsUntilGraduation] != int64(1) {
		t.Fatalf("unexpected years until graduation %v", ctx[FieldYearsUntilGraduation])
	}
	if ctx["is_previous"] != true {
		t.Fatalf("expected is_previous flag")
	}
}

func TestAnswerFieldsSkipsUnknownValues(t *testing.T) {
	fields := AnswerFields(survey.ParseAnswers(map[string]any{}))
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(fields))
	}
}
