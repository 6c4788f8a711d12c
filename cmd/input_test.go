package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/navigator"
	"github.com/earlycareers/programme-survey/internal/survey"
)

func fixedCalendar() *survey.Calendar {
	return survey.NewCalendar(func() time.Time { return time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC) })
}

func TestDecodeAnswersRejectsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n", "{}", "null"} {
		if _, err := decodeAnswers([]byte(input)); !errors.Is(err, errNoInput) {
			t.Fatalf("%q: expected errNoInput, got %v", input, err)
		}
	}

	if _, err := decodeAnswers([]byte(`{"education_stage":`)); err == nil || errors.Is(err, errNoInput) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClassifyFromStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"education_stage":"graduate","has_experience":true}`)

	if err := classify(eligibility.New(fixedCalendar(), nil), "-", in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if result["primary_category"] != string(eligibility.OffCycleInternships) {
		t.Fatalf("unexpected result %v", result)
	}
}

func TestStepFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(`{"current_step":1,"education_stage":"graduate"}`), 0o600); err != nil {
		t.Fatalf("write answers: %v", err)
	}

	var out bytes.Buffer
	if err := step(navigator.New(fixedCalendar(), nil), path, strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), `"next_step": "internship_experience"`) {
		t.Fatalf("unexpected output %s", out.String())
	}
}

func TestArgOrStdin(t *testing.T) {
	if argOrStdin(nil) != "-" || argOrStdin([]string{"a.json"}) != "a.json" {
		t.Fatal("unexpected argument resolution")
	}
}
