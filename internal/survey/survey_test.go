package survey

import (
	"encoding/json"
	"testing"
	"time"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func intPtr(v int) *int { return &v }

func TestAcademicYearAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{name: "january belongs to previous academic year", at: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), want: 2025},
		{name: "august is the last month", at: time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC), want: 2025},
		{name: "september starts a new year", at: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), want: 2026},
		{name: "december", at: time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), want: 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AcademicYearAt(tt.at); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestYearOfStudyIsOneThroughoutFirstAcademicYear(t *testing.T) {
	t.Parallel()

	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.September}, {2025, time.October}, {2025, time.December},
		{2026, time.January}, {2026, time.May}, {2026, time.August},
	}

	for _, m := range months {
		cal := NewCalendar(fixedClock(m.year, m.month, 15))
		got := cal.YearOfStudy(intPtr(2025))
		if got == nil || *got != 1 {
			t.Fatalf("%s %d: expected year 1, got %v", m.month, m.year, got)
		}
	}
}

func TestYearOfStudyIncrementsEverySeptember(t *testing.T) {
	t.Parallel()

	start := intPtr(2023)
	before := NewCalendar(fixedClock(2025, time.August, 31)).YearOfStudy(start)
	after := NewCalendar(fixedClock(2025, time.September, 1)).YearOfStudy(start)

	if *before != 2 {
		t.Fatalf("expected year 2 before september, got %d", *before)
	}
	if *after != *before+1 {
		t.Fatalf("expected increment by one, got %d -> %d", *before, *after)
	}
}

func TestYearOfStudyUnknownWithoutStartYear(t *testing.T) {
	t.Parallel()

	if got := NewCalendar(nil).YearOfStudy(nil); got != nil {
		t.Fatalf("expected nil year of study, got %d", *got)
	}
}

func TestYearsUntilGraduation(t *testing.T) {
	t.Parallel()

	cal := NewCalendar(fixedClock(2026, time.March, 1))

	if got := cal.YearsUntilGraduation(nil); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}

	first := cal.YearsUntilGraduation(intPtr(2028))
	second := cal.YearsUntilGraduation(intPtr(2028))
	if *first != 2 || *second != 2 {
		t.Fatalf("expected 2 both times, got %d and %d", *first, *second)
	}
}

func TestDeriveReturnsEnrichedCopy(t *testing.T) {
	t.Parallel()

	cal := NewCalendar(fixedClock(2026, time.October, 17))
	original := ParseAnswers(map[string]any{
		"education_stage": "university",
		"start_year":      2025,
		"year_of_study":   3,
		"graduation_year": "2028",
		"society":         "finance",
	})

	profile := cal.Derive(original)

	if profile.Year() != 2 {
		t.Fatalf("expected derived year 2, got %d", profile.Year())
	}
	if *original.YearOfStudy != 3 {
		t.Fatalf("derive mutated the input year of study: %d", *original.YearOfStudy)
	}
	if profile.YearsUntilGraduation == nil || *profile.YearsUntilGraduation != 2 {
		t.Fatalf("expected 2 years until graduation, got %v", profile.YearsUntilGraduation)
	}
	if profile.Extra["society"] != "finance" {
		t.Fatalf("expected unknown keys to survive derivation")
	}
}

func TestDeriveKeepsCallerYearWithoutStartYear(t *testing.T) {
	t.Parallel()

	cal := NewCalendar(fixedClock(2026, time.October, 17))
	profile := cal.Derive(ParseAnswers(map[string]any{"year_of_study": 4}))

	if profile.Year() != 4 {
		t.Fatalf("expected caller year 4, got %d", profile.Year())
	}
}

func TestParseAnswersCoercion(t *testing.T) {
	t.Parallel()

	a := ParseAnswers(map[string]any{
		"education_stage":  "  University ",
		"start_year":       "2024",
		"graduation_year":  "soon",
		"has_placement":    "true",
		"has_experience":   1.0,
		"has_grad_offer":   "maybe",
		"has_spring_weeks": false,
		"graduated":        true,
		"current_step":     3.0,
		"previous_steps":   []any{0.0, 1.0, "2"},
	})

	if a.EducationStage != StageUniversity {
		t.Fatalf("unexpected stage %q", a.EducationStage)
	}
	if a.StartYear == nil || *a.StartYear != 2024 {
		t.Fatalf("expected start year 2024, got %v", a.StartYear)
	}
	if a.GraduationYear != nil {
		t.Fatalf("expected non-numeric graduation year to be absent")
	}
	if !a.HasPlacement || !a.HasExperience || a.HasGradOffer {
		t.Fatalf("unexpected boolean coercion: %+v", a)
	}
	if a.HasSpringWeeks == nil || *a.HasSpringWeeks {
		t.Fatalf("expected has_spring_weeks present and false")
	}
	if a.Graduated() {
		t.Fatalf("graduated must follow education stage, not caller input")
	}
	if !a.CurrentStep.Valid || a.CurrentStep.Step != StepSpringWeeks {
		t.Fatalf("unexpected current step %+v", a.CurrentStep)
	}
	if len(a.PreviousSteps) != 3 || a.PreviousSteps[2].Step != StepUniversityTimeline {
		t.Fatalf("unexpected history %+v", a.PreviousSteps)
	}
}

func TestParseAnswersYearsAreDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input any
		want  *int
	}{
		{input: "02026", want: intPtr(2026)},
		{input: " 2026 ", want: intPtr(2026)},
		{input: "0x7EA", want: nil},
		{input: "2_026", want: nil},
		{input: "0o3752", want: nil},
		{input: 2026.0, want: intPtr(2026)},
	}

	for _, tt := range tests {
		got := ParseAnswers(map[string]any{KeyGraduationYear: tt.input}).GraduationYear
		switch {
		case tt.want == nil && got != nil:
			t.Fatalf("%#v: expected absent year, got %d", tt.input, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Fatalf("%#v: expected %d, got %v", tt.input, *tt.want, got)
		}
	}
}

func TestParseAnswersKeysAreExact(t *testing.T) {
	t.Parallel()

	a := ParseAnswers(map[string]any{
		"Education_Stage": "graduate",
		"START_YEAR":      2024,
	})

	if a.EducationStage != "" || a.StartYear != nil {
		t.Fatalf("differently cased keys must not be interpreted: %+v", a)
	}
	if a.Extra["Education_Stage"] != "graduate" || a.Extra["START_YEAR"] != 2024 {
		t.Fatalf("expected unknown keys in Extra, got %v", a.Extra)
	}

	m := a.Map()
	if _, ok := m[KeyEducationStage]; ok {
		t.Fatalf("map must not re-emit a lowercase education_stage")
	}
	if m["Education_Stage"] != "graduate" {
		t.Fatalf("unknown key did not round-trip: %v", m)
	}
}

func TestParseAnswersAbsentSpringWeeks(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, "", "unknown"} {
		a := ParseAnswers(map[string]any{"has_spring_weeks": v})
		if a.HasSpringWeeks != nil {
			t.Fatalf("expected %v to be absent, got %v", v, *a.HasSpringWeeks)
		}
	}
}

func TestParseStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    any
		want  Step
		valid bool
	}{
		{in: 0, want: StepWelcome, valid: true},
		{in: 4.0, want: StepSpringConversion, valid: true},
		{in: "2", want: StepUniversityTimeline, valid: true},
		{in: "internship_experience", want: StepInternshipExperience, valid: true},
		{in: "grad_offer", want: StepGradOffer, valid: true},
		{in: "final", want: StepFinal, valid: true},
		{in: 5, valid: false},
		{in: 2.5, valid: false},
		{in: "sector", valid: false},
		{in: true, valid: false},
	}

	for _, tt := range tests {
		got, ok := ParseStep(tt.in)
		if ok != tt.valid {
			t.Fatalf("%v: expected valid=%v, got %v", tt.in, tt.valid, ok)
		}
		if ok && got != tt.want {
			t.Fatalf("%v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestStepJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]Step{StepWelcome, StepSpringConversion, StepInternshipExperience, StepFinal})
	if err != nil {
		t.Fatalf("marshal steps: %v", err)
	}
	if string(data) != `[0,4,"internship_experience","final"]` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		t.Fatalf("unmarshal steps: %v", err)
	}
	if steps[2] != StepInternshipExperience {
		t.Fatalf("unexpected decoded step %v", steps[2])
	}

	var bad Step
	if err := json.Unmarshal([]byte(`"sector"`), &bad); err == nil {
		t.Fatalf("expected error for unknown step")
	}
}

func TestStepPreviousClampsAtWelcome(t *testing.T) {
	t.Parallel()

	if StepWelcome.Previous() != StepWelcome {
		t.Fatalf("expected welcome to stay at welcome")
	}
	if StepSpringWeeks.Previous() != StepUniversityTimeline {
		t.Fatalf("expected step 3 to go back to step 2")
	}
}

func TestAnswersMapRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"education_stage":  "graduate",
		"has_experience":   true,
		"has_spring_weeks": true,
		"current_step":     "internship_experience",
		"note":             "kept",
	}

	out := ParseAnswers(in).Map()

	if out["education_stage"] != "graduate" || out["note"] != "kept" {
		t.Fatalf("unexpected map %v", out)
	}
	if out["current_step"] != StepInternshipExperience {
		t.Fatalf("unexpected current step %v", out["current_step"])
	}
	if _, ok := out["graduated"]; ok {
		t.Fatalf("graduated must not be echoed back")
	}
}
