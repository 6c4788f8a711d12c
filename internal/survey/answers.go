package survey

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// EducationStage is the top-level branch selector of the survey.
type EducationStage string

const (
	StageHighSchool    EducationStage = "high school"
	StagePreUniversity EducationStage = "pre-university"
	StageUniversity    EducationStage = "university"
	StageGraduate      EducationStage = "graduate"
)

// Known reports whether s is one of the recognised stages.
func (s EducationStage) Known() bool {
	switch s {
	case StageHighSchool, StagePreUniversity, StageUniversity, StageGraduate:
		return true
	default:
		return false
	}
}

// Answer keys of the flat key/value form.
const (
	KeyEducationStage = "education_stage"
	KeyStartYear      = "start_year"
	KeyGraduationYear = "graduation_year"
	KeyYearOfStudy    = "year_of_study"
	KeyHasPlacement   = "has_placement"
	KeyHasGradOffer   = "has_grad_offer"
	KeyHasExperience  = "has_experience"
	KeyHasSpringWeeks = "has_spring_weeks"
	KeyCurrentStep    = "current_step"
	KeyIsPrevious     = "is_previous"
	KeyPreviousStep   = "previous_step"
	KeyPreviousSteps  = "previous_steps"
	KeyGraduated      = "graduated"
)

// StepField is an optional step identifier as supplied by the caller.
type StepField struct {
	Step    Step
	Present bool
	Valid   bool
	Raw     any
}

// StepOf returns a present, valid StepField.
func StepOf(s Step) StepField {
	return StepField{Step: s, Present: true, Valid: s.IsValid(), Raw: s}
}

func parseStepField(v any) StepField {
	if v == nil {
		return StepField{}
	}
	step, ok := ParseStep(v)
	return StepField{Step: step, Present: true, Valid: ok, Raw: v}
}

func (f StepField) value() any {
	if f.Valid {
		return f.Step
	}
	return f.Raw
}

// Answers is the typed view of a caller-supplied answer set.
type Answers struct {
	EducationStage EducationStage
	StartYear      *int
	GraduationYear *int
	YearOfStudy    *int
	HasPlacement   bool
	HasGradOffer   bool
	HasExperience  bool
	// HasSpringWeeks keeps presence: step 3 treats absent and false differently.
	HasSpringWeeks *bool

	CurrentStep   StepField
	IsPrevious    bool
	PreviousStep  StepField
	PreviousSteps []StepField

	// Extra holds keys the survey does not interpret, so the set round-trips.
	Extra map[string]any
}

type rawAnswers struct {
	EducationStage any            `mapstructure:"education_stage"`
	StartYear      any            `mapstructure:"start_year"`
	GraduationYear any            `mapstructure:"graduation_year"`
	YearOfStudy    any            `mapstructure:"year_of_study"`
	HasPlacement   any            `mapstructure:"has_placement"`
	HasGradOffer   any            `mapstructure:"has_grad_offer"`
	HasExperience  any            `mapstructure:"has_experience"`
	HasSpringWeeks any            `mapstructure:"has_spring_weeks"`
	CurrentStep    any            `mapstructure:"current_step"`
	IsPrevious     any            `mapstructure:"is_previous"`
	PreviousStep   any            `mapstructure:"previous_step"`
	PreviousSteps  any            `mapstructure:"previous_steps"`
	Graduated      any            `mapstructure:"graduated"`
	Extra          map[string]any `mapstructure:",remain"`
}

// ParseAnswers coerces a flat answer map into Answers. Values that cannot be
// coerced are treated as absent; parsing never fails.
func ParseAnswers(data map[string]any) Answers {
	var raw rawAnswers
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &raw,
		// Answer keys are exact; differently cased keys belong in Extra.
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return Answers{}
	}
	if err := decoder.Decode(data); err != nil {
		// Every target field is untyped, so decoding only fails on a nil map.
		return Answers{}
	}

	a := Answers{
		EducationStage: EducationStage(strings.ToLower(strings.TrimSpace(cast.ToString(raw.EducationStage)))),
		StartYear:      parseYear(raw.StartYear),
		GraduationYear: parseYear(raw.GraduationYear),
		YearOfStudy:    parseYearOfStudy(raw.YearOfStudy),
		HasPlacement:   parseBool(raw.HasPlacement),
		HasGradOffer:   parseBool(raw.HasGradOffer),
		HasExperience:  parseBool(raw.HasExperience),
		HasSpringWeeks: parseOptionalBool(raw.HasSpringWeeks),
		CurrentStep:    parseStepField(raw.CurrentStep),
		IsPrevious:     parseBool(raw.IsPrevious),
		PreviousStep:   parseStepField(raw.PreviousStep),
		PreviousSteps:  parseStepHistory(raw.PreviousSteps),
	}

	if len(raw.Extra) > 0 {
		a.Extra = maps.Clone(raw.Extra)
	}

	return a
}

// Graduated is always derived from the education stage.
func (a Answers) Graduated() bool {
	return a.EducationStage == StageGraduate
}

// Clone returns a deep copy of a.
func (a Answers) Clone() Answers {
	c := a
	c.StartYear = cloneInt(a.StartYear)
	c.GraduationYear = cloneInt(a.GraduationYear)
	c.YearOfStudy = cloneInt(a.YearOfStudy)
	if a.HasSpringWeeks != nil {
		v := *a.HasSpringWeeks
		c.HasSpringWeeks = &v
	}
	if a.PreviousSteps != nil {
		c.PreviousSteps = append([]StepField(nil), a.PreviousSteps...)
	}
	if a.Extra != nil {
		c.Extra = maps.Clone(a.Extra)
	}
	return c
}

// Map flattens a back into the key/value form. Absent optional values are omitted.
func (a Answers) Map() map[string]any {
	m := make(map[string]any, len(a.Extra)+12)
	maps.Copy(m, a.Extra)

	if a.EducationStage != "" {
		m[KeyEducationStage] = string(a.EducationStage)
	}
	if a.StartYear != nil {
		m[KeyStartYear] = *a.StartYear
	}
	if a.GraduationYear != nil {
		m[KeyGraduationYear] = *a.GraduationYear
	}
	if a.YearOfStudy != nil {
		m[KeyYearOfStudy] = *a.YearOfStudy
	}
	m[KeyHasPlacement] = a.HasPlacement
	m[KeyHasGradOffer] = a.HasGradOffer
	m[KeyHasExperience] = a.HasExperience
	if a.HasSpringWeeks != nil {
		m[KeyHasSpringWeeks] = *a.HasSpringWeeks
	}
	if a.CurrentStep.Present {
		m[KeyCurrentStep] = a.CurrentStep.value()
	}
	if a.IsPrevious {
		m[KeyIsPrevious] = true
	}
	if a.PreviousStep.Present {
		m[KeyPreviousStep] = a.PreviousStep.value()
	}
	if len(a.PreviousSteps) > 0 {
		history := make([]any, 0, len(a.PreviousSteps))
		for _, f := range a.PreviousSteps {
			history = append(history, f.value())
		}
		m[KeyPreviousSteps] = history
	}

	return m
}

func (a Answers) String() string {
	return fmt.Sprintf("stage=%q start=%s graduation=%s year=%s step=%v",
		a.EducationStage, intString(a.StartYear), intString(a.GraduationYear), intString(a.YearOfStudy), a.CurrentStep.value())
}

// parseYear accepts calendar years as numbers or numeric strings.
func parseYear(v any) *int {
	n, ok := parseInt(v)
	if !ok || n <= 0 {
		return nil
	}
	return &n
}

func parseYearOfStudy(v any) *int {
	n, ok := parseInt(v)
	if !ok || n < 1 {
		return nil
	}
	return &n
}

func parseInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok {
		// Always base 10: "02026" is 2026, not an octal literal.
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	if _, ok := v.(bool); ok {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBool(v any) bool {
	b := parseOptionalBool(v)
	return b != nil && *b
}

func parseOptionalBool(v any) *bool {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return nil
		}
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil
	}
	return &b
}

func parseStepHistory(v any) []StepField {
	if v == nil {
		return nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return []StepField{parseStepField(v)}
	}
	history := make([]StepField, 0, len(items))
	for _, item := range items {
		history = append(history, parseStepField(item))
	}
	return history
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intString(p *int) string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprint(*p)
}
