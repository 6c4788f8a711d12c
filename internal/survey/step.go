package survey

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Step identifies a position in the survey flow.
type Step int

const (
	StepWelcome Step = iota
	StepEducationStage
	StepUniversityTimeline
	StepSpringWeeks
	StepSpringConversion
	StepInternshipExperience
	StepGradOffer
	StepFinal
)

const (
	tagInternshipExperience = "internship_experience"
	tagGradOffer            = "grad_offer"
	tagFinal                = "final"
)

// Sequence is the canonical order of steps used for backward navigation.
func Sequence() []Step {
	return []Step{
		StepWelcome,
		StepEducationStage,
		StepUniversityTimeline,
		StepSpringWeeks,
		StepSpringConversion,
		StepInternshipExperience,
		StepGradOffer,
		StepFinal,
	}
}

// IsValid reports whether s is one of the known steps.
func (s Step) IsValid() bool {
	return s >= StepWelcome && s <= StepFinal
}

// IsTerminal reports whether the survey is over at s.
func (s Step) IsTerminal() bool {
	return s == StepFinal
}

// Index returns the position of s in Sequence, or -1.
func (s Step) Index() int {
	if !s.IsValid() {
		return -1
	}
	return int(s)
}

// Previous returns the step one position earlier in the sequence, clamped at Welcome.
func (s Step) Previous() Step {
	if s <= StepWelcome {
		return StepWelcome
	}
	return s - 1
}

func (s Step) String() string {
	switch s {
	case StepInternshipExperience:
		return tagInternshipExperience
	case StepGradOffer:
		return tagGradOffer
	case StepFinal:
		return tagFinal
	}
	if s.IsValid() {
		return strconv.Itoa(int(s))
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// MarshalJSON encodes numbered steps as JSON numbers and the rest as tags.
func (s Step) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	if s <= StepSpringConversion {
		return []byte(strconv.Itoa(int(s))), nil
	}
	return json.Marshal(s.String())
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	step, ok := ParseStep(raw)
	if !ok {
		return fmt.Errorf("unknown step %s", string(data))
	}
	*s = step
	return nil
}

// ParseStep converts a loosely typed step identifier. Numbered steps may arrive
// as any integer type, a whole float or a numeric string.
func ParseStep(v any) (Step, bool) {
	switch val := v.(type) {
	case Step:
		return val, val.IsValid()
	case int:
		return numberedStep(int64(val))
	case int32:
		return numberedStep(int64(val))
	case int64:
		return numberedStep(val)
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		return numberedStep(int64(val))
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return numberedStep(n)
	case string:
		tag := strings.TrimSpace(strings.ToLower(val))
		switch tag {
		case tagInternshipExperience:
			return StepInternshipExperience, true
		case tagGradOffer:
			return StepGradOffer, true
		case tagFinal:
			return StepFinal, true
		}
		n, err := strconv.ParseInt(tag, 10, 64)
		if err != nil {
			return 0, false
		}
		return numberedStep(n)
	default:
		return 0, false
	}
}

func numberedStep(n int64) (Step, bool) {
	if n < int64(StepWelcome) || n > int64(StepSpringConversion) {
		return 0, false
	}
	return Step(n), true
}
