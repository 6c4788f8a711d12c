package navigator

import (
	"slices"

	"github.com/earlycareers/programme-survey/internal/survey"
)

// QuestionType tells the client which input to render.
type QuestionType string

const (
	TypeSelect        QuestionType = "select"
	TypeBoolean       QuestionType = "boolean"
	TypeYearSelection QuestionType = "year_selection"
)

const (
	MessageWelcome  = "Welcome to the Programme Eligibility Survey"
	MessageComplete = "Thank you for completing the survey!"

	ErrMissingEducationStage = "Please select an education stage"
	ErrMissingTimeline       = "Please provide both your start year and graduation year"
	ErrMissingSpringWeeks    = "Please indicate whether you have completed any prior Spring Weeks"
	ErrInvalidStep           = "Invalid step requested"
)

// Descriptor is what the client renders next.
type Descriptor struct {
	NextStep survey.Step  `json:"next_step"`
	Question string       `json:"question,omitempty"`
	Type     QuestionType `json:"type,omitempty"`
	Options  []string     `json:"options,omitempty"`
	// HasPlacement asks the client to collect has_placement alongside the years.
	HasPlacement bool   `json:"has_placement,omitempty"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Terminal reports whether the survey is complete.
func (d Descriptor) Terminal() bool {
	return d.NextStep.IsTerminal() && d.Error == ""
}

var catalogue = map[survey.Step]Descriptor{
	survey.StepWelcome: {
		NextStep: survey.StepWelcome,
		Message:  MessageWelcome,
	},
	survey.StepEducationStage: {
		NextStep: survey.StepEducationStage,
		Question: "What stage of education are you in?",
		Type:     TypeSelect,
		Options: []string{
			string(survey.StageHighSchool),
			string(survey.StageUniversity),
			string(survey.StageGraduate),
		},
	},
	survey.StepUniversityTimeline: {
		NextStep:     survey.StepUniversityTimeline,
		Question:     "When did you start your degree and when will you graduate?",
		Type:         TypeYearSelection,
		HasPlacement: true,
	},
	survey.StepSpringWeeks: {
		NextStep: survey.StepSpringWeeks,
		Question: "Have you completed any prior Spring Weeks?",
		Type:     TypeBoolean,
	},
	survey.StepSpringConversion: {
		NextStep: survey.StepSpringConversion,
		Question: "Did you convert any of these into a Summer Internship offer?",
		Type:     TypeBoolean,
	},
	survey.StepInternshipExperience: {
		NextStep: survey.StepInternshipExperience,
		Question: "Have you completed any prior relevant Summer Internships or Full-Time work?",
		Type:     TypeBoolean,
	},
	survey.StepGradOffer: {
		NextStep: survey.StepGradOffer,
		Question: "Do you have a graduate offer already?",
		Type:     TypeBoolean,
	},
	survey.StepFinal: {
		NextStep: survey.StepFinal,
		Message:  MessageComplete,
	},
}

// Question returns the fixed descriptor presented at step s.
func Question(s survey.Step) (Descriptor, bool) {
	d, ok := catalogue[s]
	if !ok {
		return Descriptor{}, false
	}
	d.Options = slices.Clone(d.Options)
	return d, true
}

func question(s survey.Step) Descriptor {
	d, ok := Question(s)
	if !ok {
		return invalidStep()
	}
	return d
}

func failure(s survey.Step, message string) Descriptor {
	return Descriptor{NextStep: s, Error: message}
}

func invalidStep() Descriptor {
	return failure(survey.StepEducationStage, ErrInvalidStep)
}
