package navigator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/logger"
	"github.com/earlycareers/programme-survey/internal/survey"
)

// Navigator decides which question follows the current step.
type Navigator struct {
	calendar *survey.Calendar
	logger   *zap.Logger
}

// New creates a Navigator. A nil calendar reads the wall clock; a nil logger discards output.
func New(calendar *survey.Calendar, log *zap.Logger) *Navigator {
	if calendar == nil {
		calendar = survey.NewCalendar(nil)
	}
	return &Navigator{
		calendar: calendar,
		logger:   logger.WithFields(log, zap.String("component", "navigator")),
	}
}

// Next returns the descriptor for the step after (or, with is_previous, before)
// the current one. Missing answers and unknown steps are reported in the
// descriptor's Error field; Next never panics.
func (n *Navigator) Next(a survey.Answers) (d Descriptor) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("navigation failed", append(logger.AnswerFields(a), zap.Any("panic", r))...)
			d = Recovered(a, r)
		}
	}()

	if a.IsPrevious {
		d = n.backward(a)
	} else {
		d = n.forward(a)
	}

	fields := append(logger.AnswerFields(a), zap.Stringer("next_step", d.NextStep))
	if d.Error != "" {
		fields = append(fields, zap.String("error", d.Error))
	}
	n.logger.Debug("navigated", fields...)

	return d
}

// Recovered converts a panic raised while handling a into an in-band error
// descriptor that keeps the client on its current step.
func Recovered(a survey.Answers, r any) Descriptor {
	step := survey.StepEducationStage
	if a.CurrentStep.Valid {
		step = a.CurrentStep.Step
	}
	return failure(step, fmt.Sprintf("Error processing step: %v", r))
}

func (n *Navigator) forward(a survey.Answers) Descriptor {
	current := survey.StepWelcome
	if a.CurrentStep.Present {
		if !a.CurrentStep.Valid {
			return invalidStep()
		}
		current = a.CurrentStep.Step
	}

	switch current {
	case survey.StepWelcome:
		return question(survey.StepEducationStage)
	case survey.StepEducationStage:
		return n.afterEducationStage(a)
	case survey.StepUniversityTimeline:
		return n.afterTimeline(a)
	case survey.StepSpringWeeks:
		return n.afterSpringWeeks(a)
	case survey.StepSpringConversion:
		return question(survey.StepInternshipExperience)
	case survey.StepInternshipExperience:
		return n.afterInternshipExperience(a)
	case survey.StepGradOffer, survey.StepFinal:
		return question(survey.StepFinal)
	default:
		return invalidStep()
	}
}

func (n *Navigator) afterEducationStage(a survey.Answers) Descriptor {
	switch a.EducationStage {
	case "":
		return failure(survey.StepEducationStage, ErrMissingEducationStage)
	case survey.StageUniversity:
		return question(survey.StepUniversityTimeline)
	case survey.StageGraduate:
		return question(survey.StepInternshipExperience)
	default:
		// High school, pre-university and unrecognised stages all resolve to
		// the Pre-University tab, so there is nothing more to ask.
		return question(survey.StepFinal)
	}
}

// afterTimeline ends the survey for first-year students with more than a year
// left; everyone else is asked about Spring Weeks.
func (n *Navigator) afterTimeline(a survey.Answers) Descriptor {
	if a.StartYear == nil || a.GraduationYear == nil {
		return failure(survey.StepUniversityTimeline, ErrMissingTimeline)
	}

	p := n.calendar.Derive(a)
	if p.Year() >= 2 || *p.YearsUntilGraduation <= 0 {
		return question(survey.StepSpringWeeks)
	}
	return question(survey.StepFinal)
}

func (n *Navigator) afterSpringWeeks(a survey.Answers) Descriptor {
	if a.HasSpringWeeks == nil {
		return failure(survey.StepSpringWeeks, ErrMissingSpringWeeks)
	}
	if *a.HasSpringWeeks {
		return question(survey.StepSpringConversion)
	}
	return question(survey.StepInternshipExperience)
}

// afterInternshipExperience asks about graduate offers only in the final year
// or from year four onwards.
func (n *Navigator) afterInternshipExperience(a survey.Answers) Descriptor {
	p := n.calendar.Derive(a)
	finalYear := p.YearsUntilGraduation != nil && *p.YearsUntilGraduation == 0
	if finalYear || (p.YearOfStudy != nil && *p.YearOfStudy >= 4) {
		return question(survey.StepGradOffer)
	}
	return question(survey.StepFinal)
}

// backward resolves the target step: an explicit previous_step, then the last
// entry of previous_steps, then the reverse of the current step. Without any
// of them the survey restarts at the education stage question.
func (n *Navigator) backward(a survey.Answers) Descriptor {
	var target survey.StepField
	switch {
	case a.PreviousStep.Present:
		target = a.PreviousStep
	case len(a.PreviousSteps) > 0:
		target = a.PreviousSteps[len(a.PreviousSteps)-1]
	case !a.CurrentStep.Present:
		target = survey.StepOf(survey.StepEducationStage)
	case !a.CurrentStep.Valid:
		return invalidStep()
	default:
		target = survey.StepOf(reverse(a.CurrentStep.Step, a))
	}

	if !target.Valid {
		return invalidStep()
	}
	return question(target.Step)
}

func reverse(s survey.Step, a survey.Answers) survey.Step {
	switch s {
	case survey.StepInternshipExperience:
		if a.HasSpringWeeks != nil && *a.HasSpringWeeks {
			return survey.StepSpringConversion
		}
		return survey.StepSpringWeeks
	case survey.StepGradOffer:
		return survey.StepInternshipExperience
	default:
		return s.Previous()
	}
}
