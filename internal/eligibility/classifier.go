package eligibility

import (
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/logger"
	"github.com/earlycareers/programme-survey/internal/survey"
)

// Result is the recommendation for one answer set.
type Result struct {
	PrimaryCategory     Category            `json:"primary_category"`
	SecondaryCategories []Category          `json:"secondary_categories"`
	Commentary          map[Category]string `json:"commentary"`

	// Branch names the decision that produced the result. Used for logs and metrics.
	Branch string `json:"-"`
}

type pick struct {
	category Category
	note     Note
}

func recommend(branch string, primary pick, secondary ...pick) Result {
	r := Result{
		PrimaryCategory:     primary.category,
		SecondaryCategories: make([]Category, 0, len(secondary)),
		Commentary:          map[Category]string{primary.category: primary.note.Text()},
		Branch:              branch,
	}
	for _, p := range secondary {
		r.SecondaryCategories = append(r.SecondaryCategories, p.category)
		r.Commentary[p.category] = p.note.Text()
	}
	return r
}

// Classifier maps answer sets onto recommendation categories.
type Classifier struct {
	calendar *survey.Calendar
	logger   *zap.Logger
}

// New creates a Classifier. A nil calendar reads the wall clock; a nil logger discards output.
func New(calendar *survey.Calendar, log *zap.Logger) *Classifier {
	if calendar == nil {
		calendar = survey.NewCalendar(nil)
	}
	return &Classifier{
		calendar: calendar,
		logger:   logger.WithFields(log, zap.String("component", "classifier")),
	}
}

// Classify returns the recommendation for a.
func (c *Classifier) Classify(a survey.Answers) Result {
	_, result := c.Evaluate(a)
	return result
}

// Evaluate derives the profile for a and classifies it. The returned profile
// carries the derived year of study so callers can chain further calls on it.
func (c *Classifier) Evaluate(a survey.Answers) (survey.Profile, Result) {
	profile := c.calendar.Derive(a)
	result := decide(profile)

	c.logger.Debug("classified answers",
		append(logger.ProfileFields(profile),
			zap.String("branch", result.Branch),
			zap.String("primary_category", string(result.PrimaryCategory)),
			zap.Int("secondary_count", len(result.SecondaryCategories)),
		)...,
	)

	return profile, result
}

func decide(p survey.Profile) Result {
	switch p.EducationStage {
	case survey.StageHighSchool, survey.StagePreUniversity:
		return preUniversity("pre_university")
	case survey.StageGraduate:
		return graduate(p)
	case survey.StageUniversity:
		return university(p)
	default:
		return preUniversity("unrecognised_stage")
	}
}

func preUniversity(branch string) Result {
	return recommend(branch, pick{PreUniversity, NotePreUniversity})
}

func graduate(p survey.Profile) Result {
	if p.HasRelevantExperience() {
		return recommend("graduate_experienced",
			pick{OffCycleInternships, NoteGraduateExpOffCycle},
			pick{GraduateSchemes, NoteGraduateExpGradScheme},
		)
	}
	return recommend("graduate_inexperienced",
		pick{GraduateSchemes, NoteGraduateNoExpGradScheme},
		pick{OffCycleInternships, NoteGraduateNoExpOffCycle},
	)
}

// university handles students still studying. An unknown graduation year falls
// back to the two-years-away Spring Weeks text.
func university(p survey.Profile) Result {
	if p.YearsUntilGraduation == nil {
		return springWeeks("university_unknown_graduation")
	}

	years := *p.YearsUntilGraduation
	switch {
	case years > 2:
		return earlyUniversity(p)
	case years == 2:
		if p.Year() == 2 && p.HasPlacement {
			return recommend("two_years_placement",
				pick{IndustrialPlacements, NotePlacementSecondYear},
				pick{OffCycleInternships, NoteOffCyclePlacementYear},
			)
		}
		return springWeeks("two_years")
	case years == 1:
		return recommend("penultimate_year",
			pick{SummerInternships, NoteSummerPenultimate},
			pick{SpringWeeks, NoteSpringWeeksPenultimate},
		)
	case years == 0:
		return finalYear(p)
	default:
		return springWeeks("university_out_of_range")
	}
}

func earlyUniversity(p survey.Profile) Result {
	if !p.HasPlacement {
		return recommend("more_than_two_years", pick{SpringWeeks, NoteSpringWeeksMoreThanTwo})
	}

	year := p.Year()
	primary := pick{IndustrialPlacements, NotePlacementLaterYear}
	switch year {
	case 1:
		primary.note = NotePlacementFirstYear
	case 2:
		primary.note = NotePlacementSecondYear
	}

	secondary := pick{SpringWeeks, NoteSpringWeeksMoreThanTwo}
	if year == 2 {
		secondary = pick{OffCycleInternships, NoteOffCyclePlacementYear}
	}

	return recommend("more_than_two_years_placement", primary, secondary)
}

func finalYear(p survey.Profile) Result {
	switch {
	case p.HasGradOffer:
		return recommend("final_year_offer",
			pick{GraduateSchemes, NoteFinalOfferGradScheme},
			pick{SummerInternships, NoteFinalOfferSummer},
			pick{OffCycleInternships, NoteFinalOfferOffCycle},
		)
	case p.HasRelevantExperience():
		return recommend("final_year_experienced",
			pick{OffCycleInternships, NoteFinalExpOffCycle},
			pick{SummerInternships, NoteFinalExpSummer},
			pick{GraduateSchemes, NoteFinalExpGradScheme},
		)
	default:
		return recommend("final_year_inexperienced",
			pick{SummerInternships, NoteFinalNoExpSummer},
			pick{OffCycleInternships, NoteFinalNoExpOffCycle},
			pick{GraduateSchemes, NoteFinalNoExpGradScheme},
		)
	}
}

func springWeeks(branch string) Result {
	return recommend(branch, pick{SpringWeeks, NoteSpringWeeksTwoYears})
}
