package survey

import "time"

// Academic years run September to August.
const academicYearStart = time.September

// Calendar derives time-dependent facts from an answer set.
type Calendar struct {
	now func() time.Time
}

// NewCalendar returns a Calendar reading the current time from now.
// A nil now means time.Now.
func NewCalendar(now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	return &Calendar{now: now}
}

// AcademicYear returns the calendar year in which the current academic year began.
func (c *Calendar) AcademicYear() int {
	return AcademicYearAt(c.now())
}

// CurrentYear returns the current calendar year.
func (c *Calendar) CurrentYear() int {
	return c.now().Year()
}

// YearOfStudy returns the year of study for a degree started in September of
// startYear, or nil when the start year is unknown.
func (c *Calendar) YearOfStudy(startYear *int) *int {
	if startYear == nil {
		return nil
	}
	year := c.AcademicYear() - *startYear + 1
	return &year
}

// YearsUntilGraduation returns graduationYear minus the current calendar year,
// or nil when the graduation year is unknown.
func (c *Calendar) YearsUntilGraduation(graduationYear *int) *int {
	if graduationYear == nil {
		return nil
	}
	years := *graduationYear - c.CurrentYear()
	return &years
}

// Derive returns an enriched copy of a. YearOfStudy is overwritten when a start
// year is known; nothing is removed.
func (c *Calendar) Derive(a Answers) Profile {
	enriched := a.Clone()
	if y := c.YearOfStudy(enriched.StartYear); y != nil {
		enriched.YearOfStudy = y
	}
	return Profile{
		Answers:              enriched,
		YearsUntilGraduation: c.YearsUntilGraduation(enriched.GraduationYear),
	}
}

// AcademicYearAt returns the calendar year in which the academic year containing t began.
func AcademicYearAt(t time.Time) int {
	if t.Month() >= academicYearStart {
		return t.Year()
	}
	return t.Year() - 1
}

// Profile is an answer set together with its derived facts.
type Profile struct {
	Answers
	YearsUntilGraduation *int
}

// Year returns the year of study, defaulting to 0 when unknown.
func (p Profile) Year() int {
	if p.YearOfStudy == nil {
		return 0
	}
	return *p.YearOfStudy
}

// HasRelevantExperience combines prior experience with a placement.
func (p Profile) HasRelevantExperience() bool {
	return p.HasExperience || p.HasPlacement
}
