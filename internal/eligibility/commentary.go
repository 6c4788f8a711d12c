package eligibility

// Category is one of the recommendation tabs.
type Category string

const (
	PreUniversity        Category = "Pre-University"
	SpringWeeks          Category = "Spring Weeks"
	IndustrialPlacements Category = "Industrial Placements"
	OffCycleInternships  Category = "Off-Cycle Internships"
	SummerInternships    Category = "Summer Internships"
	GraduateSchemes      Category = "Graduate Schemes"
)

// Categories returns the closed category taxonomy.
func Categories() []Category {
	return []Category{
		PreUniversity,
		SpringWeeks,
		IndustrialPlacements,
		OffCycleInternships,
		SummerInternships,
		GraduateSchemes,
	}
}

// Note identifies one explanation in the commentary catalogue.
type Note string

const (
	NotePreUniversity Note = "pre_university"

	NoteSpringWeeksTwoYears     Note = "spring_weeks_two_years"
	NoteSpringWeeksMoreThanTwo  Note = "spring_weeks_more_than_two"
	NoteSpringWeeksPenultimate  Note = "spring_weeks_penultimate"
	NotePlacementFirstYear      Note = "placement_first_year"
	NotePlacementSecondYear     Note = "placement_second_year"
	NotePlacementLaterYear      Note = "placement_later_year"
	NoteOffCyclePlacementYear   Note = "off_cycle_placement_year"
	NoteSummerPenultimate       Note = "summer_penultimate"
	NoteFinalOfferGradScheme    Note = "final_offer_grad_scheme"
	NoteFinalOfferSummer        Note = "final_offer_summer"
	NoteFinalOfferOffCycle      Note = "final_offer_off_cycle"
	NoteFinalExpOffCycle        Note = "final_exp_off_cycle"
	NoteFinalExpSummer          Note = "final_exp_summer"
	NoteFinalExpGradScheme      Note = "final_exp_grad_scheme"
	NoteFinalNoExpSummer        Note = "final_no_exp_summer"
	NoteFinalNoExpOffCycle      Note = "final_no_exp_off_cycle"
	NoteFinalNoExpGradScheme    Note = "final_no_exp_grad_scheme"
	NoteGraduateExpOffCycle     Note = "graduate_exp_off_cycle"
	NoteGraduateExpGradScheme   Note = "graduate_exp_grad_scheme"
	NoteGraduateNoExpGradScheme Note = "graduate_no_exp_grad_scheme"
	NoteGraduateNoExpOffCycle   Note = "graduate_no_exp_off_cycle"
)

// Text returns the catalogue text for n, or "" for an unknown note.
func (n Note) Text() string {
	return commentary[n]
}

// commentary is read-only after initialisation; UIs render these strings verbatim.
var commentary = map[Note]string{
	NotePreUniversity: "As a high school student, every opportunity you are eligible for will be listed on the Pre-University tab.",

	NoteSpringWeeksTwoYears: "As you are two years away from graduating, every opportunity you are eligible for will be listed on the Spring Weeks tab. " +
		"This includes a handful of summer internships open for all students.",
	NoteSpringWeeksMoreThanTwo: "As you are not two years out from graduation, you are technically not eligible for Spring Weeks. " +
		"However, many 4+ year courses are flexible in their graduation date; if you are on an integrated Master's, your university will normally allow you to switch to a Bachelor's to become eligible for Spring Weeks with no issues. " +
		"You can always switch back to an Integrated Master's if you change your mind. " +
		"Similarly, if you have an industrial placement year, you can often switch to the equivalent course without an industrial placement to become eligible for Spring Weeks, " +
		"and switch back after your spring weeks if you choose to continue with your industrial placement degree",
	NoteSpringWeeksPenultimate: "You can become eligible for Spring Weeks by writing 'Intended Master's Degree' on your resume. " +
		"These serve as a less competitive route into great roles, and act as a backup option in case you fail to convert your summer internship this year. " +
		"Many companies will not force you to complete the Master's Degree but even if they do, it will often be a favourable outcome regardless.",

	NotePlacementFirstYear: "As a first-year student interested in placements, you should focus on building foundational skills and experiences. " +
		"While it's early to apply for placements directly, you can prepare by researching companies, improving your CV, and gaining relevant experiences through societies or projects. " +
		"You'll be in a stronger position to apply for placements in your second year.",
	NotePlacementSecondYear: "As a second-year student, you should now be applying for industrial placement programmes. " +
		"These are relatively uncompetitive because the pool of candidates is much smaller.",
	NotePlacementLaterYear: "Many courses are flexible about when the industrial placement year is taken, so you can still apply for industrial placement programmes this year. " +
		"Check with your university how the placement fits your timetable; these programmes remain relatively uncompetitive because the pool of candidates is much smaller.",

	NoteOffCyclePlacementYear: "It is also possible to fill your industrial placement year with 2 off-cycle internships. " +
		"However, these programmes are far more competitive and securing two internships that align in timing will be challenging.",

	NoteSummerPenultimate: "As a penultimate-year student, summer internships are the ideal opportunity to gain experience and receive a graduate offer.",

	NoteFinalOfferGradScheme: "Because you already have a graduate scheme, you should not prioritise applying for internships which you risk not converting to the full-time position. " +
		"Although more competitive, it would be safer to continue applying for other graduate programmes.",
	NoteFinalOfferSummer: "If you are deeply unsatisfied with your current graduate offer, you can become eligible for summer internships by writing 'Intended Master's Degree' on your resume. " +
		"These programmes are less competitive and typically convert to a full-time role, although it will likely clash with your graduate job and will require you to reject your current offer. " +
		"Most firms will not force you to complete a Master's Degree.",
	NoteFinalOfferOffCycle: "If you are deeply unsatisfied with your current graduate offer, you can apply for off-cycle internships. " +
		"These programmes are less competitive and often convert to a full-time role, although it will likely clash with your graduate job and will require you to reject your current offer",

	NoteFinalExpOffCycle: "Because you have previous experience, you will be a strong candidate for off-cycle internships. " +
		"These programmes have less applicants and are suitable for upcoming graduates, often converting to a full-time position.",
	NoteFinalExpSummer: "You can become eligible for summer internships by writing 'Intended Master's Degree' on your resume. " +
		"These programmes are less competitive and are a reliable route into receiving a full-time offer.",
	NoteFinalExpGradScheme: "Graduate programmes are unrealistically competitive for most roles in finance. " +
		"You should still send applications for less competitive companies, but prioritise off-cycle internships and summer internships.",

	NoteFinalNoExpSummer: "You can become eligible for summer internships by writing 'Intended Master's Degree' on your resume. " +
		"These programmes are less competitive and are a reliable route into receiving a full-time offer. " +
		"Because you have no relevant experience, applying for summer internships will give you the best chance of receiving an offer",
	NoteFinalNoExpOffCycle: "You are eligible for off-cycle internships, but these these are typically unattainable for those without relevant experience. " +
		"You should still submit applications where possible, but prioritise applying for summer internships.",
	NoteFinalNoExpGradScheme: "Graduate programmes are unrealistically competitive for most roles in finance. " +
		"You should still send applications for smaller or less competitive companies, but prioritise summer internships for the most competitive roles.",

	NoteGraduateExpOffCycle: "Because you have relevant experience, you have the opportunity to pass CV screening for off-cycle internships which are typically unattainable for those without past internships.",
	NoteGraduateExpGradScheme: "You are also eligible for graduate schemes but, even for students with relevant experience, these are unrealistically competitive. " +
		"These are good options for less competitive companies or back office divisions, but prioritise off-cycle internships for more competitive roles.",
	NoteGraduateNoExpGradScheme: "Because you have no relevant experience, we recommend targeting graduate roles at less competitive companies or divisions such as Big 4, " +
		"or risk/operations at banks as these are often attainable for candidates with no experience.",
	NoteGraduateNoExpOffCycle: "You are eligible for off-cycle internships, but these these are typically unattainable for those without relevant experience. " +
		"You should still submit applications where possible, but prioritise applying for graduate programmes at less competitive companies.",
}
