// Package advisor produces free-text advice on top of a recommendation.
// Advice is supplementary: it never changes the recommended categories.
package advisor

import (
	"context"

	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/survey"
)

type Advisor interface {
	Advise(ctx context.Context, profile survey.Profile, result eligibility.Result) (string, error)
}
