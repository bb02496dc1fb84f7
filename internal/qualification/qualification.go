package qualification

import (
	"fmt"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"
)

// DefaultEventThreshold is the participation count that qualifies a team
// when the XP minimum has not been met.
const DefaultEventThreshold = 3

// Evaluator decides whether a team may submit bids. Non-qualified teams
// keep read access to all public auction state; only write paths gate on
// this check.
type Evaluator struct {
	eventThreshold int
}

// NewEvaluator creates an evaluator with the given event-participation
// threshold. A non-positive threshold falls back to the default.
func NewEvaluator(eventThreshold int) *Evaluator {
	if eventThreshold <= 0 {
		eventThreshold = DefaultEventThreshold
	}
	return &Evaluator{eventThreshold: eventThreshold}
}

// IsQualified is a pure function of the team snapshot: XP minimum met OR
// enough event participations.
func (e *Evaluator) IsQualified(team model.Team) bool {
	return team.MinXPMet || team.EventParticipationCount >= e.eventThreshold
}

// RequireQualified returns ErrNotQualified unless the team may bid
func (e *Evaluator) RequireQualified(team model.Team) error {
	if !e.IsQualified(team) {
		return fmt.Errorf("team %s: %w (xp met: %t, events: %d/%d)",
			team.TeamID, auctionerrors.ErrNotQualified, team.MinXPMet, team.EventParticipationCount, e.eventThreshold)
	}
	return nil
}
