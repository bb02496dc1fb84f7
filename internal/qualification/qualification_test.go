package qualification

import (
	"errors"
	"testing"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"

	"github.com/stretchr/testify/require"
)

func TestEvaluator_IsQualified(t *testing.T) {
	evaluator := NewEvaluator(3)

	tests := []struct {
		name string
		team model.Team
		want bool
	}{
		{
			name: "xp_met",
			team: model.Team{TeamID: "teamA", MinXPMet: true},
			want: true,
		},
		{
			name: "events_at_threshold",
			team: model.Team{TeamID: "teamB", EventParticipationCount: 3},
			want: true,
		},
		{
			name: "events_above_threshold",
			team: model.Team{TeamID: "teamC", EventParticipationCount: 10},
			want: true,
		},
		{
			name: "both_met",
			team: model.Team{TeamID: "teamD", MinXPMet: true, EventParticipationCount: 5},
			want: true,
		},
		{
			name: "neither_met",
			team: model.Team{TeamID: "teamE", EventParticipationCount: 2},
			want: false,
		},
		{
			name: "zero_progress",
			team: model.Team{TeamID: "teamF"},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, evaluator.IsQualified(tc.team))

			err := evaluator.RequireQualified(tc.team)
			if tc.want {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrNotQualified))
			}
		})
	}
}

func TestNewEvaluator_DefaultThreshold(t *testing.T) {
	evaluator := NewEvaluator(0)

	require.False(t, evaluator.IsQualified(model.Team{EventParticipationCount: DefaultEventThreshold - 1}))
	require.True(t, evaluator.IsQualified(model.Team{EventParticipationCount: DefaultEventThreshold}))
}
