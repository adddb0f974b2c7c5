package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

func TestPenaltySummary(t *testing.T) {
	db := testDB(t)
	svc := NewPenaltyService(db)
	coach := seedCoach(t, db, "coach@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	seeds := []struct{ direction, outcome string }{
		{"left", models.PenaltyOutcomeSaved},
		{"left", models.PenaltyOutcomeGoal},
		{"right", models.PenaltyOutcomeSaved},
		{"center", models.PenaltyOutcomeMissed},
		{"right", models.PenaltyOutcomePost},
	}
	for _, seed := range seeds {
		_, err := svc.Create(coach, &dto.CreatePenaltyRequest{
			GoalkeeperID: gk.ID,
			Direction:    seed.direction,
			Outcome:      seed.outcome,
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(coach, gk.ID)
	require.NoError(t, err)

	require.Equal(t, int64(5), summary.Total)
	require.Equal(t, int64(2), summary.Saved)
	require.Equal(t, int64(1), summary.Conceded)
	require.Equal(t, int64(2), summary.ByDirection["left"])
	require.Equal(t, int64(2), summary.ByDirection["right"])
	require.Equal(t, int64(1), summary.ByOutcome[models.PenaltyOutcomeMissed])

	// Misses and woodwork do not count against the save rate.
	require.InDelta(t, 2.0/3.0, summary.SaveRate, 1e-9)
}

func TestPenaltySummaryEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewPenaltyService(db)
	coach := seedCoach(t, db, "coach@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	summary, err := svc.Summary(coach, gk.ID)
	require.NoError(t, err)
	require.Zero(t, summary.Total)
	require.Zero(t, summary.SaveRate)
}

func TestPenaltyOwnershipBoundary(t *testing.T) {
	db := testDB(t)
	svc := NewPenaltyService(db)
	coach := seedCoach(t, db, "coach@example.com")
	other := seedCoach(t, db, "other@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	penalty, err := svc.Create(coach, &dto.CreatePenaltyRequest{
		GoalkeeperID: gk.ID,
		Direction:    "left",
		Outcome:      models.PenaltyOutcomeSaved,
	})
	require.NoError(t, err)

	_, err = svc.Create(other, &dto.CreatePenaltyRequest{
		GoalkeeperID: gk.ID,
		Direction:    "left",
		Outcome:      models.PenaltyOutcomeSaved,
	})
	require.ErrorIs(t, err, authz.ErrForbidden)

	_, err = svc.Summary(other, gk.ID)
	require.ErrorIs(t, err, authz.ErrForbidden)

	require.ErrorIs(t, svc.Delete(other, penalty.ID), authz.ErrForbidden)
	require.NoError(t, svc.Delete(coach, penalty.ID))

	listed, err := svc.List(coach, &gk.ID)
	require.NoError(t, err)
	require.Empty(t, listed)
}
