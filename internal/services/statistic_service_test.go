package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
	"github.com/keeperbase/keeperbase/internal/validation"
)

func TestStatisticDuplicateSeason(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticService(db)
	coach := seedCoach(t, db, "coach@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	req := dto.CreateStatisticRequest{
		GoalkeeperID:  gk.ID,
		Season:        "2025/26",
		MatchesPlayed: 12,
		CleanSheets:   4,
	}
	_, err := svc.Create(coach, &req)
	require.NoError(t, err)

	_, err = svc.Create(coach, &req)
	require.ErrorIs(t, err, ErrDuplicateSeason)

	// A second season for the same goalkeeper is fine.
	req.Season = "2026/27"
	_, err = svc.Create(coach, &req)
	require.NoError(t, err)
}

func TestStatisticCreateForForeignGoalkeeper(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticService(db)
	coach := seedCoach(t, db, "coach@example.com")
	other := seedCoach(t, db, "other@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	_, err := svc.Create(other, &dto.CreateStatisticRequest{
		GoalkeeperID: gk.ID,
		Season:       "2025/26",
	})
	require.ErrorIs(t, err, authz.ErrForbidden)
}

func TestStatisticUpdateRechecksMergedInvariants(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticService(db)
	coach := seedCoach(t, db, "coach@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	stat, err := svc.Create(coach, &dto.CreateStatisticRequest{
		GoalkeeperID:  gk.ID,
		Season:        "2025/26",
		MatchesPlayed: 10,
		CleanSheets:   8,
	})
	require.NoError(t, err)

	// Lowering matches below the stored clean sheet count must fail even
	// though the payload on its own looks harmless.
	five := 5
	_, err = svc.Update(coach, stat.ID, &dto.UpdateStatisticRequest{MatchesPlayed: &five})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)

	var stored models.Statistic
	require.NoError(t, db.First(&stored, "id = ?", stat.ID).Error)
	require.Equal(t, 10, stored.MatchesPlayed)
	require.Equal(t, 8, stored.CleanSheets)

	// Lowering both sides together passes.
	three := 3
	updated, err := svc.Update(coach, stat.ID, &dto.UpdateStatisticRequest{
		MatchesPlayed: &five,
		CleanSheets:   &three,
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.MatchesPlayed)
	require.Equal(t, 3, updated.CleanSheets)
}

func TestStatisticListFilters(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticService(db)
	coach := seedCoach(t, db, "coach@example.com")
	other := seedCoach(t, db, "other@example.com")
	gk1 := seedGoalkeeper(t, db, coach, "Iker")
	gk2 := seedGoalkeeper(t, db, coach, "Manuel")
	foreign := seedGoalkeeper(t, db, other, "Gigi")

	for _, seed := range []struct {
		id     authz.Identity
		gk     models.Goalkeeper
		season string
	}{
		{coach, gk1, "2024/25"},
		{coach, gk1, "2025/26"},
		{coach, gk2, "2025/26"},
		{other, foreign, "2025/26"},
	} {
		_, err := svc.Create(seed.id, &dto.CreateStatisticRequest{
			GoalkeeperID: seed.gk.ID,
			Season:       seed.season,
		})
		require.NoError(t, err)
	}

	all, err := svc.List(coach, StatisticFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	bySeason, err := svc.List(coach, StatisticFilter{Season: "2025/26"})
	require.NoError(t, err)
	require.Len(t, bySeason, 2)

	byKeeper, err := svc.List(coach, StatisticFilter{GoalkeeperID: &gk1.ID})
	require.NoError(t, err)
	require.Len(t, byKeeper, 2)
	// Newest season first.
	require.Equal(t, "2025/26", byKeeper[0].Season)
}

func TestStatisticGetForbiddenForStrangers(t *testing.T) {
	db := testDB(t)
	svc := NewStatisticService(db)
	coach := seedCoach(t, db, "coach@example.com")
	other := seedCoach(t, db, "other@example.com")
	gk := seedGoalkeeper(t, db, coach, "Iker")

	stat, err := svc.Create(coach, &dto.CreateStatisticRequest{GoalkeeperID: gk.ID, Season: "2025/26"})
	require.NoError(t, err)

	_, err = svc.Get(other, stat.ID)
	require.ErrorIs(t, err, authz.ErrForbidden)

	require.ErrorIs(t, svc.Delete(other, stat.ID), authz.ErrForbidden)
	require.NoError(t, svc.Delete(coach, stat.ID))

	_, err = svc.Get(coach, stat.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
