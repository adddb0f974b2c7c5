package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

func TestStatisticDuplicateSeasonConflict(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)
	gk := ta.createGoalkeeper(t, token, "Iker")

	req := dto.CreateStatisticRequest{
		GoalkeeperID:  gk.ID,
		Season:        "2025/26",
		MatchesPlayed: 12,
		CleanSheets:   4,
	}
	resp := ta.request(t, fiber.MethodPost, "/api/statistics", token, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ta.request(t, fiber.MethodPost, "/api/statistics", token, req)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStatisticCrossFieldValidation(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)
	gk := ta.createGoalkeeper(t, token, "Iker")

	resp := ta.request(t, fiber.MethodPost, "/api/statistics", token, dto.CreateStatisticRequest{
		GoalkeeperID:  gk.ID,
		Season:        "2025/26",
		MatchesPlayed: 5,
		CleanSheets:   9,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Issues, 1)
	require.Equal(t, "clean_sheets", body.Issues[0].Path)
	require.Equal(t, "must not exceed matches_played", body.Issues[0].Message)
}

func TestStatisticPartialUpdateRecheck(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)
	gk := ta.createGoalkeeper(t, token, "Iker")

	resp := ta.request(t, fiber.MethodPost, "/api/statistics", token, dto.CreateStatisticRequest{
		GoalkeeperID:  gk.ID,
		Season:        "2025/26",
		MatchesPlayed: 10,
		CleanSheets:   8,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var stat models.Statistic
	decodeBody(t, resp, &stat)

	// Valid on its own, invalid against the stored clean sheet count.
	five := 5
	resp = ta.request(t, fiber.MethodPut, "/api/statistics/"+stat.ID.String(), token,
		dto.UpdateStatisticRequest{MatchesPlayed: &five})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Issues, 1)
	require.Equal(t, "clean_sheets", body.Issues[0].Path)
}
