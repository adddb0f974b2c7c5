package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

func TestTeamCRUD(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)

	resp := ta.request(t, fiber.MethodPost, "/api/teams", token, dto.CreateTeamRequest{
		Name:     "U17 Keepers",
		Club:     "FC Example",
		AgeGroup: "U17",
		Season:   "2025/26",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var team models.Team
	decodeBody(t, resp, &team)
	require.Equal(t, "U17 Keepers", team.Name)

	resp = ta.request(t, fiber.MethodGet, "/api/teams", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var teams []models.Team
	decodeBody(t, resp, &teams)
	require.Len(t, teams, 1)

	name := "U19 Keepers"
	resp = ta.request(t, fiber.MethodPut, "/api/teams/"+team.ID.String(), token,
		dto.UpdateTeamRequest{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &team)
	require.Equal(t, "U19 Keepers", team.Name)

	resp = ta.request(t, fiber.MethodDelete, "/api/teams/"+team.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ta.request(t, fiber.MethodGet, "/api/teams/"+team.ID.String(), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTeamCrossUserAccessForbidden(t *testing.T) {
	ta := newTestApp(t)
	_, ownerToken := ta.seedUser(t, "coach@example.com", models.RoleCoach)
	_, strangerToken := ta.seedUser(t, "other@example.com", models.RoleCoach)

	resp := ta.request(t, fiber.MethodPost, "/api/teams", ownerToken, dto.CreateTeamRequest{
		Name: "U17 Keepers",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var team models.Team
	decodeBody(t, resp, &team)

	resp = ta.request(t, fiber.MethodGet, "/api/teams/"+team.ID.String(), strangerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	name := "Hijacked"
	resp = ta.request(t, fiber.MethodPut, "/api/teams/"+team.ID.String(), strangerToken,
		dto.UpdateTeamRequest{Name: &name})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = ta.request(t, fiber.MethodDelete, "/api/teams/"+team.ID.String(), strangerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The stranger's listing stays empty.
	resp = ta.request(t, fiber.MethodGet, "/api/teams", strangerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var teams []models.Team
	decodeBody(t, resp, &teams)
	require.Empty(t, teams)
}

func TestTeamBadAndUnknownIDs(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)

	resp := ta.request(t, fiber.MethodGet, "/api/teams/not-a-uuid", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = ta.request(t, fiber.MethodGet, "/api/teams/"+uuid.NewString(), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
