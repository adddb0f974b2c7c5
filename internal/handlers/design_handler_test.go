package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

func testPNGDataURL() string {
	data := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDesignCreateAndServeImage(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)

	resp := ta.request(t, fiber.MethodPost, "/api/designs", token, dto.CreateDesignRequest{
		Title:  "Corner setup",
		Canvas: json.RawMessage(`{"elements":[]}`),
		Image:  testPNGDataURL(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var design models.TrainingDesign
	decodeBody(t, resp, &design)
	require.NotEmpty(t, design.ImageFilename)

	resp = ta.request(t, fiber.MethodGet, "/api/designs/images/"+design.ImageFilename, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body := readBody(t, resp)
	require.True(t, len(body) > 8)
	require.Equal(t, byte(0x89), body[0])
}

func TestDesignImageRejectsBadPayload(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)

	resp := ta.request(t, fiber.MethodPost, "/api/designs", token, dto.CreateDesignRequest{
		Title: "Corner setup",
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a png")),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDesignImageServePathTraversal(t *testing.T) {
	ta := newTestApp(t)
	_, token := ta.seedUser(t, "coach@example.com", models.RoleCoach)

	for _, name := range []string{"..%2f..%2fetc%2fpasswd", "secrets.txt"} {
		resp := ta.request(t, fiber.MethodGet, "/api/designs/images/"+name, token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, name)
		resp.Body.Close()
	}
}
