package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/services"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Create(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	session, err := h.sessionService.Create(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := services.SessionFilter{
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
	}
	if raw := c.Query("team_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid team_id filter")
		}
		filter.TeamID = &parsed
	}

	sessions, err := h.sessionService.List(id, filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	session, err := h.sessionService.Get(id, sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) Update(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	session, err := h.sessionService.Update(id, sessionID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	if err := h.sessionService.Delete(id, sessionID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Session deleted"})
}

// --- Session tasks ---

func (h *SessionHandler) ListTasks(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	tasks, err := h.sessionService.ListTasks(id, sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tasks)
}

func (h *SessionHandler) AddTask(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	var req dto.CreateSessionTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	task, err := h.sessionService.AddTask(id, sessionID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *SessionHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return badRequest(c, "Invalid task id")
	}

	var req dto.UpdateSessionTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	task, err := h.sessionService.UpdateTask(id, sessionID, taskID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(task)
}

func (h *SessionHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return badRequest(c, "Invalid task id")
	}

	if err := h.sessionService.DeleteTask(id, sessionID, taskID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Task removed from session"})
}

func (h *SessionHandler) ReorderTasks(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	var req dto.ReorderTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	if err := h.sessionService.ReorderTasks(id, sessionID, req.Items); err != nil {
		return writeError(c, err)
	}

	tasks, err := h.sessionService.ListTasks(id, sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tasks)
}

// --- Attendance ---

func (h *SessionHandler) ListAttendance(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	rows, err := h.sessionService.ListAttendance(id, sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

func (h *SessionHandler) SetAttendance(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}

	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Check(&req); err != nil {
		return writeError(c, err)
	}

	rows, err := h.sessionService.SetAttendance(id, sessionID, req.Entries)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rows)
}

func (h *SessionHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	sessionID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid session id")
	}
	attendanceID, ok := parseID(c, "attendanceId")
	if !ok {
		return badRequest(c, "Invalid attendance id")
	}

	if err := h.sessionService.DeleteAttendance(id, sessionID, attendanceID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Attendance removed"})
}
