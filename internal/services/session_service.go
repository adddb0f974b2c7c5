package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

// SessionFilter narrows session listings. Date bounds are inclusive
// YYYY-MM-DD strings, which order lexicographically.
type SessionFilter struct {
	TeamID   *uuid.UUID
	FromDate string
	ToDate   string
}

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) Create(id authz.Identity, req *dto.CreateSessionRequest) (*models.TrainingSession, error) {
	if req.TeamID != nil {
		if err := s.checkTeam(id, *req.TeamID); err != nil {
			return nil, err
		}
	}

	session := models.TrainingSession{
		ID:              uuid.New(),
		OwnerID:         id.ID,
		TeamID:          req.TeamID,
		Title:           req.Title,
		SessionDate:     req.SessionDate,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		FocusArea:       req.FocusArea,
		Notes:           req.Notes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) List(id authz.Identity, filter SessionFilter) ([]models.TrainingSession, error) {
	q := s.db.Scopes(authz.ForOwner(id.ID))
	if filter.TeamID != nil {
		q = q.Where("team_id = ?", *filter.TeamID)
	}
	if filter.FromDate != "" {
		q = q.Where("session_date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		q = q.Where("session_date <= ?", filter.ToDate)
	}

	var sessions []models.TrainingSession
	err := q.Order("session_date DESC, start_time DESC").Find(&sessions).Error
	return sessions, err
}

func (s *SessionService) Get(id authz.Identity, sessionID uuid.UUID) (*models.TrainingSession, error) {
	return s.load(id, sessionID, authz.OpRead)
}

func (s *SessionService) Update(id authz.Identity, sessionID uuid.UUID, req *dto.UpdateSessionRequest) (*models.TrainingSession, error) {
	session, err := s.load(id, sessionID, authz.OpWrite)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		if err := s.checkTeam(id, *req.TeamID); err != nil {
			return nil, err
		}
		session.TeamID = req.TeamID
	}
	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.SessionDate != nil {
		session.SessionDate = *req.SessionDate
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.FocusArea != nil {
		session.FocusArea = *req.FocusArea
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Delete soft-deletes the session and hard-deletes its child rows.
func (s *SessionService) Delete(id authz.Identity, sessionID uuid.UUID) error {
	session, err := s.load(id, sessionID, authz.OpWrite)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.SessionTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(session).Error
	})
}

// --- Session tasks (authorization runs against the parent session) ---

func (s *SessionService) ListTasks(id authz.Identity, sessionID uuid.UUID) ([]models.SessionTask, error) {
	if _, err := s.load(id, sessionID, authz.OpRead); err != nil {
		return nil, err
	}

	var tasks []models.SessionTask
	err := s.db.Where("session_id = ?", sessionID).
		Order("order_number ASC, created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (s *SessionService) AddTask(id authz.Identity, sessionID uuid.UUID, req *dto.CreateSessionTaskRequest) (*models.SessionTask, error) {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return nil, err
	}

	// A library reference must point at a task the caller may read.
	if req.TaskID != nil {
		var libTask models.Task
		if err := s.db.First(&libTask, "id = ?", *req.TaskID).Error; err != nil {
			return nil, ErrNotFound
		}
		if err := authz.Require(id, &libTask, authz.OpRead); err != nil {
			return nil, err
		}
	}

	task := models.SessionTask{
		ID:              uuid.New(),
		SessionID:       sessionID,
		TaskID:          req.TaskID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		OrderNumber:     req.OrderNumber,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *SessionService) UpdateTask(id authz.Identity, sessionID, taskID uuid.UUID, req *dto.UpdateSessionTaskRequest) (*models.SessionTask, error) {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return nil, err
	}

	var task models.SessionTask
	if err := s.db.First(&task, "id = ? AND session_id = ?", taskID, sessionID).Error; err != nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		task.DurationMinutes = *req.DurationMinutes
	}
	if req.OrderNumber != nil {
		task.OrderNumber = *req.OrderNumber
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *SessionService) DeleteTask(id authz.Identity, sessionID, taskID uuid.UUID) error {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return err
	}

	res := s.db.Where("id = ? AND session_id = ?", taskID, sessionID).Delete(&models.SessionTask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderTasks applies a full {id, order_number} batch in one transaction so
// readers never observe a partially renumbered sequence. Every id must
// belong to the session.
func (s *SessionService) ReorderTasks(id authz.Identity, sessionID uuid.UUID, items []dto.ReorderItem) error {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&models.SessionTask{}).
				Where("id = ? AND session_id = ?", item.ID, sessionID).
				Update("order_number", item.OrderNumber)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrTaskNotInSession
			}
		}
		return nil
	})
}

// --- Attendance ---

func (s *SessionService) ListAttendance(id authz.Identity, sessionID uuid.UUID) ([]models.Attendance, error) {
	if _, err := s.load(id, sessionID, authz.OpRead); err != nil {
		return nil, err
	}

	var rows []models.Attendance
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// SetAttendance registers the whole batch atomically: it replaces any prior
// rows for the listed goalkeepers and inserts the new ones, or does nothing
// at all. Every goalkeeper must belong to the caller.
func (s *SessionService) SetAttendance(id authz.Identity, sessionID uuid.UUID, entries []dto.AttendanceEntry) ([]models.Attendance, error) {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return nil, err
	}

	rows := make([]models.Attendance, 0, len(entries))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			var gk models.Goalkeeper
			if err := tx.First(&gk, "id = ?", entry.GoalkeeperID).Error; err != nil {
				return ErrNotFound
			}
			if err := authz.Require(id, &gk, authz.OpWrite); err != nil {
				return err
			}

			if err := tx.Where("session_id = ? AND goalkeeper_id = ?", sessionID, entry.GoalkeeperID).
				Delete(&models.Attendance{}).Error; err != nil {
				return err
			}

			row := models.Attendance{
				ID:           uuid.New(),
				SessionID:    sessionID,
				GoalkeeperID: entry.GoalkeeperID,
				Status:       entry.Status,
				Notes:        entry.Notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SessionService) DeleteAttendance(id authz.Identity, sessionID, attendanceID uuid.UUID) error {
	if _, err := s.load(id, sessionID, authz.OpWrite); err != nil {
		return err
	}

	res := s.db.Where("id = ? AND session_id = ?", attendanceID, sessionID).Delete(&models.Attendance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SessionService) load(id authz.Identity, sessionID uuid.UUID, op authz.Op) (*models.TrainingSession, error) {
	var session models.TrainingSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &session, op); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) checkTeam(id authz.Identity, teamID uuid.UUID) error {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return ErrNotFound
	}
	return authz.Require(id, &team, authz.OpWrite)
}
