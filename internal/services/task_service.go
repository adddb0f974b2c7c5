package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

// TaskFilter narrows library listings. Search matches title and description;
// result order is unspecified beyond recency.
type TaskFilter struct {
	Category string
	Search   string
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) Create(id authz.Identity, req *dto.CreateTaskRequest) (*models.Task, error) {
	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}

	task := models.Task{
		ID:              uuid.New(),
		OwnerID:         id.ID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Difficulty:      difficulty,
		DurationMinutes: req.DurationMinutes,
		Equipment:       req.Equipment,
		IsPublic:        req.IsPublic,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the caller's tasks plus public ones, optionally filtered by
// category and free-text search. Search uses Postgres full-text matching
// when available; other dialects get a per-word LIKE fallback that ANDs the
// query terms the way plainto_tsquery does. The fallback still matches
// inside words ("dive" hits "dives"), where the tsquery needs a full lexeme.
func (s *TaskService) List(id authz.Identity, filter TaskFilter) ([]models.Task, error) {
	q := s.db.Scopes(authz.VisibleTasks(id.ID))
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		if s.db.Dialector.Name() == "postgres" {
			q = q.Where(
				"to_tsvector('simple', title || ' ' || coalesce(description, '')) @@ plainto_tsquery('simple', ?)",
				search)
		} else {
			for _, word := range strings.Fields(strings.ToLower(search)) {
				pattern := "%" + word + "%"
				q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
			}
		}
	}

	var tasks []models.Task
	err := q.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) Get(id authz.Identity, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", taskID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &task, authz.OpRead); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(id authz.Identity, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", taskID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &task, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Difficulty != nil {
		task.Difficulty = *req.Difficulty
	}
	if req.DurationMinutes != nil {
		task.DurationMinutes = *req.DurationMinutes
	}
	if req.Equipment != nil {
		task.Equipment = *req.Equipment
	}
	if req.IsPublic != nil {
		task.IsPublic = *req.IsPublic
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Delete(id authz.Identity, taskID uuid.UUID) error {
	var task models.Task
	if err := s.db.First(&task, "id = ?", taskID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &task, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&task).Error
}
