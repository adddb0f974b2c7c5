package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type PenaltyService struct {
	db *gorm.DB
}

func NewPenaltyService(db *gorm.DB) *PenaltyService {
	return &PenaltyService{db: db}
}

func (s *PenaltyService) Create(id authz.Identity, req *dto.CreatePenaltyRequest) (*models.Penalty, error) {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", req.GoalkeeperID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpWrite); err != nil {
		return nil, err
	}

	penalty := models.Penalty{
		ID:           uuid.New(),
		OwnerID:      id.ID,
		GoalkeeperID: req.GoalkeeperID,
		MatchDate:    req.MatchDate,
		Opponent:     req.Opponent,
		Direction:    req.Direction,
		Height:       req.Height,
		Outcome:      req.Outcome,
		Notes:        req.Notes,
	}
	if err := s.db.Create(&penalty).Error; err != nil {
		return nil, err
	}
	return &penalty, nil
}

func (s *PenaltyService) List(id authz.Identity, goalkeeperID *uuid.UUID) ([]models.Penalty, error) {
	q := s.db.Scopes(authz.ForOwner(id.ID))
	if goalkeeperID != nil {
		q = q.Where("goalkeeper_id = ?", *goalkeeperID)
	}

	var penalties []models.Penalty
	err := q.Order("created_at DESC").Find(&penalties).Error
	return penalties, err
}

func (s *PenaltyService) Delete(id authz.Identity, penaltyID uuid.UUID) error {
	var penalty models.Penalty
	if err := s.db.First(&penalty, "id = ?", penaltyID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &penalty, authz.OpWrite); err != nil {
		return err
	}
	// Penalties are event records; deletion is hard.
	return s.db.Delete(&penalty).Error
}

// Summary aggregates one goalkeeper's penalty record. The save rate counts
// only kicks on target (saved or scored).
func (s *PenaltyService) Summary(id authz.Identity, goalkeeperID uuid.UUID) (*dto.PenaltySummary, error) {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", goalkeeperID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpRead); err != nil {
		return nil, err
	}

	var penalties []models.Penalty
	if err := s.db.Where("goalkeeper_id = ?", goalkeeperID).Find(&penalties).Error; err != nil {
		return nil, err
	}

	summary := &dto.PenaltySummary{
		GoalkeeperID: goalkeeperID,
		ByDirection:  map[string]int64{},
		ByOutcome:    map[string]int64{},
	}
	for _, p := range penalties {
		summary.Total++
		summary.ByDirection[p.Direction]++
		summary.ByOutcome[p.Outcome]++
		switch p.Outcome {
		case models.PenaltyOutcomeSaved:
			summary.Saved++
		case models.PenaltyOutcomeGoal:
			summary.Conceded++
		}
	}
	if onTarget := summary.Saved + summary.Conceded; onTarget > 0 {
		summary.SaveRate = float64(summary.Saved) / float64(onTarget)
	}
	return summary, nil
}
