package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
	"github.com/keeperbase/keeperbase/internal/validation"
)

type StatisticFilter struct {
	GoalkeeperID *uuid.UUID
	Season       string
}

type StatisticService struct {
	db *gorm.DB
}

func NewStatisticService(db *gorm.DB) *StatisticService {
	return &StatisticService{db: db}
}

// Create relies on the (goalkeeper_id, season) unique index for duplicate
// detection: the insert either wins or maps to a conflict, with no window
// between an existence check and the write.
func (s *StatisticService) Create(id authz.Identity, req *dto.CreateStatisticRequest) (*models.Statistic, error) {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", req.GoalkeeperID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpWrite); err != nil {
		return nil, err
	}

	stat := models.Statistic{
		ID:             uuid.New(),
		OwnerID:        id.ID,
		GoalkeeperID:   req.GoalkeeperID,
		Season:         req.Season,
		MatchesPlayed:  req.MatchesPlayed,
		CleanSheets:    req.CleanSheets,
		GoalsConceded:  req.GoalsConceded,
		Saves:          req.Saves,
		PenaltiesFaced: req.PenaltiesFaced,
		PenaltiesSaved: req.PenaltiesSaved,
		MinutesPlayed:  req.MinutesPlayed,
	}
	if err := s.db.Create(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSeason
		}
		return nil, err
	}
	return &stat, nil
}

func (s *StatisticService) List(id authz.Identity, filter StatisticFilter) ([]models.Statistic, error) {
	q := s.db.Scopes(authz.ForOwner(id.ID))
	if filter.GoalkeeperID != nil {
		q = q.Where("goalkeeper_id = ?", *filter.GoalkeeperID)
	}
	if filter.Season != "" {
		q = q.Where("season = ?", filter.Season)
	}

	var stats []models.Statistic
	err := q.Order("season DESC").Find(&stats).Error
	return stats, err
}

func (s *StatisticService) Get(id authz.Identity, statID uuid.UUID) (*models.Statistic, error) {
	var stat models.Statistic
	if err := s.db.First(&stat, "id = ?", statID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &stat, authz.OpRead); err != nil {
		return nil, err
	}
	return &stat, nil
}

// Update merges the payload into the stored row and re-checks the season
// invariants against the merged values, so a partial update can never leave
// clean_sheets above matches_played or penalties_saved above faced.
func (s *StatisticService) Update(id authz.Identity, statID uuid.UUID, req *dto.UpdateStatisticRequest) (*models.Statistic, error) {
	var stat models.Statistic
	if err := s.db.First(&stat, "id = ?", statID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &stat, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.MatchesPlayed != nil {
		stat.MatchesPlayed = *req.MatchesPlayed
	}
	if req.CleanSheets != nil {
		stat.CleanSheets = *req.CleanSheets
	}
	if req.GoalsConceded != nil {
		stat.GoalsConceded = *req.GoalsConceded
	}
	if req.Saves != nil {
		stat.Saves = *req.Saves
	}
	if req.PenaltiesFaced != nil {
		stat.PenaltiesFaced = *req.PenaltiesFaced
	}
	if req.PenaltiesSaved != nil {
		stat.PenaltiesSaved = *req.PenaltiesSaved
	}
	if req.MinutesPlayed != nil {
		stat.MinutesPlayed = *req.MinutesPlayed
	}

	if err := validation.StatisticInvariants(stat.MatchesPlayed, stat.CleanSheets,
		stat.PenaltiesFaced, stat.PenaltiesSaved); err != nil {
		return nil, err
	}

	if err := s.db.Save(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (s *StatisticService) Delete(id authz.Identity, statID uuid.UUID) error {
	var stat models.Statistic
	if err := s.db.First(&stat, "id = ?", statID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &stat, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&stat).Error
}
