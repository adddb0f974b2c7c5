package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type AnalysisFilter struct {
	GoalkeeperID *uuid.UUID
	FromDate     string
	ToDate       string
}

type AnalysisService struct {
	db *gorm.DB
}

func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

func (s *AnalysisService) Create(id authz.Identity, req *dto.CreateAnalysisRequest) (*models.MatchAnalysis, error) {
	if err := s.checkGoalkeeper(id, req.GoalkeeperID); err != nil {
		return nil, err
	}

	analysis := models.MatchAnalysis{
		ID:            uuid.New(),
		OwnerID:       id.ID,
		GoalkeeperID:  req.GoalkeeperID,
		MatchDate:     req.MatchDate,
		Opponent:      req.Opponent,
		Result:        req.Result,
		MinutesPlayed: req.MinutesPlayed,
		GoalsConceded: req.GoalsConceded,
		Saves:         req.Saves,
		Rating:        req.Rating,
		Notes:         req.Notes,
	}
	if err := s.db.Create(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *AnalysisService) List(id authz.Identity, filter AnalysisFilter) ([]models.MatchAnalysis, error) {
	q := s.db.Scopes(authz.ForOwner(id.ID))
	if filter.GoalkeeperID != nil {
		q = q.Where("goalkeeper_id = ?", *filter.GoalkeeperID)
	}
	if filter.FromDate != "" {
		q = q.Where("match_date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		q = q.Where("match_date <= ?", filter.ToDate)
	}

	var analyses []models.MatchAnalysis
	err := q.Order("match_date DESC").Find(&analyses).Error
	return analyses, err
}

func (s *AnalysisService) Get(id authz.Identity, analysisID uuid.UUID) (*models.MatchAnalysis, error) {
	var analysis models.MatchAnalysis
	if err := s.db.First(&analysis, "id = ?", analysisID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &analysis, authz.OpRead); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *AnalysisService) Update(id authz.Identity, analysisID uuid.UUID, req *dto.UpdateAnalysisRequest) (*models.MatchAnalysis, error) {
	var analysis models.MatchAnalysis
	if err := s.db.First(&analysis, "id = ?", analysisID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &analysis, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.MatchDate != nil {
		analysis.MatchDate = *req.MatchDate
	}
	if req.Opponent != nil {
		analysis.Opponent = *req.Opponent
	}
	if req.Result != nil {
		analysis.Result = *req.Result
	}
	if req.MinutesPlayed != nil {
		analysis.MinutesPlayed = *req.MinutesPlayed
	}
	if req.GoalsConceded != nil {
		analysis.GoalsConceded = *req.GoalsConceded
	}
	if req.Saves != nil {
		analysis.Saves = *req.Saves
	}
	if req.Rating != nil {
		analysis.Rating = *req.Rating
	}
	if req.Notes != nil {
		analysis.Notes = *req.Notes
	}

	if err := s.db.Save(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *AnalysisService) Delete(id authz.Identity, analysisID uuid.UUID) error {
	var analysis models.MatchAnalysis
	if err := s.db.First(&analysis, "id = ?", analysisID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &analysis, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&analysis).Error
}

func (s *AnalysisService) checkGoalkeeper(id authz.Identity, gkID uuid.UUID) error {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", gkID).Error; err != nil {
		return ErrNotFound
	}
	return authz.Require(id, &gk, authz.OpWrite)
}
