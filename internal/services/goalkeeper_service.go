package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type GoalkeeperService struct {
	db *gorm.DB
}

func NewGoalkeeperService(db *gorm.DB) *GoalkeeperService {
	return &GoalkeeperService{db: db}
}

func (s *GoalkeeperService) Create(id authz.Identity, req *dto.CreateGoalkeeperRequest) (*models.Goalkeeper, error) {
	if req.TeamID != nil {
		if err := s.checkTeam(id, *req.TeamID); err != nil {
			return nil, err
		}
	}

	gk := models.Goalkeeper{
		ID:           uuid.New(),
		OwnerID:      id.ID,
		TeamID:       req.TeamID,
		Name:         req.Name,
		BirthDate:    req.BirthDate,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		DominantHand: req.DominantHand,
		JerseyNumber: req.JerseyNumber,
		Notes:        req.Notes,
	}
	if err := s.db.Create(&gk).Error; err != nil {
		return nil, err
	}
	return &gk, nil
}

func (s *GoalkeeperService) List(id authz.Identity, teamID *uuid.UUID) ([]models.Goalkeeper, error) {
	q := s.db.Scopes(authz.ForOwner(id.ID))
	if teamID != nil {
		q = q.Where("team_id = ?", *teamID)
	}

	var keepers []models.Goalkeeper
	err := q.Order("name ASC").Find(&keepers).Error
	return keepers, err
}

func (s *GoalkeeperService) Get(id authz.Identity, gkID uuid.UUID) (*models.Goalkeeper, error) {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", gkID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpRead); err != nil {
		return nil, err
	}
	return &gk, nil
}

func (s *GoalkeeperService) Update(id authz.Identity, gkID uuid.UUID, req *dto.UpdateGoalkeeperRequest) (*models.Goalkeeper, error) {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", gkID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		if err := s.checkTeam(id, *req.TeamID); err != nil {
			return nil, err
		}
		gk.TeamID = req.TeamID
	}
	if req.Name != nil {
		gk.Name = *req.Name
	}
	if req.BirthDate != nil {
		gk.BirthDate = *req.BirthDate
	}
	if req.HeightCm != nil {
		gk.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		gk.WeightKg = *req.WeightKg
	}
	if req.DominantHand != nil {
		gk.DominantHand = *req.DominantHand
	}
	if req.JerseyNumber != nil {
		gk.JerseyNumber = *req.JerseyNumber
	}
	if req.Notes != nil {
		gk.Notes = *req.Notes
	}

	if err := s.db.Save(&gk).Error; err != nil {
		return nil, err
	}
	return &gk, nil
}

func (s *GoalkeeperService) Delete(id authz.Identity, gkID uuid.UUID) error {
	var gk models.Goalkeeper
	if err := s.db.First(&gk, "id = ?", gkID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &gk, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&gk).Error
}

// checkTeam verifies a referenced team exists and belongs to the caller.
func (s *GoalkeeperService) checkTeam(id authz.Identity, teamID uuid.UUID) error {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return ErrNotFound
	}
	return authz.Require(id, &team, authz.OpWrite)
}
