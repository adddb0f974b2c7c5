package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) Create(id authz.Identity, req *dto.CreateTeamRequest) (*models.Team, error) {
	team := models.Team{
		ID:       uuid.New(),
		OwnerID:  id.ID,
		Name:     req.Name,
		Club:     req.Club,
		AgeGroup: req.AgeGroup,
		Season:   req.Season,
		Notes:    req.Notes,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) List(id authz.Identity) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Scopes(authz.ForOwner(id.ID)).
		Order("created_at DESC").
		Find(&teams).Error
	return teams, err
}

func (s *TeamService) Get(id authz.Identity, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &team, authz.OpRead); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) Update(id authz.Identity, teamID uuid.UUID, req *dto.UpdateTeamRequest) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &team, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Club != nil {
		team.Club = *req.Club
	}
	if req.AgeGroup != nil {
		team.AgeGroup = *req.AgeGroup
	}
	if req.Season != nil {
		team.Season = *req.Season
	}
	if req.Notes != nil {
		team.Notes = *req.Notes
	}

	if err := s.db.Save(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Delete is a soft delete: sessions and statistics may still reference the
// team historically.
func (s *TeamService) Delete(id authz.Identity, teamID uuid.UUID) error {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &team, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&team).Error
}
