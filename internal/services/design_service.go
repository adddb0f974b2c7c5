package services

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type DesignService struct {
	db     *gorm.DB
	images *ImageStore
}

func NewDesignService(db *gorm.DB, images *ImageStore) *DesignService {
	return &DesignService{db: db, images: images}
}

func (s *DesignService) Create(id authz.Identity, req *dto.CreateDesignRequest) (*models.TrainingDesign, error) {
	design := models.TrainingDesign{
		ID:          uuid.New(),
		OwnerID:     id.ID,
		Title:       req.Title,
		Description: req.Description,
		Canvas:      datatypes.JSON("{}"),
	}
	if len(req.Canvas) > 0 {
		design.Canvas = datatypes.JSON(req.Canvas)
	}

	if req.Image != "" {
		filename, err := s.images.SavePNG(req.Image)
		if err != nil {
			return nil, err
		}
		design.ImageFilename = filename
	}

	if err := s.db.Create(&design).Error; err != nil {
		if design.ImageFilename != "" {
			s.images.Remove(design.ImageFilename)
		}
		return nil, err
	}
	return &design, nil
}

func (s *DesignService) List(id authz.Identity) ([]models.TrainingDesign, error) {
	var designs []models.TrainingDesign
	err := s.db.Scopes(authz.ForOwner(id.ID)).
		Order("updated_at DESC").
		Find(&designs).Error
	return designs, err
}

func (s *DesignService) Get(id authz.Identity, designID uuid.UUID) (*models.TrainingDesign, error) {
	var design models.TrainingDesign
	if err := s.db.First(&design, "id = ?", designID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &design, authz.OpRead); err != nil {
		return nil, err
	}
	return &design, nil
}

func (s *DesignService) Update(id authz.Identity, designID uuid.UUID, req *dto.UpdateDesignRequest) (*models.TrainingDesign, error) {
	var design models.TrainingDesign
	if err := s.db.First(&design, "id = ?", designID).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := authz.Require(id, &design, authz.OpWrite); err != nil {
		return nil, err
	}

	if req.Title != nil {
		design.Title = *req.Title
	}
	if req.Description != nil {
		design.Description = *req.Description
	}
	if len(req.Canvas) > 0 {
		design.Canvas = datatypes.JSON(req.Canvas)
	}

	if req.Image != nil && *req.Image != "" {
		filename, err := s.images.SavePNG(*req.Image)
		if err != nil {
			return nil, err
		}
		if design.ImageFilename != "" {
			s.images.Remove(design.ImageFilename)
		}
		design.ImageFilename = filename
	}

	if err := s.db.Save(&design).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

// Delete soft-deletes the row. The rendered image stays on disk while the
// row is recoverable.
func (s *DesignService) Delete(id authz.Identity, designID uuid.UUID) error {
	var design models.TrainingDesign
	if err := s.db.First(&design, "id = ?", designID).Error; err != nil {
		return ErrNotFound
	}
	if err := authz.Require(id, &design, authz.OpWrite); err != nil {
		return err
	}
	return s.db.Delete(&design).Error
}

// ImagePath resolves a stored diagram image for serving.
func (s *DesignService) ImagePath(filename string) (string, error) {
	return s.images.Path(filename)
}
