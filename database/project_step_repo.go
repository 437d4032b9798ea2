package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetos-vault/backend/models"
)

type ProjectStepRepo struct {
	db *gorm.DB
}

func NewProjectStepRepo(db *gorm.DB) *ProjectStepRepo {
	return &ProjectStepRepo{db}
}

// FindByProjectID returns all steps of one project in their submitted order.
func (r *ProjectStepRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectStep, error) {
	var steps []*models.ProjectStep
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&steps).Error
	return steps, err
}

// Add inserts a new project step into the database
func (r *ProjectStepRepo) Add(ctx context.Context, step *models.ProjectStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}
