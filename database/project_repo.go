package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projetos-vault/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllByUser returns every project owned by userID, newest first.
func (r *ProjectRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id when it is owned by userID.
// Absence and foreign ownership are indistinguishable: both return (nil, nil).
func (r *ProjectRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update rewrites every column of an existing project. Edit is a full-row
// overwrite, not a patch: blank optional fields are persisted as NULL.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project owned by userID. It reports whether a row was
// actually deleted so callers can distinguish a concurrent removal.
func (r *ProjectRepo) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Project{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
