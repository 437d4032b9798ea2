package database

import (
	"gorm.io/gorm"

	"github.com/projetos-vault/backend/models"
)

type Database struct {
	projectRepo     *ProjectRepo
	projectStepRepo *ProjectStepRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewProjectRepo(db),
		projectStepRepo: NewProjectStepRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectStepRepo() *ProjectStepRepo {
	return d.projectStepRepo
}

// Migrate brings the schema up to date for every model this service owns.
func (d Database) Migrate() error {
	return d.projectRepo.db.AutoMigrate(
		&models.Project{},
		&models.ProjectStep{},
	)
}
