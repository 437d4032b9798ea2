package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStep is one entry of a project's optional progress breakdown. Steps are
// created in a single batch at project-creation time; OrderIndex records the
// position the step held in the submitted list.
type ProjectStep struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_steps_project_id;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;autoCreateTime"`

	StepName           string  `json:"step_name" db:"step_name" gorm:"type:text;not null"`
	StepDescription    *string `json:"step_description,omitempty" db:"step_description" gorm:"type:text"`
	ProgressPercentage int     `json:"progress_percentage" db:"progress_percentage" gorm:"not null;default:0"`
	OrderIndex         int     `json:"order_index" db:"order_index" gorm:"not null;default:0"`
}
