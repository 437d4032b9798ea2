package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents one tracked system/credential bundle owned by a single user.
// Credential fields are stored exactly as received; masking is a response-shaping
// concern and never touches the stored values.
//
// Each has_X boolean gates the semantic meaning of its dependent fields. The write
// paths persist the dependent fields as NULL whenever the gate is false, so a
// false gate always implies empty dependents in storage.
type Project struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_projects_user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;autoCreateTime"`

	IsSaas         bool                        `json:"is_saas" db:"is_saas" gorm:"not null;default:false"`
	SystemTitle    string                      `json:"system_title" db:"system_title" gorm:"type:text;not null"`
	SystemLocation *string                     `json:"system_location,omitempty" db:"system_location" gorm:"type:text"`
	URLs           datatypes.JSONSlice[string] `json:"urls" db:"urls" gorm:"type:jsonb"`

	Email    *string `json:"email,omitempty" db:"email" gorm:"type:text"`
	Password *string `json:"password,omitempty" db:"password" gorm:"type:text"`

	WasReferred   bool    `json:"was_referred" db:"was_referred" gorm:"not null;default:false"`
	ReferralEmail *string `json:"referral_email,omitempty" db:"referral_email" gorm:"type:text"`
	ReferralLink  *string `json:"referral_link,omitempty" db:"referral_link" gorm:"type:text"`

	HasSupabase      bool    `json:"has_supabase" db:"has_supabase" gorm:"not null;default:false"`
	SupabaseEmail    *string `json:"supabase_email,omitempty" db:"supabase_email" gorm:"type:text"`
	SupabasePassword *string `json:"supabase_password,omitempty" db:"supabase_password" gorm:"type:text"`
	SupabaseProjeto  *string `json:"supabase_projeto,omitempty" db:"supabase_projeto" gorm:"type:text"`

	HasGithub      bool    `json:"has_github" db:"has_github" gorm:"not null;default:false"`
	GithubUsername *string `json:"github_username,omitempty" db:"github_username" gorm:"type:text"`
	GithubPassword *string `json:"github_password,omitempty" db:"github_password" gorm:"type:text"`
	GithubPage     *string `json:"github_page,omitempty" db:"github_page" gorm:"type:text"`
	GithubURL      *string `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`

	GeneralProgress int     `json:"general_progress" db:"general_progress" gorm:"not null;default:0"`
	Notes           *string `json:"notes,omitempty" db:"notes" gorm:"type:text"`

	Steps []ProjectStep `json:"steps,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
