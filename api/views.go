package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/projetos-vault/backend/models"
)

// maskedValue is what a hidden credential renders as, regardless of its length.
const maskedValue = "••••••••"

// projectView is the response shape of one project row. It mirrors the stored
// columns except that credential fields are masked unless the caller has
// toggled them visible. Masking happens here only; storage keeps raw values.
type projectView struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	IsSaas         bool     `json:"is_saas"`
	SystemTitle    string   `json:"system_title"`
	SystemLocation *string  `json:"system_location,omitempty"`
	URLs           []string `json:"urls"`

	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`

	WasReferred   bool    `json:"was_referred"`
	ReferralEmail *string `json:"referral_email,omitempty"`
	ReferralLink  *string `json:"referral_link,omitempty"`

	HasSupabase      bool    `json:"has_supabase"`
	SupabaseEmail    *string `json:"supabase_email,omitempty"`
	SupabasePassword *string `json:"supabase_password,omitempty"`
	SupabaseProjeto  *string `json:"supabase_projeto,omitempty"`

	HasGithub      bool    `json:"has_github"`
	GithubUsername *string `json:"github_username,omitempty"`
	GithubPassword *string `json:"github_password,omitempty"`
	GithubPage     *string `json:"github_page,omitempty"`
	GithubURL      *string `json:"github_url,omitempty"`

	GeneralProgress int     `json:"general_progress"`
	Notes           *string `json:"notes,omitempty"`
}

// neverReveal keeps every credential field masked. Detail responses use it
// unconditionally; the list view's reveal toggles do not carry over.
func neverReveal(string) bool { return false }

// maskSecret hides a stored credential unless it is absent or toggled visible.
func maskSecret(value *string, visible bool) *string {
	if value == nil || *value == "" || visible {
		return value
	}
	masked := maskedValue
	return &masked
}

// newProjectView shapes one project row, asking visibleFor per credential field.
func newProjectView(project *models.Project, visibleFor func(field string) bool) projectView {
	return projectView{
		ID:        project.ID,
		CreatedAt: project.CreatedAt,

		IsSaas:         project.IsSaas,
		SystemTitle:    project.SystemTitle,
		SystemLocation: project.SystemLocation,
		URLs:           []string(project.URLs),

		Email:    project.Email,
		Password: maskSecret(project.Password, visibleFor("password")),

		WasReferred:   project.WasReferred,
		ReferralEmail: project.ReferralEmail,
		ReferralLink:  project.ReferralLink,

		HasSupabase:      project.HasSupabase,
		SupabaseEmail:    project.SupabaseEmail,
		SupabasePassword: maskSecret(project.SupabasePassword, visibleFor("supabase_password")),
		SupabaseProjeto:  project.SupabaseProjeto,

		HasGithub:      project.HasGithub,
		GithubUsername: project.GithubUsername,
		GithubPassword: maskSecret(project.GithubPassword, visibleFor("github_password")),
		GithubPage:     project.GithubPage,
		GithubURL:      project.GithubURL,

		GeneralProgress: project.GeneralProgress,
		Notes:           project.Notes,
	}
}
