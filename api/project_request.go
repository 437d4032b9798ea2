package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/projetos-vault/backend/errs"
	"github.com/projetos-vault/backend/models"
)

// projectPayload carries the full field set of a project form submission.
// Create and edit share it: edit is a total overwrite, so both paths submit
// every field every time.
type projectPayload struct {
	IsSaas         bool     `json:"is_saas"`
	SystemTitle    string   `json:"system_title" validate:"required"`
	SystemLocation string   `json:"system_location"`
	URLs           []string `json:"urls"`

	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`

	WasReferred   bool   `json:"was_referred"`
	ReferralEmail string `json:"referral_email" validate:"omitempty,email"`
	ReferralLink  string `json:"referral_link" validate:"omitempty,url"`

	HasSupabase      bool   `json:"has_supabase"`
	SupabaseEmail    string `json:"supabase_email" validate:"omitempty,email"`
	SupabasePassword string `json:"supabase_password"`
	SupabaseProjeto  string `json:"supabase_projeto"`

	HasGithub      bool   `json:"has_github"`
	GithubUsername string `json:"github_username"`
	GithubPassword string `json:"github_password"`
	GithubPage     string `json:"github_page"`
	GithubURL      string `json:"github_url"`

	GeneralProgress int    `json:"general_progress" validate:"gte=0,lte=100"`
	Notes           string `json:"notes"`
}

type stepPayload struct {
	StepName           string `json:"step_name"`
	StepDescription    string `json:"step_description"`
	ProgressPercentage int    `json:"progress_percentage" validate:"gte=0,lte=100"`
}

type createProjectRequest struct {
	projectPayload
	Steps []stepPayload `json:"steps" validate:"dive"`
}

// newValidate builds the request validator with json tag names so field-level
// errors reference the wire name the client submitted.
func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// validationError converts the first validator failure into a field-level ApiErr.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errs.NewBadRequestError("invalid request body")
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return errs.NewMissingFieldError(fe.Field())
	case "email":
		return errs.NewValidationError(fe.Field(), "must be a valid email address")
	case "url":
		return errs.NewValidationError(fe.Field(), "must be a valid URL")
	case "gte", "lte":
		return errs.NewValidationError(fe.Field(), "must be between 0 and 100")
	default:
		return errs.NewValidationError(fe.Field(), "invalid value")
	}
}

// normalizeURLs trims every entry and drops the blanks, preserving order.
func normalizeURLs(raw []string) []string {
	urls := make([]string, 0, len(raw))
	for _, u := range raw {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

// optional converts a form value to its stored representation: NULL when blank.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// toModel builds the row exactly as it will be persisted. Dependent fields of
// a false gate are written as NULL even when the client sent values for them,
// on create and edit alike.
func (p projectPayload) toModel(userID uuid.UUID) models.Project {
	project := models.Project{
		UserID:          userID,
		IsSaas:          p.IsSaas,
		SystemTitle:     p.SystemTitle,
		SystemLocation:  optional(p.SystemLocation),
		URLs:            datatypes.NewJSONSlice(normalizeURLs(p.URLs)),
		Email:           optional(p.Email),
		Password:        optional(p.Password),
		WasReferred:     p.WasReferred,
		GeneralProgress: p.GeneralProgress,
		Notes:           optional(p.Notes),
	}

	if p.WasReferred {
		project.ReferralEmail = optional(p.ReferralEmail)
		project.ReferralLink = optional(p.ReferralLink)
	}

	if p.HasSupabase {
		project.HasSupabase = true
		project.SupabaseEmail = optional(p.SupabaseEmail)
		project.SupabasePassword = optional(p.SupabasePassword)
		project.SupabaseProjeto = optional(p.SupabaseProjeto)
	}

	if p.HasGithub {
		project.HasGithub = true
		project.GithubUsername = optional(p.GithubUsername)
		project.GithubPassword = optional(p.GithubPassword)
		project.GithubPage = optional(p.GithubPage)
		project.GithubURL = optional(p.GithubURL)
	}

	return project
}

// buildSteps keeps only steps with a non-empty name and assigns each survivor
// its position in the kept sequence as order_index.
func buildSteps(projectID uuid.UUID, payloads []stepPayload) []models.ProjectStep {
	steps := make([]models.ProjectStep, 0, len(payloads))
	for _, s := range payloads {
		name := strings.TrimSpace(s.StepName)
		if name == "" {
			continue
		}
		steps = append(steps, models.ProjectStep{
			ID:                 uuid.New(),
			ProjectID:          projectID,
			StepName:           name,
			StepDescription:    optional(s.StepDescription),
			ProgressPercentage: s.ProgressPercentage,
			OrderIndex:         len(steps),
		})
	}
	return steps
}
