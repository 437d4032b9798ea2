package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/projetos-vault/backend/errs"
	"github.com/projetos-vault/backend/models"
)

// projectStore is the subset of database.ProjectRepo the handler depends on.
type projectStore interface {
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// projectStepStore is the subset of database.ProjectStepRepo the handler depends on.
type projectStepStore interface {
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectStep, error)
	Add(ctx context.Context, step *models.ProjectStep) error
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	projectRepo projectStore
	stepRepo    projectStepStore
	reveals     *revealState
}

func newProjectHandler(projectRepo projectStore, stepRepo projectStepStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    newValidate(),
		projectRepo: projectRepo,
		stepRepo:    stepRepo,
		reveals:     newRevealState(),
	}
}

// projectCollection represents the filtered list view
type projectCollection struct {
	Projects []projectView `json:"projects"`
	Total    int           `json:"total"`
}

// createProjectResponse reports the created project together with the outcome
// of the dependent step writes, so partial success is visible to the client.
type createProjectResponse struct {
	Project     projectView `json:"project"`
	StepsSaved  int         `json:"steps_saved"`
	StepsFailed int         `json:"steps_failed"`
}

type stepCollection struct {
	Steps []*models.ProjectStep `json:"steps"`
	Total int                   `json:"total"`
}

type revealResponse struct {
	Field    string  `json:"field"`
	Revealed bool    `json:"revealed"`
	Value    *string `json:"value,omitempty"`
}

// listView shapes one row for the list, honoring the owner's reveal toggles.
func (h projectHandler) listView(userID uuid.UUID, project *models.Project) projectView {
	return newProjectView(project, func(field string) bool {
		return h.reveals.Visible(userID, project.ID, field)
	})
}

// listProjects retrieves the caller's projects, newest first, optionally
// narrowed by the location / is_saas / email equality filters
// @Summary List projects
// @Description Retrieves the caller's projects ordered by creation time descending, with optional equality filters
// @Tags Projects
// @Accept json
// @Produce json
// @Param location query string false "Exact system_location match, empty or 'all' for no constraint"
// @Param is_saas query string false "true/false, empty or 'all' for no constraint"
// @Param email query string false "Exact email match, empty or 'all' for no constraint"
// @Success 200 {object} projectCollection "Filtered list of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projects, err := h.projectRepo.FindAllByUser(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		visible := filterProjects(projects, parseProjectFilter(r.URL.Query()))

		views := make([]projectView, 0, len(visible))
		for _, project := range visible {
			views = append(views, h.listView(userID, project))
		}

		h.responder.WriteJSON(w, projectCollection{Projects: views, Total: len(views)})
	}
}

// getProject retrieves one project for the detail dialog. Credentials are
// always masked here, independent of any list-view reveal toggles
// @Summary Get project
// @Description Retrieves one project by ID with every credential field masked
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} projectView "Project details, credentials masked"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), userID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, newProjectView(project, neverReveal))
	}
}

// listProjectSteps retrieves one project's progress steps in submitted order
// @Summary List project steps
// @Description Retrieves the steps of one project ordered by order_index
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} stepCollection "Steps in order"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/steps [get]
func (h projectHandler) listProjectSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), userID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		steps, err := h.stepRepo.FindByProjectID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project steps", err))
			return
		}

		h.responder.WriteJSON(w, stepCollection{Steps: steps, Total: len(steps)})
	}
}

// createProject creates a new project and its optional progress steps
// @Summary Create project
// @Description Creates a project row, then batch-inserts its steps; step failures do not roll back the project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body createProjectRequest true "Project data with optional steps"
// @Success 201 {object} createProjectResponse "Created project with step write outcome"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var request createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(request); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		project := request.projectPayload.toModel(userID)
		project.ID = uuid.New()

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// The project row is committed at this point. Step failures must not
		// undo it; they are logged and reported as a partial result instead.
		saved, failed := 0, 0
		for _, step := range buildSteps(project.ID, request.Steps) {
			if err := h.stepRepo.Add(r.Context(), &step); err != nil {
				h.logger.Error().Err(err).Str("stepName", step.StepName).Msg("Failed to create project step")
				failed++
				continue
			}
			saved++
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, createProjectResponse{
			Project:     newProjectView(&project, neverReveal),
			StepsSaved:  saved,
			StepsFailed: failed,
		})
	}
}

// updateProject rewrites every field of an existing project
// @Summary Update project
// @Description Performs a full-field overwrite of one project; blank optional fields are stored as NULL
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectPayload true "Complete replacement field set"
// @Success 200 {object} projectView "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(r.Context(), userID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		// Total overwrite: every column is rewritten from the payload. Only
		// identity and creation time survive from the stored row.
		project := payload.toModel(userID)
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt

		if err := h.projectRepo.Update(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, h.listView(userID, &project))
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes one project; steps are removed by the schema-level cascade
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project already removed"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		deleted, err := h.projectRepo.Delete(r.Context(), userID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			// Concurrent removal: surface it, the client re-fetches on its own
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.reveals.Forget(userID, projectID)

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// toggleReveal flips the visibility of one credential field on one project
// @Summary Toggle credential visibility
// @Description Toggles the caller's reveal state for one credential field; returns the plaintext value while revealed
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param field path string true "Credential field name" Enums(password, supabase_password, github_password)
// @Success 200 {object} revealResponse "New visibility state"
// @Failure 400 {object} ErrorResponse "Bad Request - Not a revealable field"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/reveal/{field} [post]
func (h projectHandler) toggleReveal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		field := chi.URLParam(r, "field")
		secret, ok := secretFields[field]
		if !ok {
			h.responder.WriteError(w, errs.NewValidationError("field", "not a revealable credential field"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), userID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		response := revealResponse{
			Field:    field,
			Revealed: h.reveals.Toggle(userID, projectID, field),
		}
		if response.Revealed {
			response.Value = secret(project)
		}

		h.responder.WriteJSON(w, response)
	}
}
