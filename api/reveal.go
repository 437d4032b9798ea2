package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/projetos-vault/backend/models"
)

// secretFields maps each revealable credential field to its value on a project.
// Only these fields can be toggled visible in the list view.
var secretFields = map[string]func(*models.Project) *string{
	"password":          func(p *models.Project) *string { return p.Password },
	"supabase_password": func(p *models.Project) *string { return p.SupabasePassword },
	"github_password":   func(p *models.Project) *string { return p.GithubPassword },
}

type revealKey struct {
	userID    uuid.UUID
	projectID uuid.UUID
	field     string
}

// revealState tracks which credential fields an owner has toggled visible in
// the list view. State is keyed (owner, project, field), so toggling one field
// never touches the visibility of any other field or project.
type revealState struct {
	mu      sync.RWMutex
	visible map[revealKey]bool
}

func newRevealState() *revealState {
	return &revealState{visible: make(map[revealKey]bool)}
}

// Toggle flips visibility for one key and returns the new state.
func (s *revealState) Toggle(userID, projectID uuid.UUID, field string) bool {
	key := revealKey{userID, projectID, field}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visible[key] {
		delete(s.visible, key)
		return false
	}
	s.visible[key] = true
	return true
}

func (s *revealState) Visible(userID, projectID uuid.UUID, field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[revealKey{userID, projectID, field}]
}

// Forget drops all reveal state of one project after its row is deleted.
func (s *revealState) Forget(userID, projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for field := range secretFields {
		delete(s.visible, revealKey{userID, projectID, field})
	}
}
