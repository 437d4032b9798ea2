package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projetos-vault/backend/models"
)

func TestRevealStateKeysAreIndependent(t *testing.T) {
	state := newRevealState()
	user := uuid.New()
	projectA := uuid.New()
	projectB := uuid.New()

	assert.True(t, state.Toggle(user, projectA, "password"))

	assert.True(t, state.Visible(user, projectA, "password"))
	assert.False(t, state.Visible(user, projectB, "password"), "other project unaffected")
	assert.False(t, state.Visible(user, projectA, "supabase_password"), "other field unaffected")
	assert.False(t, state.Visible(uuid.New(), projectA, "password"), "other owner unaffected")

	assert.False(t, state.Toggle(user, projectA, "password"))
	assert.False(t, state.Visible(user, projectA, "password"))
}

func TestRevealStateForget(t *testing.T) {
	state := newRevealState()
	user := uuid.New()
	project := uuid.New()

	state.Toggle(user, project, "password")
	state.Toggle(user, project, "github_password")
	state.Forget(user, project)

	assert.False(t, state.Visible(user, project, "password"))
	assert.False(t, state.Visible(user, project, "github_password"))
}

func TestMaskSecret(t *testing.T) {
	secret := "hunter2"
	empty := ""

	assert.Nil(t, maskSecret(nil, false))
	assert.Equal(t, &empty, maskSecret(&empty, false))
	require.NotNil(t, maskSecret(&secret, false))
	assert.Equal(t, maskedValue, *maskSecret(&secret, false))
	assert.Equal(t, &secret, maskSecret(&secret, true))
}

func TestNewProjectViewMasksOnlySecretFields(t *testing.T) {
	password := "senha"
	supaPassword := "senha-supa"
	email := "a@example.com"
	project := &models.Project{
		ID:               uuid.New(),
		SystemTitle:      "Loja",
		Email:            &email,
		Password:         &password,
		HasSupabase:      true,
		SupabasePassword: &supaPassword,
	}

	view := newProjectView(project, neverReveal)

	assert.Equal(t, maskedValue, *view.Password)
	assert.Equal(t, maskedValue, *view.SupabasePassword)
	assert.Equal(t, "a@example.com", *view.Email, "email is not a secret")
	assert.Equal(t, "senha", *project.Password, "stored value untouched")
}
