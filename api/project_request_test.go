package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projetos-vault/backend/errs"
)

func TestNormalizeURLs(t *testing.T) {
	got := normalizeURLs([]string{" https://a.com ", "", "   ", " https://b.com "})
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, got)

	assert.Empty(t, normalizeURLs(nil))
	assert.Empty(t, normalizeURLs([]string{"", "  "}))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	assert.Nil(t, optional("   "))
	require.NotNil(t, optional("x"))
	assert.Equal(t, "x", *optional("x"))
}

func TestToModelNullsGatedFields(t *testing.T) {
	payload := projectPayload{
		SystemTitle:      "Loja",
		HasSupabase:      false,
		SupabaseEmail:    "typed@example.com",
		SupabasePassword: "hunter2",
		SupabaseProjeto:  "vault",
		HasGithub:        false,
		GithubUsername:   "someone",
		WasReferred:      false,
		ReferralEmail:    "friend@example.com",
		ReferralLink:     "https://ref.example.com",
	}

	project := payload.toModel(uuid.New())

	assert.Nil(t, project.SupabaseEmail)
	assert.Nil(t, project.SupabasePassword)
	assert.Nil(t, project.SupabaseProjeto)
	assert.Nil(t, project.GithubUsername)
	assert.Nil(t, project.ReferralEmail)
	assert.Nil(t, project.ReferralLink)
}

func TestToModelKeepsFieldsBehindOpenGates(t *testing.T) {
	payload := projectPayload{
		SystemTitle:      "Loja",
		HasSupabase:      true,
		SupabaseEmail:    "supa@example.com",
		SupabasePassword: "hunter2",
		HasGithub:        true,
		GithubUsername:   "someone",
		GithubPage:       "someone.github.io",
	}

	project := payload.toModel(uuid.New())

	assert.True(t, project.HasSupabase)
	require.NotNil(t, project.SupabaseEmail)
	assert.Equal(t, "supa@example.com", *project.SupabaseEmail)
	require.NotNil(t, project.GithubPage)
	assert.Equal(t, "someone.github.io", *project.GithubPage)
}

func TestBuildStepsDropsEmptyNamesAndIndexesSurvivors(t *testing.T) {
	projectID := uuid.New()
	steps := buildSteps(projectID, []stepPayload{
		{StepName: "Design", ProgressPercentage: 50},
		{StepName: "", ProgressPercentage: 10},
		{StepName: "  ", ProgressPercentage: 20},
		{StepName: "Deploy", ProgressPercentage: 0},
	})

	require.Len(t, steps, 2)
	assert.Equal(t, "Design", steps[0].StepName)
	assert.Equal(t, 0, steps[0].OrderIndex)
	assert.Equal(t, "Deploy", steps[1].StepName)
	assert.Equal(t, 1, steps[1].OrderIndex)
	for _, step := range steps {
		assert.Equal(t, projectID, step.ProjectID)
		assert.NotEqual(t, uuid.Nil, step.ID)
	}
}

func TestValidateFlagsFieldByWireName(t *testing.T) {
	validate := newValidate()

	cases := []struct {
		name    string
		payload projectPayload
		field   string
	}{
		{"missing title", projectPayload{}, "system_title"},
		{"bad email", projectPayload{SystemTitle: "x", Email: "nope"}, "email"},
		{"bad referral email", projectPayload{SystemTitle: "x", ReferralEmail: "nope"}, "referral_email"},
		{"bad referral link", projectPayload{SystemTitle: "x", ReferralLink: "not a url"}, "referral_link"},
		{"progress out of range", projectPayload{SystemTitle: "x", GeneralProgress: 101}, "general_progress"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.payload)
			require.Error(t, err)

			apiErr, ok := validationError(err).(*errs.ApiErr)
			require.True(t, ok)
			assert.Equal(t, tc.field, apiErr.Field)
			assert.Equal(t, 400, apiErr.StatusCode)
		})
	}

	assert.NoError(t, validate.Struct(projectPayload{SystemTitle: "x", Email: "ok@example.com"}))
}
