package api

import (
	"net/url"
	"strconv"

	"github.com/projetos-vault/backend/models"
)

// projectFilter mirrors the dashboard's three list filters. Each dimension is
// an independent equality predicate; empty or "all" means no constraint.
type projectFilter struct {
	Location string
	SaasFlag string
	Email    string
}

func parseProjectFilter(query url.Values) projectFilter {
	return projectFilter{
		Location: query.Get("location"),
		SaasFlag: query.Get("is_saas"),
		Email:    query.Get("email"),
	}
}

func constrains(value string) bool {
	return value != "" && value != "all"
}

func (f projectFilter) matches(p *models.Project) bool {
	if constrains(f.Location) {
		if p.SystemLocation == nil || *p.SystemLocation != f.Location {
			return false
		}
	}
	if constrains(f.SaasFlag) {
		if strconv.FormatBool(p.IsSaas) != f.SaasFlag {
			return false
		}
	}
	if constrains(f.Email) {
		if p.Email == nil || *p.Email != f.Email {
			return false
		}
	}
	return true
}

// filterProjects derives the visible list from the fetched one. The source
// slice is never mutated and the relative order of survivors is preserved.
func filterProjects(projects []*models.Project, f projectFilter) []*models.Project {
	filtered := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
