// Package filter derives the user-visible subset of a loaded collection.
// Pure functions, no I/O: callers re-run them on every search keystroke or
// filter change. Predicates are conjunctive and never re-sort, so the
// store's newest-first order survives filtering.
package filter

import (
	"strings"

	"jobtrack-engine/internal/domain"
)

// All is the sentinel for a categorical filter with no constraint. The
// zero value behaves the same way.
const All = "all"

func active(v string) bool { return v != "" && v != All }

type CompanyFilters struct {
	Search   string
	Status   string
	Priority string
	Size     string
}

type JobFilters struct {
	Search  string
	Status  string
	JobType string
	Source  string
}

// Companies keeps entries matching every set constraint. Search is a
// case-insensitive substring match over company name and industry;
// categorical filters compare the enum literal exactly.
func Companies(list []domain.Company, f CompanyFilters) []domain.Company {
	out := list
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		out = keepCompanies(out, func(c domain.Company) bool {
			return strings.Contains(strings.ToLower(c.CompanyName), q) ||
				strings.Contains(strings.ToLower(c.Industry), q)
		})
	}
	if active(f.Status) {
		out = keepCompanies(out, func(c domain.Company) bool { return c.Status == f.Status })
	}
	if active(f.Priority) {
		out = keepCompanies(out, func(c domain.Company) bool { return c.Priority == f.Priority })
	}
	if active(f.Size) {
		out = keepCompanies(out, func(c domain.Company) bool { return c.CompanySize == f.Size })
	}
	return out
}

// Jobs mirrors Companies; search covers company and position.
func Jobs(list []domain.Job, f JobFilters) []domain.Job {
	out := list
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		out = keepJobs(out, func(j domain.Job) bool {
			return strings.Contains(strings.ToLower(j.Company), q) ||
				strings.Contains(strings.ToLower(j.Position), q)
		})
	}
	if active(f.Status) {
		out = keepJobs(out, func(j domain.Job) bool { return j.Status == f.Status })
	}
	if active(f.JobType) {
		out = keepJobs(out, func(j domain.Job) bool { return j.JobType == f.JobType })
	}
	if active(f.Source) {
		out = keepJobs(out, func(j domain.Job) bool { return j.ApplicationSource == f.Source })
	}
	return out
}

func keepCompanies(in []domain.Company, pred func(domain.Company) bool) []domain.Company {
	out := make([]domain.Company, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func keepJobs(in []domain.Job, pred func(domain.Job) bool) []domain.Job {
	out := make([]domain.Job, 0, len(in))
	for _, j := range in {
		if pred(j) {
			out = append(out, j)
		}
	}
	return out
}
