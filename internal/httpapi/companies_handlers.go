package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/filter"
	"jobtrack-engine/internal/probe"
	"jobtrack-engine/internal/repo"
	"jobtrack-engine/internal/schema"
)

type CompaniesHandler struct {
	Repo   repo.Companies
	Prober *probe.Prober
	CfgVal *atomic.Value // stores config.Config
}

func (h CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.CompanyInput
	if !decodeBody(w, r, &in) {
		return
	}
	company, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	WriteJSON(w, http.StatusCreated, company)
}

func (h CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	companies, err := h.Repo.ListByOwner(r.Context(), q.Get("email"))
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}

	companies = filter.Companies(companies, filter.CompanyFilters{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Size:     q.Get("size"),
	})
	writeJSON(w, companies)
}

func (h CompaniesHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/companies/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	company, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	writeJSON(w, company)
}

func (h CompaniesHandler) PatchByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/companies/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	var in schema.CompanyInput
	if !decodeBody(w, r, &in) {
		return
	}
	company, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	writeJSON(w, company)
}

func (h CompaniesHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/companies/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	writeJSON(w, map[string]any{"message": "Company deleted"})
}

// ProbeByPath handles POST /companies/{id}/probe: fetch the company's
// careers page (or website), then stamp lastInteractionDate on success.
func (h CompaniesHandler) ProbeByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/companies/")
	if id == "" || rest != "/probe" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown route")
		return
	}
	cfg := h.CfgVal.Load().(config.Config)
	if !cfg.Probe.Enabled {
		WriteError(w, r, http.StatusBadRequest, "probe_disabled", "careers page probe is disabled")
		return
	}

	company, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	target := probe.ProbeURL(company)
	if target == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "no careers page or website on record")
		return
	}

	info, err := h.Prober.Fetch(r.Context(), target)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "probe_failed", "could not fetch "+target)
		return
	}

	company, err = h.Repo.Update(r.Context(), id, schema.CompanyInput{
		LastInteractionDate: &info.FetchedAt,
	})
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}
	writeJSON(w, map[string]any{"company": company, "page": info})
}

// ProbeRun handles POST /probe/run?email=...: bulk-probe every company of
// the owner that has a URL on record.
func (h CompaniesHandler) ProbeRun(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	if !cfg.Probe.Enabled {
		WriteError(w, r, http.StatusBadRequest, "probe_disabled", "careers page probe is disabled")
		return
	}

	companies, err := h.Repo.ListByOwner(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeRepoError(w, r, "Company", err)
		return
	}

	results := h.Prober.ProbeAll(r.Context(), companies)
	for _, res := range results {
		if res.Page == nil {
			continue
		}
		if _, err := h.Repo.Update(r.Context(), res.CompanyID, schema.CompanyInput{
			LastInteractionDate: &res.Page.FetchedAt,
		}); err != nil {
			writeRepoError(w, r, "Company", err)
			return
		}
	}
	writeJSON(w, results)
}
