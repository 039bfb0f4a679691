package httpapi

import (
	"net/http"

	"jobtrack-engine/internal/filter"
	"jobtrack-engine/internal/repo"
	"jobtrack-engine/internal/schema"
)

type JobsHandler struct {
	Repo repo.Jobs
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.JobInput
	if !decodeBody(w, r, &in) {
		return
	}
	job, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeRepoError(w, r, "Job", err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// List returns the owner's jobs newest-first. Optional q/status/jobType/
// source params run the same filter engine the UI applies client-side.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	jobs, err := h.Repo.ListByOwner(r.Context(), q.Get("email"))
	if err != nil {
		writeRepoError(w, r, "Job", err)
		return
	}

	jobs = filter.Jobs(jobs, filter.JobFilters{
		Search:  q.Get("q"),
		Status:  q.Get("status"),
		JobType: q.Get("jobType"),
		Source:  q.Get("source"),
	})
	writeJSON(w, jobs)
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/jobs/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	job, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, "Job", err)
		return
	}
	writeJSON(w, job)
}

func (h JobsHandler) PatchByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/jobs/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	var in schema.JobInput
	if !decodeBody(w, r, &in) {
		return
	}
	job, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		writeRepoError(w, r, "Job", err)
		return
	}
	writeJSON(w, job)
}

func (h JobsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id, rest := pathID(r.URL.Path, "/jobs/")
	if id == "" || rest != "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, "Job", err)
		return
	}
	writeJSON(w, map[string]any{"message": "Job deleted"})
}
