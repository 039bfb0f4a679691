// Package repo composes schema validation with document store access.
// Validation always runs before any write, so invalid input never leaves a
// partial document behind. Get-by-id is deliberately not owner-scoped; only
// list queries are (see DESIGN.md).
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/schema"
	"jobtrack-engine/internal/store"
)

type Jobs struct {
	Col store.Collection
}

func NewJobs(db *store.DB) Jobs {
	return Jobs{Col: db.MustCollection(store.Jobs)}
}

func (r Jobs) Create(ctx context.Context, in schema.JobInput) (domain.Job, error) {
	j, err := schema.NewJob(in, time.Now().UTC())
	if err != nil {
		return domain.Job{}, err
	}
	body, err := json.Marshal(j)
	if err != nil {
		return domain.Job{}, err
	}
	id, err := r.Col.Insert(ctx, j.UserEmail, j.CreatedAt, body)
	if err != nil {
		return domain.Job{}, err
	}
	j.ID = id
	return j, nil
}

func (r Jobs) Get(ctx context.Context, id string) (domain.Job, error) {
	doc, err := r.Col.Get(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return domain.Job{}, ErrNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	return decodeJob(doc)
}

func (r Jobs) Update(ctx context.Context, id string, in schema.JobInput) (domain.Job, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	j, err := schema.MergeJob(cur, in, time.Now().UTC())
	if err != nil {
		return domain.Job{}, err
	}
	body, err := json.Marshal(j)
	if err != nil {
		return domain.Job{}, err
	}
	if err := r.Col.Replace(ctx, id, j.UpdatedAt, body); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return domain.Job{}, ErrNotFound
		}
		return domain.Job{}, err
	}
	return j, nil
}

func (r Jobs) Delete(ctx context.Context, id string) error {
	err := r.Col.Delete(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return ErrNotFound
	}
	return err
}

func (r Jobs) ListByOwner(ctx context.Context, email string) ([]domain.Job, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrBadRequest
	}
	docs, err := r.Col.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Job, 0, len(docs))
	for _, doc := range docs {
		j, err := decodeJob(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

func decodeJob(doc store.Document) (domain.Job, error) {
	var j domain.Job
	if err := json.Unmarshal(doc.Body, &j); err != nil {
		return domain.Job{}, err
	}
	j.ID = doc.ID
	return j, nil
}
