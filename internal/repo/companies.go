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

type Companies struct {
	Col store.Collection
}

func NewCompanies(db *store.DB) Companies {
	return Companies{Col: db.MustCollection(store.Companies)}
}

func (r Companies) Create(ctx context.Context, in schema.CompanyInput) (domain.Company, error) {
	c, err := schema.NewCompany(in, time.Now().UTC())
	if err != nil {
		return domain.Company{}, err
	}
	body, err := json.Marshal(c)
	if err != nil {
		return domain.Company{}, err
	}
	id, err := r.Col.Insert(ctx, c.UserEmail, c.CreatedAt, body)
	if err != nil {
		return domain.Company{}, err
	}
	c.ID = id
	return c, nil
}

func (r Companies) Get(ctx context.Context, id string) (domain.Company, error) {
	doc, err := r.Col.Get(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return domain.Company{}, ErrNotFound
	}
	if err != nil {
		return domain.Company{}, err
	}
	return decodeCompany(doc)
}

// Update merges only the supplied fields. A patch that includes leads
// replaces the stored lead list in the same single document write.
func (r Companies) Update(ctx context.Context, id string, in schema.CompanyInput) (domain.Company, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	c, err := schema.MergeCompany(cur, in, time.Now().UTC())
	if err != nil {
		return domain.Company{}, err
	}
	body, err := json.Marshal(c)
	if err != nil {
		return domain.Company{}, err
	}
	if err := r.Col.Replace(ctx, id, c.UpdatedAt, body); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, err
	}
	return c, nil
}

func (r Companies) Delete(ctx context.Context, id string) error {
	err := r.Col.Delete(ctx, id)
	if errors.Is(err, store.ErrNoDocument) {
		return ErrNotFound
	}
	return err
}

func (r Companies) ListByOwner(ctx context.Context, email string) ([]domain.Company, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrBadRequest
	}
	docs, err := r.Col.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Company, 0, len(docs))
	for _, doc := range docs {
		c, err := decodeCompany(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeCompany(doc store.Document) (domain.Company, error) {
	var c domain.Company
	if err := json.Unmarshal(doc.Body, &c); err != nil {
		return domain.Company{}, err
	}
	c.ID = doc.ID
	return c, nil
}
