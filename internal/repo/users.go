package repo

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/schema"
	"jobtrack-engine/internal/store"
)

type Users struct {
	Col store.Collection
}

func NewUsers(db *store.DB) Users {
	return Users{Col: db.MustCollection(store.Users)}
}

// Register validates the payload, rejects a taken email, and stores the
// user with a bcrypt hash. Users are their own owners, so the owner column
// doubles as the unique-email lookup.
func (r Users) Register(ctx context.Context, in schema.RegisterInput) (domain.User, error) {
	now := time.Now().UTC()
	u, err := schema.NewUser(in, now)
	if err != nil {
		return domain.User{}, err
	}

	existing, err := r.Col.ListByOwner(ctx, u.Email)
	if err != nil {
		return domain.User{}, err
	}
	if len(existing) > 0 {
		return domain.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = string(hash)

	body, err := json.Marshal(u)
	if err != nil {
		return domain.User{}, err
	}
	if _, err := r.Col.Insert(ctx, u.Email, now, body); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
