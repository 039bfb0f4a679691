package schema

import (
	"regexp"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

var emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	Type     string `json:"type"`
}

// NewUser validates a registration payload. The password comes back as
// typed; hashing happens in the repository, never here.
func NewUser(in RegisterInput, now time.Time) (domain.User, error) {
	if isBlank(in.Email) || isBlank(in.Password) || isBlank(in.Name) {
		return domain.User{}, errf("email", "email, password and name are required")
	}
	email := strings.TrimSpace(in.Email)
	if !emailRe.MatchString(email) {
		return domain.User{}, errf("email", "invalid email format")
	}
	if len(in.Password) < 8 {
		return domain.User{}, errf("password", "must be at least 8 characters")
	}

	u := domain.User{
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		Phone:     in.Phone,
		Gender:    in.Gender,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.Gender == "" {
		u.Gender = "prefer-not-to-say"
	}
	if u.Type == "" {
		u.Type = "user"
	}
	if u.Type != "user" && u.Type != "admin" {
		return domain.User{}, errf("type", "%q is not a valid account type", u.Type)
	}
	return u, nil
}
