package schema

import (
	"testing"
	"time"
)

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser(RegisterInput{
		Email:    "a@x.com",
		Password: "hunter2hunter2",
		Name:     "Alex",
	}, time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Type != "user" {
		t.Errorf("type = %q, want user", u.Type)
	}
	if u.Gender != "prefer-not-to-say" {
		t.Errorf("gender = %q, want prefer-not-to-say", u.Gender)
	}
	if u.PasswordHash != "" {
		t.Error("schema must not hash or keep the password")
	}
}

func TestNewUserValidation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing email", RegisterInput{Password: "longenough", Name: "A"}},
		{"missing name", RegisterInput{Email: "a@x.com", Password: "longenough"}},
		{"bad email", RegisterInput{Email: "not-an-email", Password: "longenough", Name: "A"}},
		{"short password", RegisterInput{Email: "a@x.com", Password: "short", Name: "A"}},
		{"bad type", RegisterInput{Email: "a@x.com", Password: "longenough", Name: "A", Type: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewUser(tc.in, now); err == nil {
				t.Error("accepted, want ValidationError")
			}
		})
	}
}
