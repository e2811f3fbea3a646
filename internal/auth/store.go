package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUserExists         = errors.New("operator already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const RoleOperator = "operator"

type User struct {
	ID       string
	Username string
	Hash     []byte
	Role     string
}

type UserStore interface {
	Create(username, password, role, id string) error
	Verify(username, password string) (User, error)
}

func NewStore() *MemStore {
	return NewMemStore()
}

// SeedOperator registers the operator account configured at startup.
func SeedOperator(s UserStore, username, password string) (string, error) {
	id := "u_" + uuid.NewString()
	if err := s.Create(username, password, RoleOperator, id); err != nil {
		return "", err
	}
	return id, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func normalizePassword(password string) string {
	return strings.TrimSpace(password)
}
