package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
}

func NewMemStore() *MemStore {
	return &MemStore{byUsername: make(map[string]User)}
}

func (s *MemStore) Create(username, password, role, id string) error {
	username = normalizeUsername(username)
	password = normalizePassword(password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.byUsername[username] = User{ID: id, Username: username, Hash: hash, Role: role}
	return nil
}

func (s *MemStore) Verify(username, password string) (User, error) {
	username = normalizeUsername(username)
	password = normalizePassword(password)

	s.mu.RLock()
	u, ok := s.byUsername[username]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.Hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
