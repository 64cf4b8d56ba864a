// Package auth keeps login accounts and refresh sessions for the HTTP
// boundary.  It lives outside the data engine on purpose: the engine owns
// only the six hostel collections and stays testable without any session
// machinery.  Accounts are held in memory alongside the rest of the
// embedded state.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/hostel-hub/internal/utils"
)

// Roles carried in the JWT "role" claim.
const (
	RoleAdmin    = "ADMIN"
	RoleResident = "RESIDENT"
)

// ErrEmailExists is returned when an account email is already taken.
var ErrEmailExists = errors.New("email already exists")

// Account is a login identity.  Resident accounts carry the id of the
// Student record they act for, so self-service endpoints can scope their
// queries; administrator accounts have no student link.
type Account struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	StudentID    *uint64
}

type refreshSession struct {
	accountID uint64
	expiresAt time.Time
}

// Store is an in-memory account and refresh-session registry.  Unlike the
// engine it carries its own lock because login traffic does not go through
// the engine's mutation protocols.
type Store struct {
	mu      sync.RWMutex
	nextID  uint64
	byEmail map[string]Account
	byID    map[uint64]Account
	refresh map[string]refreshSession // refresh token hash -> session
}

// NewStore returns an empty account store.
func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]Account),
		byID:    make(map[uint64]Account),
		refresh: make(map[string]refreshSession),
	}
}

// Create registers a new account with a bcrypt-hashed password.  Emails
// are normalized to lower case and must be unique.
func (s *Store) Create(email, name, plain, role string, studentID *uint64, bcryptCost int) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(plain, bcryptCost)
	if err != nil {
		return Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[email]; taken {
		return Account{}, ErrEmailExists
	}
	s.nextID++
	acc := Account{
		ID:           s.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		StudentID:    studentID,
	}
	s.byEmail[email] = acc
	s.byID[acc.ID] = acc
	return acc, nil
}

// Verify checks the credentials and returns the matching account.
func (s *Store) Verify(email, plain string) (Account, bool) {
	s.mu.RLock()
	acc, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok || !utils.VerifyPassword(acc.PasswordHash, plain) {
		return Account{}, false
	}
	return acc, true
}

// ByID returns an account by its identifier.
func (s *Store) ByID(id uint64) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	return acc, ok
}

// StoreRefresh records a refresh session under the token's hash.
func (s *Store) StoreRefresh(hash string, accountID uint64, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[hash] = refreshSession{accountID: accountID, expiresAt: expiresAt}
}

// ConsumeRefresh validates and removes a refresh session, returning the
// account it belongs to.  Expired or unknown sessions fail; consumption
// implements single-use rotation.
func (s *Store) ConsumeRefresh(hash string) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.refresh[hash]
	if !ok {
		return Account{}, false
	}
	delete(s.refresh, hash)
	if time.Now().UTC().After(sess.expiresAt) {
		return Account{}, false
	}
	acc, ok := s.byID[sess.accountID]
	return acc, ok
}

// RevokeRefresh drops a refresh session if it exists.  Used by logout;
// revoking an unknown hash is a no-op.
func (s *Store) RevokeRefresh(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refresh, hash)
}
