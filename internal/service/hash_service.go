package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHashService implements ports.HashService using bcrypt. Agent
// PINs are stored as bcrypt hashes and verified before any transfer.
type BcryptHashService struct {
	cost int
}

// NewBcryptHashService creates a hash service. A non-positive cost
// falls back to the bcrypt default.
func NewBcryptHashService(cost int) *BcryptHashService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHashService{cost: cost}
}

// Hash generates a bcrypt hash of the secret.
func (s *BcryptHashService) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}
	return string(hash), nil
}

// Verify checks a secret against a stored hash. A mismatch is not an
// error; only malformed hashes are.
func (s *BcryptHashService) Verify(secret string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("verifying secret: %w", err)
	}
	return true, nil
}
