package security

import (
	"github.com/social-wave/backend/internal/errs"
	"golang.org/x/crypto/bcrypt"
)

type PasswordConfig struct {
	Cost      int // по умолчанию bcrypt.DefaultCost
	MinLength int // по умолчанию 6
}

func HashPassword(plain string, cfg *PasswordConfig) (string, error) {
	minLen := 6
	cost := bcrypt.DefaultCost

	if cfg != nil {
		if cfg.MinLength > 0 {
			minLen = cfg.MinLength
		}
		if cfg.Cost > 0 {
			cost = cfg.Cost
		}
	}

	if len(plain) < minLen {
		return "", errs.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
