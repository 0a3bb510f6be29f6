package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  string    `db:"full_name" json:"full_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	UserPassword `json:"-"`
}

type UserPassword struct {
	Hash string `db:"password_hash" json:"-"`
	Salt string `db:"password_salt" json:"-"`
}

// Init generates a fresh salt and stores the salted hash of password.
func (p *UserPassword) Init(password string) error {
	p.Salt = random.String(16)
	p.Hash = hashPassword(password, p.Salt)
	return nil
}

// Validate checks password against the stored hash.
func (p *UserPassword) Validate(password string) error {
	if p.Hash != hashPassword(password, p.Salt) {
		return constants.ErrUnauthorized
	}
	return nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
