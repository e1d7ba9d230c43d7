package repository

import (
	"context"
	"encoding/json"
	"errors"

	"parkease/internal/domain/user"
	"parkease/internal/infra"
	"parkease/internal/infra/kv"
)

// storedUser is the persisted user record; the password hash stays inside the
// repository and never crosses into the domain entity.
type storedUser struct {
	user.User
	PasswordHash string `json:"passwordHash"`
}

type UserRepository struct {
	store kv.Store
}

func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts the user keyed by email. The insert-if-absent compare-and-swap
// doubles as the duplicate-email check.
func (r *UserRepository) Create(ctx context.Context, u *user.User, passwordHash string) error {
	record := storedUser{User: *u, PasswordHash: passwordHash}
	data, err := json.Marshal(record)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode user", err)
	}

	err = r.store.CompareAndSwap(ctx, userKey(u.Email), kv.NoVersion, data)
	if err != nil {
		if errors.Is(err, kv.ErrVersionMismatch) {
			return infra.WrapRepoErr(infra.KindExists, "email already registered", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, string, error) {
	entry, err := r.store.Get(ctx, userKey(email))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to read user", err)
	}

	var record storedUser
	if err := json.Unmarshal(entry.Value, &record); err != nil {
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "corrupt user record", err)
	}
	return &record.User, record.PasswordHash, nil
}
