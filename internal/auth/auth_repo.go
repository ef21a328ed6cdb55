package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"go-roster/internal/storage"
)

// SessionRepository reads and writes the session marker, independently of
// the employee collection stored in the same backend.
type SessionRepository interface {
	Get(ctx context.Context) (*SessionUser, error)
	Set(ctx context.Context, user SessionUser) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	kv storage.KV
}

func NewSessionRepository(kv storage.KV) SessionRepository {
	return &sessionRepository{kv: kv}
}

// Get returns nil without error when no marker is stored.
func (r *sessionRepository) Get(ctx context.Context) (*SessionUser, error) {
	raw, ok, err := r.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var user SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &user, nil
}

func (r *sessionRepository) Set(ctx context.Context, user SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.kv.Set(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
