package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/logger"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidPrincipal = errors.New("principal has no user id")

// Principal is the authenticated identity carried by the bearer token.
type Principal struct {
	ID              uuid.UUID
	Email           string
	DisplayNameHint string
	AvatarHint      string
}

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// Resolver maps a principal to its stored user record, creating it on
// first access.
type Resolver struct {
	users UserStore
	log   *logger.Logger
}

func NewResolver(users UserStore, log *logger.Logger) *Resolver {
	return &Resolver{users: users, log: log}
}

// Resolve returns the user for p. A missing user is created by upsert on the
// principal id, so two concurrent first requests end up with one row.
func (r *Resolver) Resolve(ctx context.Context, p Principal) (*model.User, error) {
	if p.ID == uuid.Nil {
		return nil, ErrInvalidPrincipal
	}

	user, err := r.users.GetByID(ctx, p.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("resolve user %s: %w", p.ID, err)
	}

	user, err = r.users.Upsert(ctx, newUser(p))
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", p.ID, err)
	}
	r.log.Infow("created user record", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// ListAllUsers returns every known user ordered by name. When the listing
// fails the current user is returned alone so assignee pickers still work.
func (r *Resolver) ListAllUsers(ctx context.Context, current model.User) []model.User {
	users, err := r.users.List(ctx)
	if err != nil {
		r.log.Warnw("failed to list users, falling back to current user", "user_id", current.ID, "error", err)
		return []model.User{current}
	}
	return users
}

func newUser(p Principal) *model.User {
	user := &model.User{
		ID:    p.ID,
		Email: p.Email,
		Name:  displayName(p),
	}
	if p.AvatarHint != "" {
		avatar := p.AvatarHint
		user.AvatarURL = &avatar
	}
	return user
}

func displayName(p Principal) string {
	if name := strings.TrimSpace(p.DisplayNameHint); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(p.Email, "@"); ok && local != "" {
		return local
	}
	if p.Email != "" {
		return p.Email
	}
	return "user"
}
