package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

// storedUser is the persisted form of a domain.User. The domain struct hides
// the password hash from JSON on purpose, so persistence carries it
// explicitly here.
type storedUser struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"password_hash"`
	Role         domain.Role `json:"role"`
	IsActive     bool        `json:"is_active"`
	IsDeleted    bool        `json:"is_deleted"`
	DeletedOn    *time.Time  `json:"deleted_on,omitempty"`
	CreatedOn    time.Time   `json:"created_on"`
	LastLogin    *time.Time  `json:"last_login,omitempty"`
}

func toStoredUser(u *domain.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		IsDeleted:    u.IsDeleted,
		DeletedOn:    u.DeletedOn,
		CreatedOn:    u.CreatedOn,
		LastLogin:    u.LastLogin,
	}
}

func (s storedUser) toDomain() domain.User {
	return domain.User{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Role:         s.Role,
		IsActive:     s.IsActive,
		IsDeleted:    s.IsDeleted,
		DeletedOn:    s.DeletedOn,
		CreatedOn:    s.CreatedOn,
		LastLogin:    s.LastLogin,
	}
}

type userRepository struct {
	kv kvstore.Store
}

func NewUserRepository(kv kvstore.Store) repository.UserRepository {
	return &userRepository{kv: kv}
}

func (r *userRepository) load(ctx context.Context) ([]storedUser, error) {
	var users []storedUser
	err := kvstore.GetJSON(ctx, r.kv, keyUsers, &users)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *userRepository) save(ctx context.Context, users []storedUser) error {
	if err := kvstore.SetJSON(ctx, r.kv, keyUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	users = append(users, toStoredUser(user))
	return r.save(ctx, users)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, su := range users {
		if su.ID == id {
			u := su.toDomain()
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, su := range users {
		if strings.EqualFold(su.Email, email) && !su.IsDeleted {
			u := su.toDomain()
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = toStoredUser(user)
			return r.save(ctx, users)
		}
	}
	return repository.ErrUserNotFound
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, su := range users {
		out = append(out, su.toDomain())
	}
	return out, nil
}

func (r *userRepository) HardDelete(ctx context.Context, id string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.save(ctx, users)
		}
	}
	return repository.ErrUserNotFound
}
