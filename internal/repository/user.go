package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service"
)

type UserRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewUserRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.UserRepository {
	return &UserRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Upsert создает профиль или обновляет имя и телефон, если он уже есть
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Phone).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByID возвращает профиль по uid
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// Delete удаляет профиль; поездки волонтера удаляются каскадно
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrProfileNotFound
	}
	return nil
}

func profileCacheKey(id string) string {
	return fmt.Sprintf("profile:%s", id)
}

// GetUserFromCache пытается получить профиль из Redis; промах возвращает (nil, nil)
func (r *UserRepository) GetUserFromCache(ctx context.Context, id string) (*models.User, error) {
	val, err := r.redisClient.Get(ctx, profileCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal(val, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user from cache: %w", err)
	}
	return user, nil
}

// SetUserCache сохраняет профиль в Redis
func (r *UserRepository) SetUserCache(ctx context.Context, user *models.User) error {
	val, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, profileCacheKey(user.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set user in cache: %w", err)
	}
	return nil
}

// InvalidateUserCache удаляет профиль из Redis
func (r *UserRepository) InvalidateUserCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, profileCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user cache: %w", err)
	}
	return nil
}
