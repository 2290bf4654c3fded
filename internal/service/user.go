package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

// UserRepository определяет контракт для хранения профилей пользователей
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	GetUserFromCache(ctx context.Context, id string) (*models.User, error)
	SetUserCache(ctx context.Context, user *models.User) error
	InvalidateUserCache(ctx context.Context, id string) error
}

// ProfileLookup - получение профиля по uid; нужен заявкам и поездкам для снимка контактов
type ProfileLookup interface {
	GetProfile(ctx context.Context, uid string) (*models.User, error)
}

// UserService определяет контракт для управления профилем текущего пользователя
type UserService interface {
	ProfileLookup
	UpsertProfile(ctx context.Context, uid, name, phone string) (*models.User, error)
	DeleteProfile(ctx context.Context, uid string) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// UpsertProfile создает профиль или обновляет имя и телефон существующего
func (s *userService) UpsertProfile(ctx context.Context, uid, name, phone string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpsertProfile",
		"user_id": uid,
	})

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !models.IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	user := &models.User{ID: uid, Name: name, Phone: phone}
	if err := s.repo.Upsert(ctx, user); err != nil {
		log.WithError(err).Error("Failed to upsert profile in repository")
		return nil, fmt.Errorf("service: could not save profile: %w", err)
	}

	s.invalidate(ctx, log, uid)
	log.Info("Profile saved successfully")
	return user, nil
}

// GetProfile возвращает профиль, сначала пытаясь прочитать его из кеша
func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetProfile",
		"user_id": uid,
	})

	cached, err := s.repo.GetUserFromCache(ctx, uid)
	if err != nil {
		log.WithError(err).Warn("Failed to read profile from cache")
	}
	if cached != nil {
		log.Debug("Profile served from cache")
		return cached, nil
	}

	user, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Profile not found")
		} else {
			log.WithError(err).Error("Failed to get profile from repository")
		}
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	if err := s.repo.SetUserCache(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to cache profile")
	}
	return user, nil
}

// DeleteProfile удаляет профиль вызывающего пользователя
func (s *userService) DeleteProfile(ctx context.Context, uid string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteProfile",
		"user_id": uid,
	})

	if err := s.repo.Delete(ctx, uid); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to delete a non-existent profile")
		} else {
			log.WithError(err).Error("Failed to delete profile in repository")
		}
		return fmt.Errorf("service: could not delete profile: %w", err)
	}

	s.invalidate(ctx, log, uid)
	log.Info("Profile deleted successfully")
	return nil
}

func (s *userService) invalidate(ctx context.Context, log *logrus.Entry, uid string) {
	if err := s.repo.InvalidateUserCache(ctx, uid); err != nil {
		log.WithError(err).Warn("Failed to invalidate profile cache")
	}
}
