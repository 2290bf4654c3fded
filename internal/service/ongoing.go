package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=ongoing.go -destination=mocks/mock_ongoing.go -package=mocks

// OnGoingRepository определяет контракт для работы с бд поездок волонтеров
type OnGoingRepository interface {
	// Create вставляет запись. Если у волонтера уже есть активная поездка, хранилище
	// отклоняет вставку уникальным индексом и метод возвращает ErrActiveTrip.
	Create(ctx context.Context, onGoing *models.OnGoing) error
	// UpdateStatus перезаписывает статус (и minutes, если задано) записи, принадлежащей userID
	UpdateStatus(ctx context.Context, id int64, userID string, status models.OnGoingStatus, minutes *int) (*models.OnGoing, error)
	Delete(ctx context.Context, id int64, userID string) error
	ListByReport(ctx context.Context, reportID int64) ([]*models.OnGoingWithRelations, error)
	ListByReports(ctx context.Context, reportIDs []int64) ([]*models.OnGoingWithRelations, error)
	ListByUser(ctx context.Context, userID string) ([]*models.OnGoingWithRelations, error)
}

// OnGoingService определяет контракт бизнес-логики поездок волонтеров
type OnGoingService interface {
	CreateOnGoing(ctx context.Context, callerID string, reportID int64, minutes int) (*models.OnGoingView, error)
	UpdateOnGoingStatus(ctx context.Context, callerID string, id int64, status models.OnGoingStatus, minutes *int) (*models.OnGoingView, error)
	ListOnGoingByReport(ctx context.Context, reportID int64) ([]*models.OnGoingView, error)
	ListMyOnGoing(ctx context.Context, callerID string) ([]*models.OnGoingView, error)
	RemoveOnGoing(ctx context.Context, callerID string, id int64) error
}

type onGoingService struct {
	repo     OnGoingRepository
	reports  ReportRepository
	profiles ProfileLookup
	logger   *logrus.Logger
}

func NewOnGoingService(repo OnGoingRepository, reports ReportRepository, profiles ProfileLookup, logger *logrus.Logger) OnGoingService {
	return &onGoingService{
		repo:     repo,
		reports:  reports,
		profiles: profiles,
		logger:   logger,
	}
}

// CreateOnGoing регистрирует, что волонтер выехал к заявке
func (s *onGoingService) CreateOnGoing(ctx context.Context, callerID string, reportID int64, minutes int) (*models.OnGoingView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ongoing",
		"method":    "CreateOnGoing",
		"user_id":   callerID,
		"report_id": reportID,
	})
	log.Info("Attempting to start a trip")

	if minutes < 0 {
		return nil, ErrNegativeMinutes
	}

	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		log.WithError(err).Warn("Trip references a missing report")
		return nil, fmt.Errorf("service: could not create ongoing: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, callerID)
	if err != nil {
		log.WithError(err).Warn("Volunteer has no profile")
		return nil, fmt.Errorf("service: could not create ongoing: %w", err)
	}

	onGoing := &models.OnGoing{
		ReportID: reportID,
		UserID:   callerID,
		Status:   models.OnGoingStatusOnTheWay,
		Minutes:  minutes,
	}
	if err := s.repo.Create(ctx, onGoing); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("Volunteer already has an active trip")
		} else {
			log.WithError(err).Error("Failed to create ongoing in repository")
		}
		return nil, fmt.Errorf("service: could not create ongoing: %w", err)
	}

	log.WithField("ongoing_id", onGoing.ID).Info("Trip started successfully")
	return ProjectOnGoing(&models.OnGoingWithRelations{OnGoing: *onGoing, User: profile}), nil
}

// UpdateOnGoingStatus перезаписывает статус поездки вызывающего волонтера.
// Граф переходов on_the_way -> arrived -> left не проверяется.
func (s *onGoingService) UpdateOnGoingStatus(ctx context.Context, callerID string, id int64, status models.OnGoingStatus, minutes *int) (*models.OnGoingView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "ongoing",
		"method":     "UpdateOnGoingStatus",
		"user_id":    callerID,
		"ongoing_id": id,
		"status":     status,
	})
	log.Info("Attempting to update trip status")

	if !status.IsValid() {
		return nil, ErrInvalidTripStatus
	}
	if minutes != nil && *minutes < 0 {
		return nil, ErrNegativeMinutes
	}

	onGoing, err := s.repo.UpdateStatus(ctx, id, callerID, status, minutes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("Attempted to update a non-existent or foreign trip")
		case errors.Is(err, ErrConflict):
			log.Warn("Status change would create a second active trip")
		default:
			log.WithError(err).Error("Failed to update ongoing in repository")
		}
		return nil, fmt.Errorf("service: could not update ongoing: %w", err)
	}

	rel := &models.OnGoingWithRelations{OnGoing: *onGoing}
	if profile, err := s.profiles.GetProfile(ctx, callerID); err == nil {
		rel.User = profile
	} else {
		log.WithError(err).Warn("Failed to load volunteer profile for response")
	}

	log.Info("Trip status updated successfully")
	return ProjectOnGoing(rel), nil
}

// ListOnGoingByReport возвращает все поездки к заявке, новые первыми
func (s *onGoingService) ListOnGoingByReport(ctx context.Context, reportID int64) ([]*models.OnGoingView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ongoing",
		"method":    "ListOnGoingByReport",
		"report_id": reportID,
	})

	rels, err := s.repo.ListByReport(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to list ongoing by report")
		return nil, fmt.Errorf("service: could not list ongoing: %w", err)
	}

	log.WithField("count", len(rels)).Info("Trips listed successfully")
	return ProjectOnGoings(rels), nil
}

// ListMyOnGoing возвращает поездки вызывающего волонтера вместе с заявками
func (s *onGoingService) ListMyOnGoing(ctx context.Context, callerID string) ([]*models.OnGoingView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ongoing",
		"method":  "ListMyOnGoing",
		"user_id": callerID,
	})

	rels, err := s.repo.ListByUser(ctx, callerID)
	if err != nil {
		log.WithError(err).Error("Failed to list ongoing by user")
		return nil, fmt.Errorf("service: could not list ongoing: %w", err)
	}

	log.WithField("count", len(rels)).Info("Trips listed successfully")
	return ProjectOnGoings(rels), nil
}

// RemoveOnGoing удаляет поездку (отмена); история не сохраняется
func (s *onGoingService) RemoveOnGoing(ctx context.Context, callerID string, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "ongoing",
		"method":     "RemoveOnGoing",
		"user_id":    callerID,
		"ongoing_id": id,
	})
	log.Info("Attempting to cancel trip")

	if err := s.repo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to cancel a non-existent or foreign trip")
		} else {
			log.WithError(err).Error("Failed to delete ongoing in repository")
		}
		return fmt.Errorf("service: could not remove ongoing: %w", err)
	}

	log.Info("Trip cancelled successfully")
	return nil
}
