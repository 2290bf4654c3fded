package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportRepository определяет контракт для работы с бд заявок
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error)
	// Update меняет только заданные поля заявки, принадлежащей ownerID
	Update(ctx context.Context, id int64, ownerID string, update models.ReportUpdate) (*models.Report, error)
}

// ReportService определяет контракт бизнес-логики заявок
type ReportService interface {
	CreateReport(ctx context.Context, callerID string, input models.NewReport) (*models.Report, error)
	ListReports(ctx context.Context, viewer *models.Location) ([]*models.ReportView, error)
	ListMyReports(ctx context.Context, callerID string, viewer *models.Location) ([]*models.ReportView, error)
	UpdateReport(ctx context.Context, callerID string, reportID int64, update models.ReportUpdate) (*models.Report, error)
}

type reportService struct {
	repo     ReportRepository
	onGoings OnGoingRepository
	profiles ProfileLookup
	logger   *logrus.Logger
}

func NewReportService(repo ReportRepository, onGoings OnGoingRepository, profiles ProfileLookup, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:     repo,
		onGoings: onGoings,
		profiles: profiles,
		logger:   logger,
	}
}

// CreateReport создает заявку в статусе pending с контактами из профиля вызывающего
func (s *reportService) CreateReport(ctx context.Context, callerID string, input models.NewReport) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
		"user_id": callerID,
	})
	log.Info("Attempting to create a new report")

	if strings.TrimSpace(input.Address) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrEmptyField
	}
	if input.Location != nil && !input.Location.IsValid() {
		return nil, ErrInvalidLocation
	}

	profile, err := s.profiles.GetProfile(ctx, callerID)
	if err != nil {
		log.WithError(err).Warn("Report author has no profile")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	report := &models.Report{
		UserID:      callerID,
		Name:        profile.Name,
		Phone:       profile.Phone,
		Address:     input.Address,
		Description: input.Description,
		Status:      models.ReportStatusPending,
	}
	if input.Location != nil {
		lat, lon := input.Location.Latitude, input.Location.Longitude
		report.Latitude = &lat
		report.Longitude = &lon
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return report, nil
}

// ListReports возвращает все заявки, новые первыми, со счетчиками волонтеров
func (s *reportService) ListReports(ctx context.Context, viewer *models.Location) ([]*models.ReportView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListReports",
	})
	return s.listViews(ctx, log, models.ReportFilter{}, viewer)
}

// ListMyReports возвращает только заявки вызывающего пользователя
func (s *reportService) ListMyReports(ctx context.Context, callerID string, viewer *models.Location) ([]*models.ReportView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListMyReports",
		"user_id": callerID,
	})
	return s.listViews(ctx, log, models.ReportFilter{UserID: callerID}, viewer)
}

func (s *reportService) listViews(ctx context.Context, log *logrus.Entry, filter models.ReportFilter, viewer *models.Location) ([]*models.ReportView, error) {
	log.Info("Listing reports")

	if viewer != nil && !viewer.IsValid() {
		return nil, ErrInvalidLocation
	}

	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	byReport := make(map[int64][]*models.OnGoingWithRelations, len(reports))
	if len(reports) > 0 {
		ids := make([]int64, len(reports))
		for i, r := range reports {
			ids[i] = r.ID
		}
		children, err := s.onGoings.ListByReports(ctx, ids)
		if err != nil {
			log.WithError(err).Error("Failed to load ongoing records for reports")
			return nil, fmt.Errorf("service: could not list reports: %w", err)
		}
		for _, child := range children {
			byReport[child.ReportID] = append(byReport[child.ReportID], child)
		}
	}

	views := make([]*models.ReportView, len(reports))
	for i, r := range reports {
		views[i] = ProjectReport(r, byReport[r.ID], viewer)
	}

	log.WithField("count", len(views)).Info("Reports listed successfully")
	return views, nil
}

// UpdateReport применяет частичное обновление к заявке вызывающего.
// Переходы статусов не проверяются: принимается любой допустимый статус.
func (s *reportService) UpdateReport(ctx context.Context, callerID string, reportID int64, update models.ReportUpdate) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpdateReport",
		"user_id":   callerID,
		"report_id": reportID,
	})
	log.Info("Attempting to update report")

	if update.Status != nil && !update.Status.IsValid() {
		return nil, ErrInvalidReportStatus
	}

	report, err := s.repo.Update(ctx, reportID, callerID, update)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent or foreign report")
		} else {
			log.WithError(err).Error("Failed to update report in repository")
		}
		return nil, fmt.Errorf("service: could not update report: %w", err)
	}

	log.WithField("status", report.Status).Info("Report updated successfully")
	return report, nil
}
