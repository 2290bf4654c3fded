package models

import "time"

// ReportStatus - статус заявки о помощи
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusRejected   ReportStatus = "rejected"
)

// IsValid проверяет, что статус входит в перечисление
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusProcessing, ReportStatusCompleted, ReportStatusRejected:
		return true
	}
	return false
}

// Report - заявка о помощи. Name и Phone копируются из профиля владельца при создании.
type Report struct {
	ID          int64        `json:"id" db:"id"`
	UserID      string       `json:"user_id" db:"user_id"`
	Name        string       `json:"name" db:"name"`
	Phone       string       `json:"phone" db:"phone"`
	Address     string       `json:"address" db:"address"`
	Description string       `json:"description" db:"description"`
	Latitude    *float64     `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64     `json:"longitude,omitempty" db:"longitude"`
	Status      ReportStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// Location возвращает координаты заявки, если они заданы
func (r *Report) Location() *Location {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &Location{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// ReportFilter ограничивает выборку заявок; пустой UserID означает "все заявки"
type ReportFilter struct {
	UserID string
}

// NewReport - входные данные для создания заявки
type NewReport struct {
	Address     string
	Description string
	Location    *Location
}

// ReportUpdate - частичное обновление заявки; nil означает "не менять"
type ReportUpdate struct {
	Address     *string
	Status      *ReportStatus
	Description *string
}

// IsEmpty сообщает, что ни одно поле не задано
func (u ReportUpdate) IsEmpty() bool {
	return u.Address == nil && u.Status == nil && u.Description == nil
}

// ReportView - заявка вместе с дочерними записями и производными счетчиками
type ReportView struct {
	Report
	OnGoings     []*OnGoingView
	OnGoingCount int
	ArrivedCount int
	LeftCount    int
	// Distance в километрах от точки просмотра; nil, если расстояние не вычислялось
	Distance *float64
}
