package models

import "time"

// OnGoingStatus - статус поездки волонтера
type OnGoingStatus string

const (
	OnGoingStatusOnTheWay  OnGoingStatus = "on_the_way"
	OnGoingStatusArrived   OnGoingStatus = "arrived"
	OnGoingStatusLeft      OnGoingStatus = "left"
	OnGoingStatusCancelled OnGoingStatus = "cancelled"
)

// IsValid проверяет, что статус входит в перечисление
func (s OnGoingStatus) IsValid() bool {
	switch s {
	case OnGoingStatusOnTheWay, OnGoingStatusArrived, OnGoingStatusLeft, OnGoingStatusCancelled:
		return true
	}
	return false
}

// IsActive сообщает, занимает ли поездка волонтера (on_the_way или arrived)
func (s OnGoingStatus) IsActive() bool {
	return s == OnGoingStatusOnTheWay || s == OnGoingStatusArrived
}

// OnGoing - запись о том, что волонтер направляется к заявке
type OnGoing struct {
	ID        int64         `json:"id" db:"id"`
	ReportID  int64         `json:"report_id" db:"report_id"`
	UserID    string        `json:"user_id" db:"user_id"`
	Status    OnGoingStatus `json:"status" db:"status"`
	Minutes   int           `json:"minutes" db:"minutes"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// OnGoingWithRelations - запись вместе с подгруженными связями (профиль волонтера, заявка)
type OnGoingWithRelations struct {
	OnGoing
	User   *User
	Report *Report
}

// OnGoingView - проекция записи для отображения
type OnGoingView struct {
	OnGoing
	UserName  string
	UserPhone string
	Report    *Report
}
