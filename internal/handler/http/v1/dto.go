package v1

import (
	"time"
)

// Envelope - общий формат всех ответов API
// @Description Общий формат ответа
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody описывает ошибку в ответе
// @Description Описание ошибки
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateReportRequest DTO для создания заявки
// @Description DTO для создания заявки о помощи
type CreateReportRequest struct {
	Address     string   `json:"address" validate:"required,max=500"`
	Description string   `json:"description" validate:"required,max=5000"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdateReportRequest DTO для частичного обновления заявки; отсутствующие поля не меняются
// @Description DTO для обновления заявки
type UpdateReportRequest struct {
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed rejected"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// ViewerQuery - необязательная точка просмотра для вычисления расстояния
type ViewerQuery struct {
	Latitude  *float64 `form:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `form:"longitude" validate:"omitempty,longitude"`
}

// CreateOnGoingRequest DTO для начала поездки к заявке
// @Description DTO для создания записи "в пути"
type CreateOnGoingRequest struct {
	ReportID int64 `json:"reportId" validate:"required,gt=0"`
	Minutes  *int  `json:"minutes" validate:"required,gte=0"`
}

// UpdateOnGoingStatusRequest DTO для смены статуса поездки
// @Description DTO для смены статуса поездки
type UpdateOnGoingStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=on_the_way arrived left cancelled"`
	Minutes *int   `json:"minutes,omitempty" validate:"omitempty,gte=0"`
}

// UpsertUserRequest DTO для создания или обновления профиля
// @Description DTO для профиля пользователя
type UpsertUserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"required,tw_mobile"`
}

// ReportResponse DTO заявки
// @Description Заявка о помощи
type ReportResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReportViewResponse DTO заявки со списком поездок и счетчиками
// @Description Заявка вместе с волонтерами в пути
type ReportViewResponse struct {
	ReportResponse
	Distance     *float64           `json:"distance,omitempty"`
	OnGoings     []*OnGoingResponse `json:"onGoings"`
	OnGoingCount int                `json:"onGoingCount"`
	ArrivedCount int                `json:"arrivedCount"`
	LeftCount    int                `json:"leftCount"`
}

// OnGoingResponse DTO поездки волонтера
// @Description Запись "в пути"
type OnGoingResponse struct {
	ID        int64           `json:"id"`
	ReportID  int64           `json:"reportId"`
	UserID    string          `json:"userId"`
	Status    string          `json:"status"`
	Minutes   int             `json:"minutes"`
	UserName  string          `json:"userName"`
	UserPhone string          `json:"userPhone"`
	Report    *ReportResponse `json:"report,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UserResponse DTO профиля
// @Description Профиль пользователя
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
