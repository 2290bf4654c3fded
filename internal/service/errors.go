package service

import "errors"

// Виды ошибок бизнес-логики. Обработчики HTTP сопоставляют их со статусами ответа.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// Error - ошибка, сообщение которой можно показать вызывающему
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

var (
	ErrReportNotFound      = &Error{Kind: ErrNotFound, Message: "Report not found"}
	ErrOwnedReportNotFound = &Error{Kind: ErrNotFound, Message: "Report not found or not owned by user"}
	ErrOnGoingNotFound     = &Error{Kind: ErrNotFound, Message: "OnGoing record not found or not owned by user"}
	ErrProfileNotFound     = &Error{Kind: ErrNotFound, Message: "User not found"}

	// ErrActiveTrip - у волонтера уже есть поездка on_the_way или arrived
	ErrActiveTrip = &Error{Kind: ErrConflict, Message: "Please report leaving your current trip first"}

	ErrEmptyField          = &Error{Kind: ErrInvalidInput, Message: "address and description must not be empty"}
	ErrEmptyName           = &Error{Kind: ErrInvalidInput, Message: "name must not be empty"}
	ErrInvalidPhone        = &Error{Kind: ErrInvalidInput, Message: "phone must be a mobile number like 0912345678"}
	ErrInvalidLocation     = &Error{Kind: ErrInvalidInput, Message: "latitude or longitude out of range"}
	ErrInvalidReportStatus = &Error{Kind: ErrInvalidInput, Message: "status must be one of pending, processing, completed, rejected"}
	ErrInvalidTripStatus   = &Error{Kind: ErrInvalidInput, Message: "status must be one of on_the_way, arrived, left, cancelled"}
	ErrNegativeMinutes     = &Error{Kind: ErrInvalidInput, Message: "minutes must not be negative"}
)
