package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidQuantity   = errors.New("invalid quantity, must be a positive integer")
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInvalidRating     = errors.New("invalid rating, must be between 1 and 5")
)

// UpstreamError ошибка обращения к удаленному сервису: сеть, не-2xx статус или
// неожиданный формат ответа. Никогда не маскируется под успех.
type UpstreamError struct {
	Service string
	Err     error
}

func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %s", e.Service, e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PersistenceError ошибка записи в локальное хранилище. Выделена в отдельный тип, так как
// при покупке возникает уже после применения удаленных эффектов и должна быть явно видна вызывающему.
type PersistenceError struct {
	Err error
}

func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s", e.Err.Error())
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
