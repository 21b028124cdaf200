package periods

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден или уже удален
	ErrPeriodNotFound = errors.New("period not found")

	// ErrAccessDenied возвращается, когда период принадлежит другой компании
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("periods service: internal error")
)
