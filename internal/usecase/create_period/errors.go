package create_period

import "errors"

var (
	// ErrInvalidCategory возвращается при неизвестной категории периода
	ErrInvalidCategory = errors.New("invalid period category")

	// ErrMissingStartAt возвращается, когда дата начала периода не передана
	ErrMissingStartAt = errors.New("start time is required")

	// ErrInvalidTimeRange возвращается, когда конец периода не позже начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrTitleTooLong возвращается при превышении допустимой длины названия
	ErrTitleTooLong = errors.New("title is too long")

	// ErrNotesTooLong возвращается при превышении допустимой длины заметок
	ErrNotesTooLong = errors.New("notes are too long")

	// ErrLinkMismatch возвращается, когда переданная связка не соответствует категории
	ErrLinkMismatch = errors.New("reservation link does not match period category")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_period: internal error")
)
