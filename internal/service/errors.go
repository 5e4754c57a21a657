package service

import "errors"

// Виды ошибок ядра. Обработчики HTTP сопоставляют их со статусами 404 и 400.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
