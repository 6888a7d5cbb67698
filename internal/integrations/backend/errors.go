package backend

import "errors"

var (
	// ErrNotFound возвращается, когда бэкенд ответил 404
	ErrNotFound = errors.New("backend client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backend client: internal error")

	// ErrUnavailable возвращается, когда бэкенд недоступен или ответил 5xx
	ErrUnavailable = errors.New("backend client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("backend client: invalid response")
)
