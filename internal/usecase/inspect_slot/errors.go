package inspect_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (в том числе времени)
	ErrInvalidInput = errors.New("invalid input data")
)
