package dayview

import "errors"

var (
	// ErrStale возвращается загрузкой, которую обогнала более новая загрузка.
	// Результат такой загрузки не публикуется
	ErrStale = errors.New("dayview: superseded by a newer load")
)
