package domain

import (
	"errors"
	"fmt"
)

// ErrNoticeNotFound возвращается, когда объявление с запрошенным
// publication number не найдено во внешнем API.
var ErrNoticeNotFound = errors.New("notice not found")

// UpstreamError - внешнее API ответило не-2xx статусом.
// Несёт код статуса и усечённое тело ответа для диагностики.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ted api returned status %d: %s", e.StatusCode, e.Detail)
}

// ConnectivityError - до внешнего API не удалось достучаться
// (отказ соединения, таймаут). Отличается от UpstreamError:
// ответа от сервера не было вообще.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("ted api unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
