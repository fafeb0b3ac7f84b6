package usecase

import (
	"errors"
	"fmt"
	"math"
)

// usecaseが返すHTTPエラー。handlerの境界で {error: string} に変換される。
// Reasonは表示文言とは独立した分類ラベル（メトリクス用）。
type HTTPError struct {
	Status  int
	Reason  string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func NewHTTPErrorWithReason(status int, reason string, message string) error {
	return &HTTPError{
		Status:  status,
		Reason:  reason,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// セント単位で四捨五入（0.5は切り上げ）
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
