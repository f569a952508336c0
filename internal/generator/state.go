package generator

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable 表示模型未能載入，呼叫端應回報 500
var ErrModelUnavailable = errors.New("generator: model unavailable")

// ModelState 是 Loaded(model) 或 Unavailable(reason) 兩者之一，使用前必須檢查
type ModelState[T any] struct {
	model  T
	loaded bool
	reason string
}

func Loaded[T any](m T) ModelState[T] {
	return ModelState[T]{model: m, loaded: true}
}

func Unavailable[T any](reason string) ModelState[T] {
	return ModelState[T]{reason: reason}
}

func (s ModelState[T]) IsLoaded() bool { return s.loaded }

// Reason 回傳不可用的原因；Loaded 時為空字串
func (s ModelState[T]) Reason() string { return s.reason }

// Get 取出模型；Unavailable 時回傳包裝 ErrModelUnavailable 的錯誤
func (s ModelState[T]) Get() (T, error) {
	if !s.loaded {
		var zero T
		if s.reason == "" {
			return zero, ErrModelUnavailable
		}
		return zero, fmt.Errorf("%w: %s", ErrModelUnavailable, s.reason)
	}
	return s.model, nil
}
