// File: internal/handler/validator.go
package handler

import (
	"errors"
	"reflect"

	"gideon/internal/dto"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// dto.Number 只要欄位有出現就通過 required，內容交給 Int 判斷
	v.RegisterCustomTypeFunc(numberPresence, dto.Number{})
	return &CustomValidator{validator: v}
}

func numberPresence(field reflect.Value) interface{} {
	if n, ok := field.Interface().(dto.Number); ok && n.Present() {
		return true
	}
	return nil
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FailedTags 回傳驗證失敗的 tag 集合；非 validator 錯誤時回傳 nil
func FailedTags(err error) map[string]bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	tags := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		tags[fe.Tag()] = true
	}
	return tags
}
