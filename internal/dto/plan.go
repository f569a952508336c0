// File: internal/dto/plan.go
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Number 同時接受 JSON 數字、數字字串與表單值，保留原始文字待之後解析
//
// 欄位有出現（即使是空字串）就算 Present；null 與缺欄位視為未提供。
// 無法解析的值（例如 true、{}）不會讓 Bind 失敗，而是在 Int 時回報錯誤
type Number struct {
	raw     string
	present bool
	literal bool
}

// NewNumber 以表單形式的文字建立已提供的 Number
func NewNumber(s string) Number {
	return Number{raw: s, present: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = Number{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NewNumber(s)
	default:
		*n = Number{raw: string(b), present: true, literal: true}
	}
	return nil
}

// UnmarshalParam 供 echo 綁定表單欄位
func (n *Number) UnmarshalParam(s string) error {
	*n = NewNumber(s)
	return nil
}

func (n Number) Present() bool { return n.present }

func (n Number) String() string { return n.raw }

// Int 解析為整數；JSON 數字 3.0 視為 3，其餘小數、空字串與非數字回傳錯誤
func (n Number) Int() (int, error) {
	s := strings.TrimSpace(n.raw)
	if !n.present {
		return 0, errors.New("number not provided")
	}
	i, err := strconv.Atoi(s)
	if err == nil || !n.literal {
		return i, err
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, err
	}
	return int(f), nil
}

// swagger:model dto.WorkoutPlanRequest
type WorkoutPlanRequest struct {
	Goal  string `json:"goal" form:"goal" validate:"required" example:"strength"`
	Level string `json:"level" form:"level" validate:"required" example:"beginner"`
	Days  Number `json:"days" form:"days" validate:"required" swaggertype:"integer" example:"3"`
}

// swagger:model dto.NutritionPlanRequest
type NutritionPlanRequest struct {
	Diet     string `json:"diet" form:"diet" validate:"required" example:"balanced"`
	Calories Number `json:"calories" form:"calories" validate:"required" swaggertype:"integer" example:"2000"`
}

// PlanResponse 產生的計畫原樣回傳
// swagger:model dto.PlanResponse
type PlanResponse struct {
	Plan json.RawMessage `json:"plan" swaggertype:"object"`
}
