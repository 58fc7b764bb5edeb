package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go_5_flashcard_review/internal/model"
)

// ErrEmptyBody はリクエストボディが空だったことを表します (ボディ省略可のAPIで判定に使う)
var ErrEmptyBody = errors.New("request body is empty")

// maxJSONBodyBytes はJSONリクエストボディの上限です
const maxJSONBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", errors.Join(model.ErrInvalidInput, ErrEmptyBody))
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", errors.Join(model.ErrInvalidInput, ErrEmptyBody))
		}
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body must be valid JSON.", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// DecodeAndValidate はデコード後に validate タグで検証します
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	if err := Validator.Struct(dst); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return NewValidationErrorResponse(errs)
		}
		return model.NewAppError("VALIDATION_ERROR", "Request validation failed.", "", model.ErrInvalidInput)
	}
	return nil
}
