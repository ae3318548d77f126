package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20 // 1 MiB достаточно для любого запроса портала

// successResponse единый формат успешного ответа
type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// errorResponse единый формат ошибки: {success:false, message}
// Никакая ошибка не роняет handler, все коммуницируется строкой
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DecodeJSON декодирует JSON-тело запроса в dst
// Неизвестные поля отклоняются, чтобы опечатки в ключах падали сразу
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer io.Copy(io.Discard, r.Body) //nolint:errcheck

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	// Второй документ в теле - тоже ошибка
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

// RespondJSON пишет произвольный JSON-ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess пишет ответ в конверте {success:true, data}
func RespondSuccess(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, successResponse{Success: true, Data: data})
}

// RespondError пишет ошибку в конверте {success:false, message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorResponse{Success: false, Message: message})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 с generic-сообщением
// Детали остаются в логах и не утекают наружу
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
