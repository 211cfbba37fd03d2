package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

type successResponse struct {
	Success string `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	requestID, _ := r.Context().Value(RequestIDCtx).(string)
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "requestId", requestID, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// readPartialJSON 在解码的同时记录请求体中出现过的键，
// 用于区分「未提供字段」和「显式置空字段」
func (h *Handler) readPartialJSON(r *http.Request, v any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return nil, err
	}

	return fields, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) success(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, successResponse{Success: msg})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

// badRequest 统一返回固定的 Invalid input，不向调用方暴露解析细节
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, http.StatusBadRequest, "Invalid input")
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.fail(w, r, http.StatusInternalServerError, "Internal server error")
}
