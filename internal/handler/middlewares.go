package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tomasen/realip"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := uuid.NewRandom()
		ctx := context.WithValue(r.Context(), RequestIDCtx, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		requestID, _ := r.Context().Value(RequestIDCtx).(string)
		slog.Info("已处理请求",
			"status", rw.StatusCode,
			"ip", realip.FromRequest(r),
			"method", r.Method,
			"path", r.URL.Path,
			"requestId", requestID,
			"duration", duration,
		)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// jobRecord 按路径中的 id 加载任务记录，不存在时直接返回 404
func (h *Handler) jobRecord(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			// 路径段不是整数时等同于记录不存在
			h.fail(w, r, http.StatusNotFound, "Job not found")
			return
		}

		job, err := h.repository.GetJobByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.fail(w, r, http.StatusNotFound, "Job not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), JobCtx, job)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) userRecord(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			h.fail(w, r, http.StatusNotFound, "User not found")
			return
		}

		user, err := h.repository.GetUserByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.fail(w, r, http.StatusNotFound, "User not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
