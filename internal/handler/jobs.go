package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	h.writeJSON(w, r, http.StatusOK, job)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID            *int64       `json:"id" validate:"required"`
		Job           *string      `json:"job"`
		TeamLeader    *int64       `json:"team_leader"`
		WorkSize      *int32       `json:"work_size"`
		Collaborators *string      `json:"collaborators"`
		StartDate     *domain.Date `json:"start_date"`
		EndDate       *domain.Date `json:"end_date"`
		IsFinished    *bool        `json:"is_finished"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r)
		return
	}

	isExists, err := h.repository.CheckJobIfExists(*req.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.fail(w, r, http.StatusBadRequest, "Id already exists")
		return
	}

	// 未提供的字段按默认值插入
	job := &domain.Job{
		ID:         *req.ID,
		TeamLeader: req.TeamLeader,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if req.Job != nil {
		job.Job = *req.Job
	}
	if req.WorkSize != nil {
		job.WorkSize = *req.WorkSize
	}
	if req.Collaborators != nil {
		job.Collaborators = *req.Collaborators
	}
	if req.IsFinished != nil {
		job.IsFinished = *req.IsFinished
	}

	if err := h.repository.CreateJob(job); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
			// 与存在性检查并发时由主键约束兜底
			h.fail(w, r, http.StatusBadRequest, "Id already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.success(w, r, http.StatusCreated, "Job added")
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	var req struct {
		Job           *string      `json:"job"`
		TeamLeader    *int64       `json:"team_leader"`
		WorkSize      *int32       `json:"work_size"`
		Collaborators *string      `json:"collaborators"`
		StartDate     *domain.Date `json:"start_date"`
		EndDate       *domain.Date `json:"end_date"`
		IsFinished    *bool        `json:"is_finished"`
	}

	fields, err := h.readPartialJSON(r, &req)
	if err != nil || len(fields) == 0 {
		h.badRequest(w, r)
		return
	}

	if req.Job != nil {
		job.Job = *req.Job
	}
	if req.WorkSize != nil {
		job.WorkSize = *req.WorkSize
	}
	if req.Collaborators != nil {
		job.Collaborators = *req.Collaborators
	}
	if req.IsFinished != nil {
		job.IsFinished = *req.IsFinished
	}

	// 可空字段区分「未提供」和「显式置空」：键出现时采用请求值，null 即清空
	if _, ok := fields["team_leader"]; ok {
		job.TeamLeader = req.TeamLeader
	}
	if _, ok := fields["start_date"]; ok {
		job.StartDate = req.StartDate
	}
	if _, ok := fields["end_date"]; ok {
		job.EndDate = req.EndDate
	}

	if err := h.repository.UpdateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, "Job updated")
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	if err := h.repository.DeleteJob(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, "Job deleted")
}
