package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtx).(*domain.User)
	h.writeJSON(w, r, http.StatusOK, user)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Surname        *string `json:"surname"`
		Name           *string `json:"name"`
		Age            *int32  `json:"age"`
		Position       *string `json:"position"`
		Speciality     *string `json:"speciality"`
		Address        *string `json:"address"`
		Email          *string `json:"email" validate:"required"`
		HashedPassword *string `json:"hashed_password"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r)
		return
	}

	isExists, err := h.repository.CheckEmailIfExists(*req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.fail(w, r, http.StatusBadRequest, "Email already exists")
		return
	}

	user := &domain.User{
		Age:          req.Age,
		Email:        *req.Email,
		ModifiedDate: domain.DateTime{Time: time.Now()},
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Speciality != nil {
		user.Speciality = *req.Speciality
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.HashedPassword != nil {
		// 按约定原样存储，服务端不做任何散列
		user.HashedPassword = *req.HashedPassword
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			h.fail(w, r, http.StatusBadRequest, "Email already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.success(w, r, http.StatusCreated, "User added")
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtx).(*domain.User)

	var req struct {
		Surname        *string `json:"surname"`
		Name           *string `json:"name"`
		Age            *int32  `json:"age"`
		Position       *string `json:"position"`
		Speciality     *string `json:"speciality"`
		Address        *string `json:"address"`
		Email          *string `json:"email"`
		HashedPassword *string `json:"hashed_password"`
	}

	fields, err := h.readPartialJSON(r, &req)
	if err != nil || len(fields) == 0 {
		h.badRequest(w, r)
		return
	}

	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Speciality != nil {
		user.Speciality = *req.Speciality
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.HashedPassword != nil {
		user.HashedPassword = *req.HashedPassword
	}
	if _, ok := fields["age"]; ok {
		user.Age = req.Age
	}

	// 无论本次是否改动了其他字段都要刷新修改时间
	user.ModifiedDate = domain.DateTime{Time: time.Now()}

	if err := h.repository.UpdateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			h.fail(w, r, http.StatusBadRequest, "Email already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.success(w, r, http.StatusOK, "User updated")
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserCtx).(*domain.User)

	if err := h.repository.DeleteUser(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, "User deleted")
}
