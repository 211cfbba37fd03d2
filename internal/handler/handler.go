package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/colonyops/mission-manager/backend/internal/config"
	"github.com/colonyops/mission-manager/backend/internal/domain"
)

type JobRepository interface {
	GetAllJobs() ([]*domain.Job, error)
	GetJobByID(id int64) (*domain.Job, error)
	CheckJobIfExists(id int64) (bool, error)
	CreateJob(job *domain.Job) error
	UpdateJob(job *domain.Job) error
	DeleteJob(id int64) error
}

type UserRepository interface {
	GetAllUsers() ([]*domain.User, error)
	GetUserByID(id int64) (*domain.User, error)
	CheckEmailIfExists(email string) (bool, error)
	CreateUser(user *domain.User) error
	UpdateUser(user *domain.User) error
	DeleteUser(id int64) error
}

type Repository interface {
	JobRepository
	UserRepository
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository Repository

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo Repository) *Handler {
	return &Handler{
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		config:     cfg,
		repository: repo,

		Mux: chi.NewRouter(),
	}
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", h.GetAllJobs)
		r.Post("/", h.CreateJob)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.jobRecord)
			r.Get("/", h.GetJob)
			r.Put("/", h.UpdateJob)
			r.Delete("/", h.DeleteJob)
		})
	})

	h.Mux.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.GetAllUsers)
		r.Post("/", h.CreateUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.userRecord)
			r.Get("/", h.GetUser)
			r.Put("/", h.UpdateUser)
			r.Delete("/", h.DeleteUser)
		})
	})
}
