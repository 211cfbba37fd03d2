package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mission-manager/backend/internal/config"
	"github.com/colonyops/mission-manager/backend/internal/domain"
)

// fakeRepository 在内存中模拟存储层，并模拟唯一约束的违反错误
type fakeRepository struct {
	jobs       map[int64]*domain.Job
	users      map[int64]*domain.User
	nextUserID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		jobs:  make(map[int64]*domain.Job),
		users: make(map[int64]*domain.User),
	}
}

func (f *fakeRepository) GetAllJobs() ([]*domain.Job, error) {
	jobs := make([]*domain.Job, 0, len(f.jobs))
	for _, job := range f.jobs {
		jobCopy := *job
		jobs = append(jobs, &jobCopy)
	}
	return jobs, nil
}

func (f *fakeRepository) GetJobByID(id int64) (*domain.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	jobCopy := *job
	return &jobCopy, nil
}

func (f *fakeRepository) CheckJobIfExists(id int64) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeRepository) CreateJob(job *domain.Job) error {
	if _, ok := f.jobs[job.ID]; ok {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "jobs_pkey"}
	}
	jobCopy := *job
	f.jobs[job.ID] = &jobCopy
	return nil
}

func (f *fakeRepository) UpdateJob(job *domain.Job) error {
	jobCopy := *job
	f.jobs[job.ID] = &jobCopy
	return nil
}

func (f *fakeRepository) DeleteJob(id int64) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeRepository) GetAllUsers() ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(f.users))
	for _, user := range f.users {
		userCopy := *user
		users = append(users, &userCopy)
	}
	return users, nil
}

func (f *fakeRepository) GetUserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	userCopy := *user
	return &userCopy, nil
}

func (f *fakeRepository) CheckEmailIfExists(email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateUser(user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	userCopy := *user
	f.users[user.ID] = &userCopy
	return nil
}

func (f *fakeRepository) UpdateUser(user *domain.User) error {
	for id, existing := range f.users {
		if id != user.ID && existing.Email == user.Email {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		}
	}
	userCopy := *user
	f.users[user.ID] = &userCopy
	return nil
}

func (f *fakeRepository) DeleteUser(id int64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeRepository) addUser(user domain.User) *domain.User {
	f.nextUserID++
	user.ID = f.nextUserID
	if user.ModifiedDate.IsZero() {
		user.ModifiedDate = domain.DateTime{Time: time.Now()}
	}
	f.users[user.ID] = &user
	return &user
}

func (f *fakeRepository) addJob(job domain.Job) *domain.Job {
	f.jobs[job.ID] = &job
	return &job
}

func newTestHandler(t *testing.T, repo *fakeRepository) *Handler {
	t.Helper()

	h := NewHandler(&config.Config{}, repo)
	h.RegisterRoutes()
	return h
}

func doJSON(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	return doRaw(t, h, method, path, reader)
}

func doRaw(t *testing.T, h *Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	rw := httptest.NewRecorder()
	h.Mux.ServeHTTP(rw, req)
	return rw
}

func decodeBody(t *testing.T, rw *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rw *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	list := []map[string]any{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &list))
	return list
}
