package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

func int32Ptr(v int32) *int32 { return &v }

func sampleUsers(repo *fakeRepository) {
	repo.addUser(domain.User{
		Surname:        "Doe",
		Name:           "John",
		Age:            int32Ptr(30),
		Position:       "Manager",
		Speciality:     "IT",
		Address:        "123 Main St",
		Email:          "john.doe@example.com",
		HashedPassword: "hashed_password_1",
	})
	repo.addUser(domain.User{
		Surname:        "Smith",
		Name:           "Alice",
		Age:            int32Ptr(25),
		Position:       "Developer",
		Speciality:     "Web",
		Address:        "456 Elm St",
		Email:          "alice.smith@example.com",
		HashedPassword: "hashed_password_2",
	})
}

func TestGetAllUsers(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, rw.Code)
	assert.Len(t, decodeList(t, rw), 2)
}

func TestGetUserByID(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodGet, "/api/users/1", nil)

	require.Equal(t, http.StatusOK, rw.Code)
	user := decodeBody(t, rw)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "Doe", user["surname"])
	assert.Equal(t, "John", user["name"])
	assert.NotEmpty(t, user["modified_date"])

	// 密码散列不应该出现在响应中
	assert.NotContains(t, user, "hashed_password")
}

func TestGetUserByInvalidID(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodGet, "/api/users/999", nil)

	require.Equal(t, http.StatusNotFound, rw.Code)
	assert.Equal(t, "User not found", decodeBody(t, rw)["error"])
}

func TestCreateUser(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodPost, "/api/users", map[string]any{
		"surname":         "Khan",
		"name":            "Ali",
		"age":             35,
		"position":        "Engineer",
		"speciality":      "Robotics",
		"address":         "789 Oak St",
		"email":           "ali.khan@example.com",
		"hashed_password": "hashed_password_3",
	})

	require.Equal(t, http.StatusCreated, rw.Code)
	assert.Equal(t, "User added", decodeBody(t, rw)["success"])

	rw = doJSON(t, h, http.MethodGet, "/api/users/3", nil)
	require.Equal(t, http.StatusOK, rw.Code)
	user := decodeBody(t, rw)
	assert.Equal(t, "Khan", user["surname"])
	assert.Equal(t, float64(35), user["age"])
	assert.Equal(t, "ali.khan@example.com", user["email"])
	assert.NotEmpty(t, user["modified_date"])
}

func TestCreateUserWithExistingEmail(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodPost, "/api/users", map[string]any{
		"surname": "Doe",
		"name":    "Jane",
		"email":   "john.doe@example.com",
	})

	require.Equal(t, http.StatusBadRequest, rw.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, rw)["error"])
}

func TestCreateUserWithoutEmail(t *testing.T) {
	repo := newFakeRepository()
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodPost, "/api/users", map[string]any{
		"surname": "Doe",
		"name":    "Jane",
	})

	require.Equal(t, http.StatusBadRequest, rw.Code)
	assert.Equal(t, "Invalid input", decodeBody(t, rw)["error"])
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodDelete, "/api/users/2", nil)
	require.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "User deleted", decodeBody(t, rw)["success"])

	rw = doJSON(t, h, http.MethodGet, "/api/users", nil)
	assert.Len(t, decodeList(t, rw), 1)

	rw = doJSON(t, h, http.MethodDelete, "/api/users/2", nil)
	require.Equal(t, http.StatusNotFound, rw.Code)
	assert.Equal(t, "User not found", decodeBody(t, rw)["error"])
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	before, err := repo.GetUserByID(1)
	require.NoError(t, err)

	rw := doJSON(t, h, http.MethodPut, "/api/users/1", map[string]any{"position": "Director"})
	require.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "User updated", decodeBody(t, rw)["success"])

	after, err := repo.GetUserByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Director", after.Position)
	assert.Equal(t, before.Surname, after.Surname)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.HashedPassword, after.HashedPassword)

	// 即使只改了一个字段也要刷新修改时间
	assert.False(t, after.ModifiedDate.Before(before.ModifiedDate.Time))
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodPut, "/api/users/2", map[string]any{"email": "john.doe@example.com"})

	require.Equal(t, http.StatusBadRequest, rw.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, rw)["error"])
}

func TestUpdateUserInvalidID(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doJSON(t, h, http.MethodPut, "/api/users/999", map[string]any{"name": "Nobody"})

	require.Equal(t, http.StatusNotFound, rw.Code)
	assert.Equal(t, "User not found", decodeBody(t, rw)["error"])
}

func TestUpdateUserEmptyBody(t *testing.T) {
	repo := newFakeRepository()
	sampleUsers(repo)
	h := newTestHandler(t, repo)

	rw := doRaw(t, h, http.MethodPut, "/api/users/1", strings.NewReader("{}"))

	require.Equal(t, http.StatusBadRequest, rw.Code)
	assert.Equal(t, "Invalid input", decodeBody(t, rw)["error"])
}
