package seed

import (
	"log/slog"
	"time"

	"github.com/colonyops/mission-manager/backend/internal/domain"
	"github.com/colonyops/mission-manager/backend/internal/repository"
)

func mustDate(s string) *domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func int64Ptr(v int64) *int64 { return &v }
func int32Ptr(v int32) *int32 { return &v }

// SeedSampleData 插入一组固定的示例任务和用户，方便本地联调
func SeedSampleData(r *repository.Repository) {
	jobs := []*domain.Job{
		{
			ID:            1,
			Job:           "Test Job 1",
			TeamLeader:    int64Ptr(1),
			WorkSize:      5,
			Collaborators: "2,3",
			StartDate:     mustDate("2023-01-01"),
			EndDate:       mustDate("2023-12-31"),
			IsFinished:    false,
		},
		{
			ID:            2,
			Job:           "Test Job 2",
			TeamLeader:    int64Ptr(2),
			WorkSize:      10,
			Collaborators: "1,3",
			StartDate:     mustDate("2023-01-01"),
			EndDate:       mustDate("2023-12-31"),
			IsFinished:    true,
		},
	}

	for _, job := range jobs {
		isExists, err := r.CheckJobIfExists(job.ID)
		if err != nil {
			slog.Error("检查任务是否存在失败", "id", job.ID, "error", err)
			continue
		}
		if isExists {
			continue
		}

		if err := r.CreateJob(job); err != nil {
			slog.Error("插入任务失败", "id", job.ID, "error", err)
		}
	}

	users := []*domain.User{
		{
			Surname:        "Doe",
			Name:           "John",
			Age:            int32Ptr(30),
			Position:       "Manager",
			Speciality:     "IT",
			Address:        "123 Main St",
			Email:          "john.doe@example.com",
			HashedPassword: "hashed_password_1",
		},
		{
			Surname:        "Smith",
			Name:           "Alice",
			Age:            int32Ptr(25),
			Position:       "Developer",
			Speciality:     "Web",
			Address:        "456 Elm St",
			Email:          "alice.smith@example.com",
			HashedPassword: "hashed_password_2",
		},
	}

	for _, user := range users {
		isExists, err := r.CheckEmailIfExists(user.Email)
		if err != nil {
			slog.Error("检查邮箱是否存在失败", "email", user.Email, "error", err)
			continue
		}
		if isExists {
			continue
		}

		user.ModifiedDate = domain.DateTime{Time: time.Now()}
		if err := r.CreateUser(user); err != nil {
			slog.Error("插入用户失败", "email", user.Email, "error", err)
		}
	}

	slog.Info("示例数据插入完成")
}
