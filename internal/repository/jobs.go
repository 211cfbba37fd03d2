package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	query := `
		SELECT id, job, team_leader, work_size, collaborators, start_date, end_date, is_finished FROM jobs
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `
		SELECT id, job, team_leader, work_size, collaborators, start_date, end_date, is_finished
		FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanJob(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) CheckJobIfExists(id int64) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}

func (r *Repository) CreateJob(job *domain.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO jobs (id, job, team_leader, work_size, collaborators, start_date, end_date, is_finished)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	args := []any{job.ID, job.Job, job.TeamLeader, job.WorkSize, job.Collaborators, job.StartDate, job.EndDate, job.IsFinished}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateJob(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			job = $1,
			team_leader = $2,
			work_size = $3,
			collaborators = $4,
			start_date = $5,
			end_date = $6,
			is_finished = $7
		WHERE id = $8
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{job.Job, job.TeamLeader, job.WorkSize, job.Collaborators, job.StartDate, job.EndDate, job.IsFinished, job.ID}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJob(id int64) error {
	query := `
		DELETE FROM jobs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

type rowScanner interface {
	Scan(dst ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	job := &domain.Job{}

	var (
		teamLeader sql.NullInt64
		startDate  sql.NullTime
		endDate    sql.NullTime
	)

	dst := []any{&job.ID, &job.Job, &teamLeader, &job.WorkSize, &job.Collaborators, &startDate, &endDate, &job.IsFinished}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	if teamLeader.Valid {
		job.TeamLeader = &teamLeader.Int64
	}
	if startDate.Valid {
		job.StartDate = &domain.Date{Time: startDate.Time}
	}
	if endDate.Valid {
		job.EndDate = &domain.Date{Time: endDate.Time}
	}

	return job, nil
}
