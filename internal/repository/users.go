package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := `
		SELECT id, surname, name, age, position, speciality, address, email, hashed_password, modified_date FROM users
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	query := `
		SELECT id, surname, name, age, position, speciality, address, email, hashed_password, modified_date
		FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanUser(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}

func (r *Repository) CreateUser(user *domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO users (surname, name, age, position, speciality, address, email, hashed_password, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	args := []any{user.Surname, user.Name, user.Age, user.Position, user.Speciality, user.Address, user.Email, user.HashedPassword, user.ModifiedDate}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	query := `
		UPDATE users
		SET
			surname = $1,
			name = $2,
			age = $3,
			position = $4,
			speciality = $5,
			address = $6,
			email = $7,
			hashed_password = $8,
			modified_date = $9
		WHERE id = $10
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{user.Surname, user.Name, user.Age, user.Position, user.Speciality, user.Address, user.Email, user.HashedPassword, user.ModifiedDate, user.ID}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}

	var age sql.NullInt32

	dst := []any{&user.ID, &user.Surname, &user.Name, &age, &user.Position, &user.Speciality, &user.Address, &user.Email, &user.HashedPassword, &user.ModifiedDate}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	if age.Valid {
		user.Age = &age.Int32
	}

	return user, nil
}
