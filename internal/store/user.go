package store

import (
	"context"
	"fmt"

	"gideon/internal/database"
	"gideon/internal/model"
)

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", mapNoRows(err))
	}
	return u, nil
}

// CreateUser 新增使用者；email 重複時回傳 ErrEmailTaken
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrEmailTaken)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
