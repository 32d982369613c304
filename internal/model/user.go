package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID           int64              `json:"id"`
	Username     string             `json:"username"`
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	PasswordHash string             `json:"-"`
	IsStaff      bool               `json:"is_staff"`
	IsSuperuser  bool               `json:"is_superuser"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}
