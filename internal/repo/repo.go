package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Study is one saved floater evaluation: the configuration that went in and
// the result bundle that came out, both kept as JSON.
type Study struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// StudySummary is the listing view of a saved study, without payloads.
type StudySummary struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveStudy(ctx context.Context, userID int, name string, config, result json.RawMessage) (int, error)
	ListStudies(ctx context.Context, userID int) ([]StudySummary, error)
	GetStudy(ctx context.Context, userID, id int) (Study, error)
	DeleteStudy(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveStudy(ctx context.Context, userID int, name string, config, result json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO studies (user_id, name, config, result, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, config, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListStudies(ctx context.Context, userID int) ([]StudySummary, error) {
	query := "SELECT id, name, created_at FROM studies WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StudySummary
	for rows.Next() {
		var s StudySummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetStudy(ctx context.Context, userID, id int) (Study, error) {
	var s Study
	query := "SELECT id, name, config, result, created_at FROM studies WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&s.ID, &s.Name, &s.Config, &s.Result, &s.CreatedAt)
	return s, err
}

func (r *PostgresRepository) DeleteStudy(ctx context.Context, userID, id int) error {
	query := "DELETE FROM studies WHERE user_id=$1 AND id=$2"
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
