package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dealgrind/underwriting-service/internal/models"
)

// ErrNotFound is returned when a requested row does not exist or does not
// belong to the requesting user.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO underwriting.users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM underwriting.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateAnalysis stores an analysis and its computed metrics
func (r *Repository) CreateAnalysis(sa *models.SavedAnalysis) error {
	payload, err := json.Marshal(sa.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	metrics, err := json.Marshal(sa.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	query := `
		INSERT INTO underwriting.analyses (user_id, name, strategy, payload, metrics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, sa.UserID, sa.Name, string(sa.Analysis.Strategy), payload, metrics).
		Scan(&sa.ID, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns all analyses belonging to a user, newest first
func (r *Repository) ListAnalyses(userID int64) ([]*models.SavedAnalysis, error) {
	query := `
		SELECT id, user_id, name, payload, metrics, created_at, updated_at
		FROM underwriting.analyses
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var result []*models.SavedAnalysis
	for rows.Next() {
		sa, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return result, nil
}

// FindAnalysisByID retrieves one analysis owned by the given user
func (r *Repository) FindAnalysisByID(id, userID int64) (*models.SavedAnalysis, error) {
	query := `
		SELECT id, user_id, name, payload, metrics, created_at, updated_at
		FROM underwriting.analyses
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(query, id, userID)
	sa, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return sa, nil
}

// DeleteAnalysis removes an analysis owned by the given user
func (r *Repository) DeleteAnalysis(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM underwriting.analyses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("analysis %d: %w", id, ErrNotFound)
	}
	return nil
}

// BalloonDue is one stored deal whose balloon refinance is approaching.
type BalloonDue struct {
	Email    string
	Username string
	DealName string
	DueDate  time.Time
	Metrics  *models.Metrics
}

// ListBalloonDueBefore returns deals with a balloon payment due between now
// and the cutoff, joined with their owners for notification.
func (r *Repository) ListBalloonDueBefore(cutoff time.Time) ([]BalloonDue, error) {
	query := `
		SELECT u.email, u.username, a.name,
		       (a.payload->'balloon'->>'due_date')::timestamptz,
		       a.metrics
		FROM underwriting.analyses a
		JOIN underwriting.users u ON u.id = a.user_id
		WHERE (a.payload->'balloon'->>'has_balloon_payment')::boolean = TRUE
		  AND (a.payload->'balloon'->>'due_date')::timestamptz BETWEEN CURRENT_TIMESTAMP AND $1`
	rows, err := r.db.Query(query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list balloon deals: %w", err)
	}
	defer rows.Close()

	var due []BalloonDue
	for rows.Next() {
		var d BalloonDue
		var metrics []byte
		if err := rows.Scan(&d.Email, &d.Username, &d.DealName, &d.DueDate, &metrics); err != nil {
			return nil, fmt.Errorf("failed to scan balloon deal: %w", err)
		}
		if len(metrics) > 0 {
			d.Metrics = &models.Metrics{}
			if err := json.Unmarshal(metrics, d.Metrics); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
			}
		}
		due = append(due, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balloon deals: %w", err)
	}
	return due, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*models.SavedAnalysis, error) {
	sa := &models.SavedAnalysis{}
	var payload, metrics []byte
	err := row.Scan(&sa.ID, &sa.UserID, &sa.Name, &payload, &metrics, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &sa.Analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	if len(metrics) > 0 {
		sa.Metrics = &models.Metrics{}
		if err := json.Unmarshal(metrics, sa.Metrics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
		}
	}
	return sa, nil
}
