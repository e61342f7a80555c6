package repository

import (
	"database/sql"
	"fmt"

	"github.com/moneyy-app/savings-service/internal/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE,
		email VARCHAR(100) UNIQUE,
		password VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		amount NUMERIC,
		description VARCHAR(255),
		date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS budget (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		amount NUMERIC,
		category VARCHAR(50)
	)`,
}

// EnsureSchema creates the tables if they do not exist yet
func (r *Repository) EnsureSchema() error {
	for _, ddl := range schema {
		if _, err := r.db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// SeedDemoData inserts the demo user together with its sample
// transactions and budget rows in a single database transaction, so a
// concurrent cold start cannot leave a half-seeded user behind. When
// another instance won the race the whole call is a no-op.
func (r *Repository) SeedDemoData(user *models.User, transactions []models.Transaction, budgets []models.Budget) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
		RETURNING id`,
		user.Username, user.Email, user.PasswordHash).Scan(&user.ID)
	if err == sql.ErrNoRows {
		// Lost the race to another instance; its seed rows stand.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	for _, t := range transactions {
		if _, err := tx.Exec(`
			INSERT INTO transactions (user_id, amount, description, date)
			VALUES ($1, $2, $3, $4)`,
			user.ID, t.Amount, t.Description, t.Date); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	for _, b := range budgets {
		if _, err := tx.Exec(`
			INSERT INTO budget (user_id, amount, category)
			VALUES ($1, $2, $3)`,
			user.ID, b.Amount, b.Category); err != nil {
			return fmt.Errorf("failed to seed budget: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
