package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/moneyy-app/savings-service/internal/config"
	"github.com/moneyy-app/savings-service/internal/models"
	"github.com/moneyy-app/savings-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword is returned when the supplied password does not
// match the stored hash.
var ErrInvalidPassword = errors.New("invalid password")

// recentTransactionLimit caps the transaction list on the home summary.
const recentTransactionLimit = 5

// Store is the data access surface the service needs
type Store interface {
	FindUserByUsername(username string) (*models.User, error)
	RecentTransactions(userID, limit int) ([]models.Transaction, error)
	BudgetsByUser(userID int) ([]models.Budget, error)
	EnsureSchema() error
	SeedDemoData(user *models.User, transactions []models.Transaction, budgets []models.Budget) error
}

// Service handles business logic
type Service struct {
	repo   Store
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg}
}

// Authenticate resolves a username/password pair to the stored user.
// Returns repository.ErrNotFound for an unknown username and
// ErrInvalidPassword on a hash mismatch.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	s.log.Infof("User authenticated: %s", user.Username)
	return user, nil
}

// HomeSummary collects the user's most recent transactions and all of
// their budget rows.
func (s *Service) HomeSummary(userID int) (*models.HomeSummary, error) {
	transactions, err := s.repo.RecentTransactions(userID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}
	budgets, err := s.repo.BudgetsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &models.HomeSummary{
		IsNewUser:          len(transactions) == 0 && len(budgets) == 0,
		RecentTransactions: transactions,
		Budget:             budgets,
	}, nil
}

// Bootstrap ensures the schema exists and seeds the demo user with
// sample rows on first start. Safe to run on every start.
func (s *Service) Bootstrap() error {
	if err := s.repo.EnsureSchema(); err != nil {
		return err
	}

	if s.config.SeedPassword == "" {
		s.log.Warn("SEED_PASSWORD not set, skipping demo data")
		return nil
	}

	_, err := s.repo.FindUserByUsername(s.config.SeedUser)
	if err == nil {
		s.log.Info("Seed data already exists")
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.config.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &models.User{
		Username:     s.config.SeedUser,
		Email:        s.config.SeedEmail,
		PasswordHash: string(hashed),
	}
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(1000), Description: "Salary", Date: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(-200), Description: "Groceries", Date: time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []models.Budget{
		{Amount: decimal.NewFromInt(5000), Category: "Food"},
		{Amount: decimal.NewFromInt(3000), Category: "Transport"},
	}

	if err := s.repo.SeedDemoData(user, transactions, budgets); err != nil {
		return err
	}

	s.log.Infof("Seed data created for user %s", user.Username)
	return nil
}
