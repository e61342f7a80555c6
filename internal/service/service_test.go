package service

import (
	"errors"
	"io"
	"testing"

	"github.com/moneyy-app/savings-service/internal/config"
	"github.com/moneyy-app/savings-service/internal/models"
	"github.com/moneyy-app/savings-service/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore struct {
	users        map[string]*models.User
	transactions map[int][]models.Transaction
	budgets      map[int][]models.Budget
	nextID       int
	schemaCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]*models.User{},
		transactions: map[int][]models.Transaction{},
		budgets:      map[int][]models.Budget{},
		nextID:       1,
	}
}

func (f *fakeStore) FindUserByUsername(username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeStore) RecentTransactions(userID, limit int) ([]models.Transaction, error) {
	ts := f.transactions[userID]
	if len(ts) > limit {
		ts = ts[:limit]
	}
	return ts, nil
}

func (f *fakeStore) BudgetsByUser(userID int) ([]models.Budget, error) {
	return f.budgets[userID], nil
}

func (f *fakeStore) EnsureSchema() error {
	f.schemaCalls++
	return nil
}

func (f *fakeStore) SeedDemoData(user *models.User, transactions []models.Transaction, budgets []models.Budget) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	for _, t := range transactions {
		t.UserID = user.ID
		f.transactions[user.ID] = append(f.transactions[user.ID], t)
	}
	for _, b := range budgets {
		b.UserID = user.ID
		f.budgets[user.ID] = append(f.budgets[user.ID], b)
	}
	return nil
}

func newTestService(store Store, seedPassword string) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		SeedUser:     "testuser",
		SeedEmail:    "test@example.com",
		SeedPassword: seedPassword,
	}
	return NewService(store, log, cfg)
}

func TestAuthenticate(t *testing.T) {
	store := newFakeStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.users["testuser"] = &models.User{ID: 7, Username: "testuser", Email: "test@example.com", PasswordHash: string(hash)}
	svc := newTestService(store, "")

	user, err := svc.Authenticate("testuser", "123456")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected user id 7, got %d", user.ID)
	}

	if _, err := svc.Authenticate("testuser", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	if _, err := svc.Authenticate("nobody", "123456"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBootstrapSeedsOnce(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "123456")

	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}

	if store.schemaCalls != 2 {
		t.Errorf("expected schema ensured on every start, got %d calls", store.schemaCalls)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected exactly one seeded user, got %d", len(store.users))
	}
	user := store.users["testuser"]
	if got := len(store.transactions[user.ID]); got != 2 {
		t.Errorf("expected 2 seeded transactions, got %d", got)
	}
	if got := len(store.budgets[user.ID]); got != 2 {
		t.Errorf("expected 2 seeded budget rows, got %d", got)
	}

	// The demo password must verify against the stored hash, at cost 10.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")); err != nil {
		t.Errorf("seeded password does not verify: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(user.PasswordHash)); err != nil || cost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d (%v)", cost, err)
	}
}

func TestBootstrapSkipsWithoutSeedPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "")

	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if len(store.users) != 0 {
		t.Errorf("expected no seeded user, got %d", len(store.users))
	}
}

func TestHomeSummary(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "123456")
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	user := store.users["testuser"]

	summary, err := svc.HomeSummary(user.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.IsNewUser {
		t.Error("seeded user reported as new")
	}
	if len(summary.RecentTransactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(summary.RecentTransactions))
	}
	if len(summary.Budget) != 2 {
		t.Errorf("expected 2 budget rows, got %d", len(summary.Budget))
	}
}

func TestHomeSummaryNewUser(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "")

	summary, err := svc.HomeSummary(42)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !summary.IsNewUser {
		t.Error("user with no rows not reported as new")
	}
}
