package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cleared-dev/smstx/internal/model"
)

// Service provides read access to the user's accounts.
type Service struct {
	accounts []model.Account
	byID     map[uuid.UUID]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[uuid.UUID]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads the accounts file at path. A missing file yields an empty Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in file order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id uuid.UUID) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// FindForCard returns the first account whose name contains cardDigits.
func (s *Service) FindForCard(cardDigits string) (model.Account, bool) {
	return FindForCard(cardDigits, s.accounts)
}

// Add returns a new Service with an account named name appended under a fresh id.
func (s *Service) Add(name string) (*Service, model.Account) {
	acct := model.Account{ID: uuid.New(), Name: name}
	next := make([]model.Account, 0, len(s.accounts)+1)
	next = append(next, s.accounts...)
	next = append(next, acct)
	return NewService(next), acct
}

// Save writes the accounts to path, creating parent directories.
func (s *Service) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
