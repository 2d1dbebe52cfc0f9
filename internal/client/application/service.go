package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mbellamine/comptoir/internal/client/domain"
)

// Service is the client directory. Email uniqueness is enforced here, at
// creation time, with a case-insensitive comparison.
type Service struct {
	log   *slog.Logger
	store ClientStore
}

func NewService(log *slog.Logger, store ClientStore) *Service {
	return &Service{log: log, store: store}
}

func (s *Service) Create(ctx context.Context, lastName, firstName, email, phone, address string) (domain.Client, error) {
	c, err := domain.NewClient(lastName, firstName, email, phone, address)
	if err != nil {
		return domain.Client{}, err
	}
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return domain.Client{}, fmt.Errorf("%q: %w", email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrClientNotFound) {
		return domain.Client{}, err
	}

	saved, err := s.store.Save(ctx, c)
	if err != nil {
		return domain.Client{}, fmt.Errorf("save client: %w", err)
	}
	s.log.Info("client created", "client_id", saved.ID, "email", saved.Email)
	return saved, nil
}

// Duplicate clones an existing client under a fresh id and a ".copy" email.
func (s *Service) Duplicate(ctx context.Context, id int) (domain.Client, error) {
	original, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	saved, err := s.store.Save(ctx, original.Duplicate())
	if err != nil {
		return domain.Client{}, fmt.Errorf("save duplicated client: %w", err)
	}
	s.log.Info("client duplicated", "source_id", id, "client_id", saved.ID)
	return saved, nil
}

func (s *Service) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	if c.LastName == "" {
		return domain.Client{}, domain.ErrEmptyLastName
	}
	if c.Email == "" {
		return domain.Client{}, domain.ErrEmptyEmail
	}
	if err := s.store.Update(ctx, c); err != nil {
		return domain.Client{}, fmt.Errorf("update client %d: %w", c.ID, err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("delete client %d: %w", id, domain.ErrClientNotFound)
	}
	return nil
}

func (s *Service) FindByID(ctx context.Context, id int) (domain.Client, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (domain.Client, error) {
	return s.store.FindByEmail(ctx, email)
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Client, error) {
	return s.store.FindAll(ctx)
}
