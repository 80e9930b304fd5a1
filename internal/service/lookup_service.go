package service

import (
	"context"
	"errors"
	"fmt"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lookupPtr constrains PT to *T exposing the embedded lookup fields.
type lookupPtr[T any] interface {
	*T
	Meta() *model.Lookup
}

// LookupService is the shared CRUD surface of the reference tables. The
// implementation is generic over the concrete model; the interface is not,
// so handlers and the router stay free of type parameters.
type LookupService interface {
	Create(ctx context.Context, req dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LookupResponse, error)
	List(ctx context.Context) ([]dto.LookupResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type lookupService[T any, PT lookupPtr[T]] struct {
	repo repository.LookupRepository[T]
	// label names the table in error messages ("room type", …)
	label string
}

func NewLookupService[T any, PT lookupPtr[T]](repo repository.LookupRepository[T], label string) LookupService {
	return &lookupService[T, PT]{repo: repo, label: label}
}

func mapLookup(m *model.Lookup) dto.LookupResponse {
	return dto.LookupResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
	}
}

func (s *lookupService[T, PT]) Create(ctx context.Context, req dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%s name %w", s.label, ErrConflict)
	}

	var e T
	m := PT(&e).Meta()
	m.Name = req.Name
	m.Description = req.Description
	if err := s.repo.Create(ctx, &e); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("%s name %w", s.label, ErrConflict)
		}
		return nil, err
	}
	resp := mapLookup(m)
	return &resp, nil
}

func (s *lookupService[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (*dto.LookupResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s %w", s.label, ErrNotFound)
	}
	resp := mapLookup(PT(e).Meta())
	return &resp, nil
}

func (s *lookupService[T, PT]) List(ctx context.Context) ([]dto.LookupResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LookupResponse, len(list))
	for i := range list {
		resp[i] = mapLookup(PT(&list[i]).Meta())
	}
	return resp, nil
}

func (s *lookupService[T, PT]) Update(ctx context.Context, id uuid.UUID, req dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s %w", s.label, ErrNotFound)
	}
	m := PT(e).Meta()

	if req.Name != nil && *req.Name != m.Name {
		if existing, err := s.repo.FindByName(ctx, *req.Name); err == nil && PT(existing).Meta().ID != id {
			return nil, fmt.Errorf("%s name %w", s.label, ErrConflict)
		}
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("%s name %w", s.label, ErrConflict)
		}
		return nil, err
	}
	resp := mapLookup(m)
	return &resp, nil
}

func (s *lookupService[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s %w", s.label, ErrNotFound)
		}
		return err
	}
	return nil
}
