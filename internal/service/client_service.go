package service

import (
	"context"
	"fmt"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/repository"

	"github.com/google/uuid"
)

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.ClientResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func mapClient(c *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                   c.ID.String(),
		FirstName:            c.FirstName,
		LastName:             c.LastName,
		Phone:                c.Phone,
		Email:                c.Email,
		NumberIdentification: c.NumberIdentification,
		Active:               c.Active,
	}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if dup, err := s.repo.FindDuplicate(ctx, req.Phone, req.Email, req.NumberIdentification); err == nil {
		switch {
		case dup.Phone == req.Phone:
			return nil, fmt.Errorf("phone %w", ErrConflict)
		case dup.NumberIdentification == req.NumberIdentification:
			return nil, fmt.Errorf("identification number %w", ErrConflict)
		default:
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
	}

	c := &model.Client{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Phone:                req.Phone,
		Email:                req.Email,
		NumberIdentification: req.NumberIdentification,
		Active:               true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("phone, email or identification %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapClient(c)
	return &resp, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}
	resp := mapClient(c)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context, page, limit int) ([]dto.ClientResponse, int64, error) {
	clients, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = mapClient(&clients[i])
	}
	return resp, total, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}

	// Re-check uniqueness only for fields that actually change.
	if req.Phone != nil && *req.Phone != c.Phone {
		if dup, err := s.repo.FindDuplicate(ctx, *req.Phone, "", ""); err == nil && dup.ID != id {
			return nil, fmt.Errorf("phone %w", ErrConflict)
		}
		c.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != c.Email {
		if dup, err := s.repo.FindDuplicate(ctx, "", *req.Email, ""); err == nil && dup.ID != id {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		c.Email = *req.Email
	}
	if req.NumberIdentification != nil && *req.NumberIdentification != c.NumberIdentification {
		if dup, err := s.repo.FindDuplicate(ctx, "", "", *req.NumberIdentification); err == nil && dup.ID != id {
			return nil, fmt.Errorf("identification number %w", ErrConflict)
		}
		c.NumberIdentification = *req.NumberIdentification
	}
	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("phone, email or identification %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapClient(c)
	return &resp, nil
}

func (s *clientService) UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("client %w", ErrNotFound)
	}
	if c.Active == active {
		return fmt.Errorf("%w: status is unchanged", ErrConflict)
	}
	return s.repo.SetActive(ctx, id, active)
}
