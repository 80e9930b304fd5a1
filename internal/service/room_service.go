package service

import (
	"context"
	"fmt"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/repository"

	"github.com/google/uuid"
)

type RoomService interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.RoomResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type roomService struct {
	repo     repository.RoomRepository
	types    repository.LookupRepository[model.RoomType]
	statuses repository.LookupRepository[model.RoomStatus]
}

func NewRoomService(
	repo repository.RoomRepository,
	types repository.LookupRepository[model.RoomType],
	statuses repository.LookupRepository[model.RoomStatus],
) RoomService {
	return &roomService{repo: repo, types: types, statuses: statuses}
}

func mapRoom(r *model.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            r.ID.String(),
		RoomNumber:    r.RoomNumber,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		RoomTypeID:    r.RoomTypeID.String(),
		RoomStatusID:  r.RoomStatusID.String(),
		Active:        r.Active,
	}
}

func (s *roomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if existing, err := s.repo.FindByNumber(ctx, req.RoomNumber); err == nil && existing != nil {
		return nil, fmt.Errorf("room number %w", ErrConflict)
	}

	typeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room_type_id", ErrValidation)
	}
	if _, err := s.types.FindByID(ctx, typeID); err != nil {
		return nil, fmt.Errorf("room type %w", ErrNotFound)
	}
	statusID, err := uuid.Parse(req.RoomStatusID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room_status_id", ErrValidation)
	}
	if _, err := s.statuses.FindByID(ctx, statusID); err != nil {
		return nil, fmt.Errorf("room status %w", ErrNotFound)
	}

	room := &model.Room{
		RoomNumber:    req.RoomNumber,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		RoomTypeID:    typeID,
		RoomStatusID:  statusID,
		Active:        true,
	}
	if err := s.repo.Create(ctx, room); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("room number %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapRoom(room)
	return &resp, nil
}

func (s *roomService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("room %w", ErrNotFound)
	}
	resp := mapRoom(room)
	return &resp, nil
}

func (s *roomService) List(ctx context.Context, page, limit int) ([]dto.RoomResponse, int64, error) {
	rooms, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp[i] = mapRoom(&rooms[i])
	}
	return resp, total, nil
}

func (s *roomService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("room %w", ErrNotFound)
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		if existing, err := s.repo.FindByNumber(ctx, *req.RoomNumber); err == nil && existing.ID != id {
			return nil, fmt.Errorf("room number %w", ErrConflict)
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.RoomTypeID != nil {
		typeID, err := uuid.Parse(*req.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room_type_id", ErrValidation)
		}
		if _, err := s.types.FindByID(ctx, typeID); err != nil {
			return nil, fmt.Errorf("room type %w", ErrNotFound)
		}
		room.RoomTypeID = typeID
	}
	if req.RoomStatusID != nil {
		statusID, err := uuid.Parse(*req.RoomStatusID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room_status_id", ErrValidation)
		}
		if _, err := s.statuses.FindByID(ctx, statusID); err != nil {
			return nil, fmt.Errorf("room status %w", ErrNotFound)
		}
		room.RoomStatusID = statusID
	}

	if err := s.repo.Update(ctx, room); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("room number %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapRoom(room)
	return &resp, nil
}

func (s *roomService) UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("room %w", ErrNotFound)
	}
	if room.Active == active {
		return fmt.Errorf("%w: status is unchanged", ErrConflict)
	}
	return s.repo.SetActive(ctx, id, active)
}
