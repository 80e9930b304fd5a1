package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/repository"
	"hotelier/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReservationService is the booking engine: it validates a stay against
// room/client/status existence and the date range, derives the total from
// the room rate, and keeps the total consistent across partial updates.
type ReservationService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ReservationResponse, error)
	List(ctx context.Context, page, limit int) (*dto.ReservationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateReservationRequest) (*dto.ReservationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationService struct {
	repo       repository.ReservationRepository
	rooms      repository.RoomRepository
	clients    repository.ClientRepository
	statuses   repository.LookupRepository[model.ReservationStatus]
	dispatcher *worker.Dispatcher // nil in unit tests: mail is best effort
}

func NewReservationService(
	repo repository.ReservationRepository,
	rooms repository.RoomRepository,
	clients repository.ClientRepository,
	statuses repository.LookupRepository[model.ReservationStatus],
	dispatcher *worker.Dispatcher,
) ReservationService {
	return &reservationService{
		repo:       repo,
		rooms:      rooms,
		clients:    clients,
		statuses:   statuses,
		dispatcher: dispatcher,
	}
}

// stayTotal computes price_per_night × whole nights. The caller has
// already guaranteed nights > 0.
func stayTotal(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func mapReservation(r *model.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:                  r.ID.String(),
		UserID:              r.UserID.String(),
		ClientID:            r.ClientID.String(),
		RoomID:              r.RoomID.String(),
		ReservationStatusID: r.ReservationStatusID.String(),
		CheckInDate:         r.CheckInDate.Format(dateLayout),
		CheckOutDate:        r.CheckOutDate.Format(dateLayout),
		Nights:              r.Nights(),
		Note:                r.Note,
		Total:               r.Total,
	}
}

func (s *reservationService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client_id", ErrValidation)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room_id", ErrValidation)
	}
	statusID, err := uuid.Parse(req.ReservationStatusID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation_status_id", ErrValidation)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check_in_date", ErrValidation)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check_out_date", ErrValidation)
	}
	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("room %w", ErrNotFound)
	}
	if !room.Active {
		return nil, fmt.Errorf("%w: room is not available", ErrValidation)
	}
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}
	if _, err := s.statuses.FindByID(ctx, statusID); err != nil {
		return nil, fmt.Errorf("reservation status %w", ErrNotFound)
	}

	res := &model.Reservation{
		UserID:              userID,
		ClientID:            clientID,
		RoomID:              roomID,
		ReservationStatusID: statusID,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		Note:                req.Note,
		Total:               stayTotal(room.PricePerNight, nights),
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, client, room, res)

	resp := mapReservation(res)
	return &resp, nil
}

func (s *reservationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ReservationResponse, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reservation %w", ErrNotFound)
	}
	resp := mapReservation(res)
	return &resp, nil
}

func (s *reservationService) List(ctx context.Context, page, limit int) (*dto.ReservationListResponse, error) {
	list, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservationResponse, len(list))
	for i := range list {
		items[i] = mapReservation(&list[i])
	}
	return &dto.ReservationListResponse{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *reservationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reservation %w", ErrNotFound)
	}

	recompute := false

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid client_id", ErrValidation)
		}
		if _, err := s.clients.FindByID(ctx, clientID); err != nil {
			return nil, fmt.Errorf("client %w", ErrNotFound)
		}
		res.ClientID = clientID
		res.Client = nil
	}
	if req.ReservationStatusID != nil {
		statusID, err := uuid.Parse(*req.ReservationStatusID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid reservation_status_id", ErrValidation)
		}
		if _, err := s.statuses.FindByID(ctx, statusID); err != nil {
			return nil, fmt.Errorf("reservation status %w", ErrNotFound)
		}
		res.ReservationStatusID = statusID
		res.ReservationStatus = nil
	}
	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room_id", ErrValidation)
		}
		if roomID != res.RoomID {
			res.RoomID = roomID
			res.Room = nil
			recompute = true
		}
	}
	if req.CheckInDate != nil {
		checkIn, err := time.Parse(dateLayout, *req.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid check_in_date", ErrValidation)
		}
		if !checkIn.Equal(res.CheckInDate) {
			res.CheckInDate = checkIn
			recompute = true
		}
	}
	if req.CheckOutDate != nil {
		checkOut, err := time.Parse(dateLayout, *req.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid check_out_date", ErrValidation)
		}
		if !checkOut.Equal(res.CheckOutDate) {
			res.CheckOutDate = checkOut
			recompute = true
		}
	}
	if req.Note != nil {
		res.Note = *req.Note
	}

	if recompute {
		nights := nightsBetween(res.CheckInDate, res.CheckOutDate)
		if nights <= 0 {
			return nil, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
		}
		room, err := s.rooms.FindByID(ctx, res.RoomID)
		if err != nil {
			return nil, fmt.Errorf("room %w", ErrNotFound)
		}
		if !room.Active {
			return nil, fmt.Errorf("%w: room is not available", ErrValidation)
		}
		res.Total = stayTotal(room.PricePerNight, nights)
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	resp := mapReservation(res)
	return &resp, nil
}

func (s *reservationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("reservation %w", ErrNotFound)
	}
	return nil
}

// sendConfirmation enqueues the booking confirmation mail. Failures are
// logged and never fail the booking.
func (s *reservationService) sendConfirmation(ctx context.Context, client *model.Client, room *model.Room, res *model.Reservation) {
	if s.dispatcher == nil {
		return
	}
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYour reservation for room %s from %s to %s is confirmed.\nTotal: $%s\n\nWe look forward to your stay.",
		client.FirstName, client.LastName, room.RoomNumber,
		res.CheckInDate.Format(dateLayout), res.CheckOutDate.Format(dateLayout),
		res.Total.StringFixed(2),
	)
	err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJob{
		To:      client.Email,
		Subject: fmt.Sprintf("Reservation confirmed — room %s", room.RoomNumber),
		Body:    body,
	})
	if err != nil {
		log.Warn().Err(err).Str("reservation_id", res.ID.String()).Msg("failed to enqueue confirmation mail")
	}
}
