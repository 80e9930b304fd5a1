package service_test

import (
	"context"
	"testing"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type roomFixture struct {
	svc    service.RoomService
	repo   *stubRoomRepo
	typeID string
	statID string
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()
	repo := newStubRoomRepo()
	types := newStubLookupRepo[model.RoomType]()
	statuses := newStubLookupRepo[model.RoomStatus]()

	rt := &model.RoomType{Lookup: model.Lookup{ID: uuid.New(), Name: "double"}}
	types.items[rt.ID] = rt
	rs := &model.RoomStatus{Lookup: model.Lookup{ID: uuid.New(), Name: "available"}}
	statuses.items[rs.ID] = rs

	return &roomFixture{
		svc:    service.NewRoomService(repo, types, statuses),
		repo:   repo,
		typeID: rt.ID.String(),
		statID: rs.ID.String(),
	}
}

func TestCreateRoom_Success(t *testing.T) {
	f := newRoomFixture(t)

	resp, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
		RoomNumber:    "204",
		PricePerNight: decimal.RequireFromString("120.50"),
		Capacity:      2,
		RoomTypeID:    f.typeID,
		RoomStatusID:  f.statID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "204", resp.RoomNumber)
	assert.True(t, resp.PricePerNight.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, resp.Active)
}

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	f := newRoomFixture(t)
	seedRoom(t, f.repo, "204", "100.00")

	_, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
		RoomNumber:    "204",
		PricePerNight: decimal.RequireFromString("120.50"),
		Capacity:      2,
		RoomTypeID:    f.typeID,
		RoomStatusID:  f.statID,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCreateRoom_UnknownType(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
		RoomNumber:    "204",
		PricePerNight: decimal.RequireFromString("120.50"),
		Capacity:      2,
		RoomTypeID:    uuid.NewString(),
		RoomStatusID:  f.statID,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateRoom_PriceChange(t *testing.T) {
	f := newRoomFixture(t)
	room := seedRoom(t, f.repo, "204", "100.00")

	price := decimal.RequireFromString("135.00")
	resp, err := f.svc.Update(context.Background(), room.ID, dto.UpdateRoomRequest{PricePerNight: &price})
	assert.NoError(t, err)
	assert.True(t, resp.PricePerNight.Equal(price))
}

func TestUpdateRoom_RenumberToTakenNumber(t *testing.T) {
	f := newRoomFixture(t)
	seedRoom(t, f.repo, "204", "100.00")
	other := seedRoom(t, f.repo, "205", "100.00")

	taken := "204"
	_, err := f.svc.Update(context.Background(), other.ID, dto.UpdateRoomRequest{RoomNumber: &taken})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateRoomStatus_NoOpRejected(t *testing.T) {
	f := newRoomFixture(t)
	room := seedRoom(t, f.repo, "204", "100.00")

	err := f.svc.UpdateStatus(context.Background(), room.ID, true)
	assert.ErrorIs(t, err, service.ErrConflict)

	assert.NoError(t, f.svc.UpdateStatus(context.Background(), room.ID, false))
	assert.False(t, f.repo.rooms[room.ID].Active)
}
