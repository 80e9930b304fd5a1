package service_test

import (
	"context"
	"testing"

	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRoomTypeService() (service.LookupService, *stubLookupRepo[model.RoomType, *model.RoomType]) {
	repo := newStubLookupRepo[model.RoomType]()
	return service.NewLookupService[model.RoomType](repo, "room type"), repo
}

func TestLookupCreate_Success(t *testing.T) {
	svc, repo := newRoomTypeService()

	resp, err := svc.Create(context.Background(), dto.CreateLookupRequest{
		Name:        "suite",
		Description: "Separate living area",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "suite", resp.Name)
	assert.Len(t, repo.items, 1)
}

func TestLookupCreate_DuplicateName(t *testing.T) {
	svc, _ := newRoomTypeService()

	_, err := svc.Create(context.Background(), dto.CreateLookupRequest{Name: "suite"})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateLookupRequest{Name: "suite"})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestLookupUpdate_RenameToTakenName(t *testing.T) {
	svc, _ := newRoomTypeService()

	_, err := svc.Create(context.Background(), dto.CreateLookupRequest{Name: "single"})
	assert.NoError(t, err)
	created, err := svc.Create(context.Background(), dto.CreateLookupRequest{Name: "double"})
	assert.NoError(t, err)

	taken := "single"
	_, err = svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateLookupRequest{Name: &taken})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestLookupUpdate_DescriptionOnly(t *testing.T) {
	svc, _ := newRoomTypeService()

	created, err := svc.Create(context.Background(), dto.CreateLookupRequest{Name: "single"})
	assert.NoError(t, err)

	desc := "One bed, one guest"
	resp, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateLookupRequest{Description: &desc})
	assert.NoError(t, err)
	assert.Equal(t, "single", resp.Name)
	assert.Equal(t, desc, resp.Description)
}

func TestLookupDelete_Missing(t *testing.T) {
	svc, _ := newRoomTypeService()

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestLookupGetByID_Missing(t *testing.T) {
	svc, _ := newRoomTypeService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
