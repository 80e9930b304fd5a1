package service_test

import (
	"context"
	"strings"
	"testing"

	"hotelier/internal/config"
	"hotelier/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	all := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = active
	return nil
}

type stubTokenRepo struct {
	tokens map[string]*model.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]*model.Token)}
}

func (r *stubTokenRepo) Create(_ context.Context, t *model.Token) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tokens[t.Token] = t
	return nil
}

func (r *stubTokenRepo) FindByToken(_ context.Context, token string) (*model.Token, error) {
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTokenRepo) Revoke(_ context.Context, token string) error {
	t, ok := r.tokens[token]
	if !ok || t.Status != model.TokenActive {
		return gorm.ErrRecordNotFound
	}
	t.Status = model.TokenRevoked
	return nil
}

func (r *stubTokenRepo) ExpireStale(_ context.Context) (int64, error) {
	return 0, nil
}

type stubLookupRepo[T any, PT interface {
	*T
	Meta() *model.Lookup
}] struct {
	items map[uuid.UUID]*T
}

func newStubLookupRepo[T any, PT interface {
	*T
	Meta() *model.Lookup
}]() *stubLookupRepo[T, PT] {
	return &stubLookupRepo[T, PT]{items: make(map[uuid.UUID]*T)}
}

func (r *stubLookupRepo[T, PT]) Create(_ context.Context, e *T) error {
	m := PT(e).Meta()
	for _, existing := range r.items {
		if PT(existing).Meta().Name == m.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = e
	return nil
}

func (r *stubLookupRepo[T, PT]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	if e, ok := r.items[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLookupRepo[T, PT]) FindByName(_ context.Context, name string) (*T, error) {
	for _, e := range r.items {
		if PT(e).Meta().Name == name {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLookupRepo[T, PT]) List(_ context.Context) ([]T, error) {
	list := make([]T, 0, len(r.items))
	for _, e := range r.items {
		list = append(list, *e)
	}
	return list, nil
}

func (r *stubLookupRepo[T, PT]) Update(_ context.Context, e *T) error {
	r.items[PT(e).Meta().ID] = e
	return nil
}

func (r *stubLookupRepo[T, PT]) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) FindDuplicate(_ context.Context, phone, email, identification string) (*model.Client, error) {
	for _, c := range r.clients {
		if phone != "" && c.Phone == phone {
			return c, nil
		}
		if email != "" && strings.EqualFold(c.Email, email) {
			return c, nil
		}
		if identification != "" && c.NumberIdentification == identification {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) List(_ context.Context, offset, limit int) ([]model.Client, int64, error) {
	all := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		all = append(all, *c)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	c, ok := r.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Active = active
	return nil
}

type stubRoomRepo struct {
	rooms map[uuid.UUID]*model.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[uuid.UUID]*model.Room)}
}

func (r *stubRoomRepo) Create(_ context.Context, room *model.Room) error {
	for _, existing := range r.rooms {
		if existing.RoomNumber == room.RoomNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.rooms[room.ID] = room
	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Room, error) {
	if room, ok := r.rooms[id]; ok {
		return room, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, number string) (*model.Room, error) {
	for _, room := range r.rooms {
		if room.RoomNumber == number {
			return room, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoomRepo) List(_ context.Context, offset, limit int) ([]model.Room, int64, error) {
	all := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		all = append(all, *room)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rooms)), nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *model.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *stubRoomRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	room, ok := r.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	room.Active = active
	return nil
}

type stubReservationRepo struct {
	reservations map[uuid.UUID]*model.Reservation
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{reservations: make(map[uuid.UUID]*model.Reservation)}
}

func (r *stubReservationRepo) DB() *gorm.DB { return nil }

func (r *stubReservationRepo) Create(_ context.Context, res *model.Reservation) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	r.reservations[res.ID] = res
	return nil
}

func (r *stubReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reservation, error) {
	if res, ok := r.reservations[id]; ok {
		return res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReservationRepo) List(_ context.Context, offset, limit int) ([]model.Reservation, int64, error) {
	all := make([]model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		all = append(all, *res)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubReservationRepo) Update(_ context.Context, res *model.Reservation) error {
	r.reservations[res.ID] = res
	return nil
}

func (r *stubReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.reservations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.reservations, id)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
	}
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, userType *model.UserType) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	assert.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		UserTypeID:   userType.ID,
		UserType:     userType,
		Active:       true,
	}
	repo.users[u.ID] = u
	return u
}

func seedUserType(t *testing.T, repo *stubLookupRepo[model.UserType, *model.UserType], name string) *model.UserType {
	t.Helper()
	ut := &model.UserType{Lookup: model.Lookup{ID: uuid.New(), Name: name}}
	repo.items[ut.ID] = ut
	return ut
}

func seedClient(t *testing.T, repo *stubClientRepo, phone, email, identification string) *model.Client {
	t.Helper()
	c := &model.Client{
		ID:                   uuid.New(),
		FirstName:            "Jane",
		LastName:             "Guest",
		Phone:                phone,
		Email:                email,
		NumberIdentification: identification,
		Active:               true,
	}
	repo.clients[c.ID] = c
	return c
}

func seedRoom(t *testing.T, repo *stubRoomRepo, number string, price string) *model.Room {
	t.Helper()
	room := &model.Room{
		ID:            uuid.New(),
		RoomNumber:    number,
		PricePerNight: decimal.RequireFromString(price),
		Capacity:      2,
		RoomTypeID:    uuid.New(),
		RoomStatusID:  uuid.New(),
		Active:        true,
	}
	repo.rooms[room.ID] = room
	return room
}

func seedReservationStatus(t *testing.T, repo *stubLookupRepo[model.ReservationStatus, *model.ReservationStatus], name string) *model.ReservationStatus {
	t.Helper()
	st := &model.ReservationStatus{Lookup: model.Lookup{ID: uuid.New(), Name: name}}
	repo.items[st.ID] = st
	return st
}
