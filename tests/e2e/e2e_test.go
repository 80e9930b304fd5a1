//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelier/internal/config"
	"hotelier/internal/infra"
	"hotelier/internal/model"
	"hotelier/internal/router"
	"hotelier/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT

	roomTypeID   string
	roomStatusID string
	confirmedID  string // reservation status
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("hotelier_test"),
		tcPostgres.WithUsername("hotelier"),
		tcPostgres.WithPassword("hotelier"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		TokenSweepMinutes:  60,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		ReportStoragePath:  t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(db))

	// Seed reference tables and an admin user
	adminType := model.UserType{Lookup: model.Lookup{ID: uuid.New(), Name: "administrator"}}
	require.NoError(t, db.Create(&adminType).Error)

	roomType := model.RoomType{Lookup: model.Lookup{ID: uuid.New(), Name: "double"}}
	require.NoError(t, db.Create(&roomType).Error)

	roomStatus := model.RoomStatus{Lookup: model.Lookup{ID: uuid.New(), Name: "available"}}
	require.NoError(t, db.Create(&roomStatus).Error)

	confirmed := model.ReservationStatus{Lookup: model.Lookup{ID: uuid.New(), Name: "confirmed"}}
	require.NoError(t, db.Create(&confirmed).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("hotelier2026"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@e2e.test",
		PasswordHash: string(hash),
		UserTypeID:   adminType.ID,
		Active:       true,
	}).Error)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "hotelier2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server:       srv,
		token:        loginBody.AccessToken,
		roomTypeID:   roomType.ID.String(),
		roomStatusID: roomStatus.ID.String(),
		confirmedID:  confirmed.ID.String(),
	}
}

func (env *testEnv) createRoom(t *testing.T, number, price string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/rooms",
		jsonBody(t, map[string]any{
			"room_number":     number,
			"price_per_night": price,
			"capacity":        2,
			"room_type_id":    env.roomTypeID,
			"room_status_id":  env.roomStatusID,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var room struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &room)
	return room.ID
}

func (env *testEnv) createClient(t *testing.T, phone, email, identification string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/clients",
		jsonBody(t, map[string]any{
			"first_name":            "Jane",
			"last_name":             "Guest",
			"phone":                 phone,
			"email":                 email,
			"number_identification": identification,
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var client struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &client)
	return client.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullBookingCycle(t *testing.T) {
	env := setupTestEnv(t)

	roomID := env.createRoom(t, "101", "100.00")
	clientID := env.createClient(t, "+15550001", "jane@e2e.test", "ID-0001")

	// Book 3 nights at 100.00/night
	resResp := do(t, env.server, "POST", "/api/reservations",
		jsonBody(t, map[string]any{
			"client_id":             clientID,
			"room_id":               roomID,
			"reservation_status_id": env.confirmedID,
			"check_in_date":         "2026-01-01",
			"check_out_date":        "2026-01-04",
		}), env.token)
	require.Equal(t, http.StatusCreated, resResp.StatusCode)
	var res struct {
		ID     string          `json:"id"`
		Nights int             `json:"nights"`
		Total  decimal.Decimal `json:"total"`
	}
	decodeJSON(t, resResp, &res)
	assert.Equal(t, 3, res.Nights)
	assert.True(t, res.Total.Equal(decimal.RequireFromString("300")), "expected 300, got %s", res.Total)

	// The booking shows up in the list
	listResp := do(t, env.server, "GET", "/api/reservations?page=1&limit=10", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, res.ID, list.Items[0].ID)

	// Extending the stay recomputes the total
	updResp := do(t, env.server, "PUT", "/api/reservations/"+res.ID,
		jsonBody(t, map[string]any{"check_out_date": "2026-01-06"}), env.token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	var updated struct {
		Nights int             `json:"nights"`
		Total  decimal.Decimal `json:"total"`
	}
	decodeJSON(t, updResp, &updated)
	assert.Equal(t, 5, updated.Nights)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("500")))
}

func TestE2E_SameDayBookingRejected(t *testing.T) {
	env := setupTestEnv(t)

	roomID := env.createRoom(t, "102", "100.00")
	clientID := env.createClient(t, "+15550002", "john@e2e.test", "ID-0002")

	resp := do(t, env.server, "POST", "/api/reservations",
		jsonBody(t, map[string]any{
			"client_id":             clientID,
			"room_id":               roomID,
			"reservation_status_id": env.confirmedID,
			"check_in_date":         "2026-01-01",
			"check_out_date":        "2026-01-01",
		}), env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	listResp := do(t, env.server, "GET", "/api/reservations", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, int64(0), list.Total, "rejected booking must not be persisted")
}

func TestE2E_DuplicateClientRejected(t *testing.T) {
	env := setupTestEnv(t)

	env.createClient(t, "+15550003", "dup@e2e.test", "ID-0003")

	resp := do(t, env.server, "POST", "/api/clients",
		jsonBody(t, map[string]any{
			"first_name":            "Copy",
			"last_name":             "Cat",
			"phone":                 "+15550003",
			"email":                 "other@e2e.test",
			"number_identification": "ID-0004",
		}), env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_LogoutInvalidatesSession(t *testing.T) {
	env := setupTestEnv(t)

	outResp := do(t, env.server, "POST", "/api/logout", nil, env.token)
	require.Equal(t, http.StatusOK, outResp.StatusCode)
	outResp.Body.Close()

	// The revoked token must no longer grant access.
	resp := do(t, env.server, "GET", "/api/reservations", nil, env.token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_LookupReadsArePublic(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/api/room-types", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var types []struct {
		Name string `json:"name"`
	}
	decodeJSON(t, resp, &types)
	require.Len(t, types, 1)
	assert.Equal(t, "double", types[0].Name)

	// Writes stay behind auth.
	wResp := do(t, env.server, "POST", "/api/room-types",
		jsonBody(t, map[string]any{"name": "suite"}), "")
	assert.Equal(t, http.StatusUnauthorized, wResp.StatusCode)
	wResp.Body.Close()
}

func TestE2E_DashboardAfterBooking(t *testing.T) {
	env := setupTestEnv(t)

	roomID := env.createRoom(t, "103", "150.00")
	clientID := env.createClient(t, "+15550005", "dash@e2e.test", "ID-0005")

	resResp := do(t, env.server, "POST", "/api/reservations",
		jsonBody(t, map[string]any{
			"client_id":             clientID,
			"room_id":               roomID,
			"reservation_status_id": env.confirmedID,
			"check_in_date":         "2026-03-10",
			"check_out_date":        "2026-03-12",
		}), env.token)
	require.Equal(t, http.StatusCreated, resResp.StatusCode)
	resResp.Body.Close()

	dashResp := do(t, env.server, "GET", "/api/dashboard?month=3&year=2026", nil, env.token)
	require.Equal(t, http.StatusOK, dashResp.StatusCode)
	var dash struct {
		TotalRevenue decimal.Decimal `json:"total_revenue"`
		OccupancyPct float64         `json:"occupancy_pct"`
		TotalClients int64           `json:"total_clients"`
	}
	decodeJSON(t, dashResp, &dash)
	assert.True(t, dash.TotalRevenue.Equal(decimal.RequireFromString("300")), "expected 300, got %s", dash.TotalRevenue)
	assert.Equal(t, 100.0, dash.OccupancyPct) // 1 reservation / 1 room
	assert.Equal(t, int64(1), dash.TotalClients)
}
