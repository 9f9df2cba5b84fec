package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"spacerental/db"
	"spacerental/models"
	"spacerental/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() { gin.SetMode(gin.TestMode) }

// mockRentalStore keeps everything in memory and reproduces the repo's
// conflict check so handler behaviour can be tested without Postgres.
type mockRentalStore struct {
	users   map[string]*models.User
	spaces  map[string]*models.Space
	rentals []models.Rental
}

func newMockRentalStore() *mockRentalStore {
	return &mockRentalStore{
		users:  make(map[string]*models.User),
		spaces: make(map[string]*models.Space),
	}
}

func (m *mockRentalStore) CreateRental(_ context.Context, rental *models.Rental) error {
	if _, ok := m.spaces[rental.SpaceID]; !ok {
		return models.ErrSpaceNotFound
	}
	for _, ex := range m.rentals {
		if ex.SpaceID != rental.SpaceID {
			continue
		}
		if schedule.HasTimeConflict(
			ex.StartDate, ex.EndDate, ex.StartTime, ex.EndTime,
			rental.StartDate, rental.EndDate, rental.StartTime, rental.EndTime,
		) {
			return models.ErrRentalConflict
		}
	}
	m.rentals = append(m.rentals, *rental)
	return nil
}

func (m *mockRentalStore) ListRentals(_ context.Context, f db.RentalFilter) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range m.rentals {
		if f.SpaceID != "" && r.SpaceID != f.SpaceID {
			continue
		}
		if f.StartFrom != nil && r.StartDate.Before(*f.StartFrom) {
			continue
		}
		if f.EndUntil != nil && r.EndDate.After(*f.EndUntil) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRentalStore) ListRentalsByUser(_ context.Context, userID string) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range m.rentals {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRentalStore) FindRentalByID(_ context.Context, id string) (*models.Rental, error) {
	for i := range m.rentals {
		if m.rentals[i].ID == id {
			return &m.rentals[i], nil
		}
	}
	return nil, models.ErrRentalNotFound
}

func (m *mockRentalStore) DeleteRentalByID(_ context.Context, id string) error {
	for i := range m.rentals {
		if m.rentals[i].ID == id {
			m.rentals = append(m.rentals[:i], m.rentals[i+1:]...)
			return nil
		}
	}
	return models.ErrRentalNotFound
}

func (m *mockRentalStore) ListRentalSpans(_ context.Context, spaceID string) ([]models.Rental, error) {
	return m.ListRentals(context.Background(), db.RentalFilter{SpaceID: spaceID})
}

func (m *mockRentalStore) FindSpaceByID(_ context.Context, id string) (*models.Space, error) {
	s, ok := m.spaces[id]
	if !ok {
		return nil, models.ErrSpaceNotFound
	}
	return s, nil
}

func (m *mockRentalStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// newRentalRouter wires the controller behind a stand-in auth middleware
// that trusts the X-Test-User / X-Test-Admin headers.
func newRentalRouter(store RentalStore) *gin.Engine {
	rc := NewRentalController(store)
	r := gin.New()
	fakeAuth := func(c *gin.Context) {
		c.Set("userID", c.GetHeader("X-Test-User"))
		c.Set("isAdmin", c.GetHeader("X-Test-Admin") == "true")
	}
	r.POST("/rentals", fakeAuth, rc.CreateRental)
	r.GET("/rentals", fakeAuth, rc.ListRentals)
	r.GET("/rentals/user/:userId", fakeAuth, rc.ListRentalsByUser)
	r.DELETE("/rentals/:rentalId", fakeAuth, rc.DeleteRental)
	r.GET("/rentals/space/:spaceId/dates", rc.ListRentedDates)
	return r
}

func seedUserAndSpace(store *mockRentalStore, rate float64) (userID, spaceID string) {
	userID = uuid.NewString()
	spaceID = uuid.NewString()
	store.users[userID] = &models.User{ID: userID, Name: "Ana", Email: "ana@example.com"}
	store.spaces[spaceID] = &models.Space{ID: spaceID, SpaceName: "Sala 1", PricePerHour: rate}
	return userID, spaceID
}

func postRental(t *testing.T, r *gin.Engine, userID, spaceID, startDate, endDate, startTime, endTime string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]any{
		"userId":     userID,
		"spaceId":    spaceID,
		"start_date": startDate,
		"end_date":   endDate,
		"startTime":  startTime,
		"endTime":    endTime,
	})
	req := httptest.NewRequest(http.MethodPost, "/rentals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", userID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRentalDisjointRanges(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 50)
	r := newRentalRouter(store)

	if w := postRental(t, r, userID, spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("first rental: got %d, want 201: %s", w.Code, w.Body.String())
	}
	if w := postRental(t, r, userID, spaceID, "2024-01-05", "2024-01-06", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("disjoint rental: got %d, want 201: %s", w.Code, w.Body.String())
	}
	if w := postRental(t, r, userID, spaceID, "2024-01-02", "2024-01-03", "08:00", "09:00"); w.Code != http.StatusConflict {
		t.Fatalf("overlapping multi-day rental: got %d, want 409", w.Code)
	}
}

func TestCreateRentalSameDayWindows(t *testing.T) {
	tests := []struct {
		name               string
		startTime, endTime string
		wantCode           int
	}{
		{"overlap inside", "10:30", "11:30", http.StatusConflict},
		{"overlap tail", "11:00", "13:00", http.StatusConflict},
		{"overlap head", "09:00", "10:30", http.StatusConflict},
		{"containing window", "09:00", "13:00", http.StatusConflict},
		{"back to back after", "12:00", "14:00", http.StatusCreated},
		{"back to back before", "08:00", "10:00", http.StatusCreated},
		{"later window", "15:00", "16:00", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockRentalStore()
			userID, spaceID := seedUserAndSpace(store, 50)
			r := newRentalRouter(store)

			if w := postRental(t, r, userID, spaceID, "2024-03-10", "2024-03-10", "10:00", "12:00"); w.Code != http.StatusCreated {
				t.Fatalf("seed rental: got %d: %s", w.Code, w.Body.String())
			}
			w := postRental(t, r, userID, spaceID, "2024-03-10", "2024-03-10", tt.startTime, tt.endTime)
			if w.Code != tt.wantCode {
				t.Fatalf("got %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestCreateRentalValidation(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 50)
	r := newRentalRouter(store)

	tests := []struct {
		name               string
		userID, spaceID    string
		startDate, endDate string
		startTime, endTime string
		wantCode           int
	}{
		{"missing fields", userID, spaceID, "", "2024-01-02", "10:00", "12:00", http.StatusBadRequest},
		{"malformed user id", "not-a-uuid", spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00", http.StatusBadRequest},
		{"malformed date", userID, spaceID, "01/01/2024", "2024-01-02", "10:00", "12:00", http.StatusBadRequest},
		{"end before start", userID, spaceID, "2024-01-05", "2024-01-01", "10:00", "12:00", http.StatusBadRequest},
		{"bad clock", userID, spaceID, "2024-01-01", "2024-01-02", "25:00", "12:00", http.StatusBadRequest},
		{"single day end before start time", userID, spaceID, "2024-01-01", "2024-01-01", "14:00", "10:00", http.StatusBadRequest},
		{"single day zero window", userID, spaceID, "2024-01-01", "2024-01-01", "10:00", "10:00", http.StatusBadRequest},
		{"multi day end before start time", userID, spaceID, "2024-01-01", "2024-01-02", "20:00", "08:00", http.StatusBadRequest},
		{"multi day zero window", userID, spaceID, "2024-01-01", "2024-01-03", "10:00", "10:00", http.StatusBadRequest},
		{"unknown user", uuid.NewString(), spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00", http.StatusNotFound},
		{"unknown space", userID, uuid.NewString(), "2024-01-01", "2024-01-02", "10:00", "12:00", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRental(t, r, tt.userID, tt.spaceID, tt.startDate, tt.endDate, tt.startTime, tt.endTime)
			if w.Code != tt.wantCode {
				t.Fatalf("got %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestCreateRentalNeverPersistsNegativeValue(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 100)
	r := newRentalRouter(store)

	// A reversed daily window over a multi-day span would price negative
	// if it slipped past validation.
	w := postRental(t, r, userID, spaceID, "2024-01-01", "2024-01-02", "20:00", "08:00")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("reversed window: got %d, want 400: %s", w.Code, w.Body.String())
	}
	if len(store.rentals) != 0 {
		t.Fatalf("rental persisted with value %v, want none", store.rentals[0].Value)
	}
}

func TestListRentalsRejectsMalformedSpaceID(t *testing.T) {
	store := newMockRentalStore()
	r := newRentalRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/rentals?spaceId=not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestCreateRentalPricesFromSpaceRate(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 40)
	r := newRentalRouter(store)

	body, _ := json.Marshal(map[string]any{
		"userId":     userID,
		"spaceId":    spaceID,
		"start_date": "2024-01-01",
		"end_date":   "2024-01-03",
		"startTime":  "10:00",
		"endTime":    "12:00",
		"value":      1.0, // client-supplied price must be ignored
	})
	req := httptest.NewRequest(http.MethodPost, "/rentals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", userID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	var got models.Rental
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 3 days * 2 hours * 40/h
	if want := 240.0; got.Value != want {
		t.Fatalf("value = %v, want %v", got.Value, want)
	}
}

func TestDeleteRental(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 50)
	r := newRentalRouter(store)

	if w := postRental(t, r, userID, spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("seed rental: got %d", w.Code)
	}
	rentalID := store.rentals[0].ID

	del := func(id, asUser string, admin bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/rentals/"+id, nil)
		req.Header.Set("X-Test-User", asUser)
		if admin {
			req.Header.Set("X-Test-Admin", "true")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := del(uuid.NewString(), userID, false); w.Code != http.StatusNotFound {
		t.Fatalf("missing rental: got %d, want 404", w.Code)
	}
	if w := del("garbage", userID, false); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: got %d, want 400", w.Code)
	}
	if w := del(rentalID, uuid.NewString(), false); w.Code != http.StatusForbidden {
		t.Fatalf("other user: got %d, want 403", w.Code)
	}
	if w := del(rentalID, uuid.NewString(), true); w.Code != http.StatusOK {
		t.Fatalf("admin delete: got %d, want 200: %s", w.Code, w.Body.String())
	}
	if len(store.rentals) != 0 {
		t.Fatalf("rental not removed, %d left", len(store.rentals))
	}
}

func TestListRentedDates(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 50)
	r := newRentalRouter(store)

	if w := postRental(t, r, userID, spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", w.Code)
	}
	if w := postRental(t, r, userID, spaceID, "2024-01-05", "2024-01-05", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/rentals/space/%s/dates", spaceID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-05"}
	if len(resp.Dates) != len(want) {
		t.Fatalf("dates = %v, want %v", resp.Dates, want)
	}
	for i := range want {
		if resp.Dates[i] != want[i] {
			t.Fatalf("dates = %v, want %v", resp.Dates, want)
		}
	}
}

func TestListRentalsByUserFiltersOwner(t *testing.T) {
	store := newMockRentalStore()
	userID, spaceID := seedUserAndSpace(store, 50)
	otherID := uuid.NewString()
	store.users[otherID] = &models.User{ID: otherID, Name: "Bia", Email: "bia@example.com"}
	r := newRentalRouter(store)

	if w := postRental(t, r, userID, spaceID, "2024-01-01", "2024-01-02", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", w.Code)
	}
	if w := postRental(t, r, otherID, spaceID, "2024-02-01", "2024-02-02", "10:00", "12:00"); w.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/rentals/user/"+userID, nil)
	req.Header.Set("X-Test-User", userID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	var rows []models.EnrichedRental
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != userID {
		t.Fatalf("rows = %+v, want exactly the caller's rental", rows)
	}
}
