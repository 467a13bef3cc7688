package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/services/booking"
)

// stubBookingService lets each test script the engine's answer.
type stubBookingService struct {
	createFn     func(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error)
	transitionFn func(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error)
	getFn        func(ctx context.Context, callerUID, bookingID string) (*models.Booking, error)
	listFn       func(ctx context.Context, callerUID string) ([]models.Booking, error)
}

func (s *stubBookingService) Create(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error) {
	return s.createFn(ctx, clientUID, providerID, slotStart, slotEnd)
}

func (s *stubBookingService) Transition(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	return s.transitionFn(ctx, callerUID, bookingID, next)
}

func (s *stubBookingService) Get(ctx context.Context, callerUID, bookingID string) (*models.Booking, error) {
	return s.getFn(ctx, callerUID, bookingID)
}

func (s *stubBookingService) ListForCaller(ctx context.Context, callerUID string) ([]models.Booking, error) {
	return s.listFn(ctx, callerUID)
}

func newTestRouter(svc booking.BookingService, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("uid", uid)
		c.Next()
	})
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/bookings", h.CreateBooking)
	r.PATCH("/api/bookings/:id", h.UpdateBookingStatus)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.GET("/api/bookings", h.ListBookings)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:         "bk-1",
		ClientUID:  "client-1",
		ProviderID: "prov-1",
		SlotStart:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		SlotEnd:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Status:     models.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCreateBookingCreated(t *testing.T) {
	var gotClientUID string
	svc := &stubBookingService{
		createFn: func(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error) {
			gotClientUID = clientUID
			return sampleBooking(), nil
		},
	}
	r := newTestRouter(svc, "client-1")

	w := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"providerId":"prov-1","slotStart":"2026-03-14T10:00:00Z","slotEnd":"2026-03-14T10:30:00Z"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "client-1", gotClientUID, "uid must default from the verified token")
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error) {
			t.Fatal("service must not be reached on invalid input")
			return nil, nil
		},
	}
	r := newTestRouter(svc, "client-1")

	// Malformed JSON.
	w := doJSON(t, r, http.MethodPost, "/api/bookings", `{"providerId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing provider.
	w = doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"slotStart":"2026-03-14T10:00:00Z","slotEnd":"2026-03-14T10:30:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// End before start.
	w = doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"providerId":"prov-1","slotStart":"2026-03-14T10:30:00Z","slotEnd":"2026-03-14T10:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slotEnd must be after slotStart")
}

func TestCreateBookingErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     *booking.Error
		status  int
		message string
	}{
		{"conflict", &booking.Error{Kind: booking.KindConflict, Message: "slot already booked"}, http.StatusConflict, "slot already booked"},
		{"unavailable", &booking.Error{Kind: booking.KindUnavailable, Message: "booking could not be completed, please retry"}, http.StatusServiceUnavailable, "please retry"},
		{"invalid", &booking.Error{Kind: booking.KindInvalid, Message: "provider is required"}, http.StatusBadRequest, "provider is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{
				createFn: func(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			r := newTestRouter(svc, "client-1")
			w := doJSON(t, r, http.MethodPost, "/api/bookings",
				`{"providerId":"prov-1","slotStart":"2026-03-14T10:00:00Z","slotEnd":"2026-03-14T10:30:00Z"}`)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestUpdateBookingStatusOK(t *testing.T) {
	svc := &stubBookingService{
		transitionFn: func(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
			require.Equal(t, "prov-1", callerUID)
			require.Equal(t, "bk-1", bookingID)
			require.Equal(t, models.StatusConfirmed, next)
			b := sampleBooking()
			b.Status = next
			b.UpdatedAt = time.Now().UTC()
			return b, nil
		},
	}
	r := newTestRouter(svc, "prov-1")

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/bk-1", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestUpdateBookingStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *booking.Error
		status int
	}{
		{"forbidden", &booking.Error{Kind: booking.KindForbidden, Message: "you may not update this booking"}, http.StatusForbidden},
		{"not found", &booking.Error{Kind: booking.KindNotFound, Message: "booking not found"}, http.StatusNotFound},
		{"illegal transition", &booking.Error{Kind: booking.KindInvalidTransition, Message: "cannot transition from pending to completed"}, http.StatusConflict},
		{"store down", &booking.Error{Kind: booking.KindUnavailable, Message: "update could not be completed, please retry"}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{
				transitionFn: func(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			r := newTestRouter(svc, "client-1")
			w := doJSON(t, r, http.MethodPatch, "/api/bookings/bk-1", `{"status":"confirmed"}`)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Message)
		})
	}
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	svc := &stubBookingService{
		transitionFn: func(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
			t.Fatal("service must not be reached on invalid input")
			return nil, nil
		},
	}
	r := newTestRouter(svc, "client-1")

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/bk-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/bookings/bk-1", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndListBookings(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(ctx context.Context, callerUID, bookingID string) (*models.Booking, error) {
			return sampleBooking(), nil
		},
		listFn: func(ctx context.Context, callerUID string) ([]models.Booking, error) {
			return nil, nil
		},
	}
	r := newTestRouter(svc, "client-1")

	w := doJSON(t, r, http.MethodGet, "/api/bookings/bk-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"bk-1"`)

	// An empty result renders as [], not null.
	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
