package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"venuehub/internal/database"
	"venuehub/internal/engine"
	"venuehub/internal/middleware"
	"venuehub/internal/modules/auth"
	"venuehub/internal/modules/booking"
	"venuehub/internal/modules/catalog"
	"venuehub/internal/modules/notification"
	jwtsvc "venuehub/internal/pkg/jwt"
	"venuehub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// in-memory SQLite, schema rebuilt per suite
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, repository.AutoMigrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(spaceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo,
		spaceRepo,
		notificationService,
		booking.NewStaticPlanProvider(150),
		engine.NewCalendar(time.UTC),
		30,
	)
	bookingHandler := booking.NewHandler(bookingService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)
	bookingHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		catalogHandler.RegisterRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
	}

	return &E2ETestSuite{
		router:     r,
		db:         db,
		jwtService: jwtService,
	}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyBytes []byte
	var err error

	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w, nil
}

func parseResponse(w *httptest.ResponseRecorder) (*TestResponse, error) {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if err != nil {
		log.Printf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp, err
}

func logErrorResponse(t *testing.T, resp *TestResponse, context string) {
	if resp.Error != nil {
		t.Logf("%s - Error: [%s] %s", context, resp.Error.Code, resp.Error.Message)
		if resp.Error.Details != nil {
			t.Logf("  Details: %+v", resp.Error.Details)
		}
	}
}

func (s *E2ETestSuite) registerUser(t *testing.T, email, role string) string {
	body := map[string]interface{}{
		"email":    email,
		"password": "Password123!",
		"name":     "Test " + role,
		"role":     role,
	}
	w, err := s.makeRequest("POST", "/api/v1/auth/register", body, "")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	resp, err := parseResponse(w)
	require.NoError(t, err)
	require.True(t, resp.Success)
	return resp.Data["token"].(string)
}

func (s *E2ETestSuite) createSpace(t *testing.T, token string) int64 {
	body := map[string]interface{}{
		"name":         "Loft on Abay",
		"city":         "Almaty",
		"hourly_price": 10000.0,
		"currency":     "KZT",
		"max_guests":   10,
	}
	w, err := s.makeRequest("POST", "/api/v1/spaces", body, token)
	require.NoError(t, err)

	resp, err := parseResponse(w)
	require.NoError(t, err)
	if !resp.Success {
		logErrorResponse(t, resp, "Space creation failed")
		t.FailNow()
	}
	require.Equal(t, http.StatusCreated, w.Code)

	idVal, ok := resp.Data["id"]
	require.True(t, ok, "Space creation succeeded but no ID returned")
	return int64(idVal.(float64))
}

// bookableDate picks a date a week out so nothing trips the past-date filter.
func bookableDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestFlow1_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /auth/register", func(t *testing.T) {
		token := suite.registerUser(t, "client@test.com", "client")
		assert.NotEmpty(t, token)
	})

	t.Run("POST /auth/register duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "client@test.com",
			"password": "Password123!",
			"name":     "Duplicate",
			"role":     "client",
		}
		w, err := suite.makeRequest("POST", "/api/v1/auth/register", body, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("POST /auth/login", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "client@test.com",
			"password": "Password123!",
		}
		w, err := suite.makeRequest("POST", "/api/v1/auth/login", body, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		body := map[string]interface{}{
			"email":    "client@test.com",
			"password": "wrong-password",
		}
		w, err := suite.makeRequest("POST", "/api/v1/auth/login", body, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFlow2_CatalogAndAvailability(t *testing.T) {
	suite := setupTestSuite(t)

	clientToken := suite.registerUser(t, "client2@test.com", "client")
	hostToken := suite.registerUser(t, "host2@test.com", "host")

	var spaceID int64

	t.Run("POST /spaces requires host role", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Should Fail",
			"city":         "Almaty",
			"hourly_price": 1000.0,
			"currency":     "KZT",
		}
		w, err := suite.makeRequest("POST", "/api/v1/spaces", body, clientToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("POST /spaces", func(t *testing.T) {
		spaceID = suite.createSpace(t, hostToken)
	})

	t.Run("GET /spaces", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/spaces?city=Almaty", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.EqualValues(t, 1, resp.Data["total"])
	})

	t.Run("GET /spaces/:id", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/v1/spaces/%d", spaceID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "Loft on Abay", resp.Data["name"])
	})

	t.Run("GET /spaces/:id/availability", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/v1/spaces/%d/availability?from=%s&days=3", spaceID, bookableDate()), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		dates, ok := resp.Data["bookable_dates"].([]interface{})
		require.True(t, ok)
		assert.NotEmpty(t, dates)
	})
}

func TestFlow3_BookingLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	clientToken := suite.registerUser(t, "client3@test.com", "client")
	hostToken := suite.registerUser(t, "host3@test.com", "host")
	spaceID := suite.createSpace(t, hostToken)

	date := bookableDate()

	t.Run("POST /bookings/quote", func(t *testing.T) {
		body := map[string]interface{}{
			"space_id": spaceID,
			"guests":   4,
			"slots": []map[string]string{
				{"date": date, "start": "10:00", "end": "12:00"},
			},
			"protection_plan": true,
		}
		w, err := suite.makeRequest("POST", "/api/v1/bookings/quote", body, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		quote, ok := resp.Data["quote"].(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, 20000, quote["subtotal"])
		assert.EqualValues(t, 150, quote["protection_plan_fee"])
		assert.EqualValues(t, 20150, quote["final_total"])
	})

	var bookingID int64

	t.Run("POST /bookings", func(t *testing.T) {
		body := map[string]interface{}{
			"space_id": spaceID,
			"guests":   4,
			"slots": []map[string]string{
				{"date": date, "start": "10:00", "end": "12:00"},
			},
		}
		w, err := suite.makeRequest("POST", "/api/v1/bookings", body, clientToken)
		require.NoError(t, err)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		if !resp.Success {
			logErrorResponse(t, resp, "Booking creation failed")
			t.FailNow()
		}
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotEmpty(t, resp.Data["request_id"])

		bookings, ok := resp.Data["bookings"].([]interface{})
		require.True(t, ok)
		require.Len(t, bookings, 1)
		first := bookings[0].(map[string]interface{})
		bookingID = int64(first["id"].(float64))
		assert.Equal(t, "pending", first["status"])
	})

	t.Run("POST /bookings same slot conflicts", func(t *testing.T) {
		body := map[string]interface{}{
			"space_id": spaceID,
			"guests":   2,
			"slots": []map[string]string{
				{"date": date, "start": "11:00", "end": "13:00"},
			},
		}
		w, err := suite.makeRequest("POST", "/api/v1/bookings", body, clientToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "SLOT_UNAVAILABLE", resp.Error.Code)
	})

	t.Run("GET /bookings/my", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/bookings/my", nil, clientToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		bookings, ok := resp.Data["bookings"].([]interface{})
		require.True(t, ok)
		assert.Len(t, bookings, 1)
	})

	t.Run("PATCH /bookings/:id/status by client is forbidden", func(t *testing.T) {
		body := map[string]interface{}{"status": "approved"}
		w, err := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/bookings/%d/status", bookingID), body, clientToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("PATCH /bookings/:id/status approve", func(t *testing.T) {
		body := map[string]interface{}{"status": "approved"}
		w, err := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/bookings/%d/status", bookingID), body, hostToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		b, ok := resp.Data["booking"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "approved", b["status"])
	})

	t.Run("PATCH /bookings/:id/status twice conflicts", func(t *testing.T) {
		body := map[string]interface{}{"status": "rejected"}
		w, err := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/bookings/%d/status", bookingID), body, hostToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GET /notifications after decision", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/notifications", nil, clientToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", "/api/v1/notifications/unread-count", nil, clientToken)
		require.NoError(t, err)
		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.EqualValues(t, 1, resp.Data["unread"])
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
