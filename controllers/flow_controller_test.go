package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the shared handle at a fresh in-memory database for
// one test. The single-connection pool keeps sqlite's :memory: store alive
// across queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Booking{}))
	utils.SetDB(db)
	return db
}

func thankYouRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	fc := NewFlowController(nil)
	r.GET("/flow/thank-you", fc.ThankYou)
	return r
}

func TestThankYouFindsBookingByID(t *testing.T) {
	db := setupTestDB(t)
	booking := models.Booking{
		BookingRef:    "ref-1",
		CustomerName:  "דנה",
		CustomerEmail: "dana@example.com",
	}
	assert.NoError(t, db.Create(&booking).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flow/thank-you?id="+strconv.Itoa(int(booking.ID)), nil)
	thankYouRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ref-1")
}

func TestThankYouRejectsNonNumericID(t *testing.T) {
	db := setupTestDB(t)
	booking := models.Booking{
		BookingRef:    "ref-secret",
		CustomerName:  "Victim",
		CustomerEmail: "victim@example.com",
	}
	assert.NoError(t, db.Create(&booking).Error)

	// A condition string in place of the id must read as not-found, never
	// as a WHERE clause.
	for _, rawID := range []string{
		"customer_email LIKE '%victim%'",
		"1 OR 1=1",
		"abc",
		"-1",
		"0",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/flow/thank-you?id="+url.QueryEscape(rawID), nil)
		thankYouRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, rawID)
		assert.NotContains(t, w.Body.String(), "victim@example.com", rawID)
	}
}

func TestThankYouMissingIDRedirectsHome(t *testing.T) {
	setupTestDB(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flow/thank-you", nil)
	thankYouRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestOfferPriceRoundsToNearestAgora(t *testing.T) {
	assert.Equal(t, "0.29 ₪", offerPrice(0.29))
	assert.Equal(t, "1,849.99 ₪", offerPrice(1849.99))
	assert.Equal(t, "1,850 ₪", offerPrice(1850))
	assert.Equal(t, "950 ₪", offerPrice(950.0))
}

func TestOfferPriceRoundTripsThroughParse(t *testing.T) {
	price := offerPrice(1849.99)
	assert.Equal(t, int64(184999), utils.ParseMoney(price).Amount)
}

// unmarshalBody is a small helper for asserting on JSON responses.
func unmarshalBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
