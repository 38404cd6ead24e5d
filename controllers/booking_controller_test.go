package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func checkoutRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int(userID))
	})
	r.POST("/user/bookings", NewBookingController().Create)
	return r
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	email := "dana@example.com"
	user := models.User{Email: &email, FullName: "דנה", Confirmed: true}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

func checkoutPayload() map[string]interface{} {
	return map[string]interface{}{
		"experience_slug":  "romance",
		"package_name":     "Romantic Santorini Escape",
		"price":            "1,850 ₪",
		"customer_name":    "דנה",
		"customer_email":   "dana@example.com",
		"customer_phone":   "050-1234567",
		"preferred_date":   "2026-06-10",
		"number_of_people": 2,
	}
}

func TestCreateBookingStartsPending(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	body, _ := json.Marshal(checkoutPayload())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	checkoutRouter(user.ID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Booking
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, "dana@example.com", stored.CreatedBy)
	assert.NotEmpty(t, stored.BookingRef)
	assert.Equal(t, "1,850 ₪", stored.Price)

	resp := unmarshalBody(t, w)
	assert.Equal(t, `"/flow/thank-you?id=`+strconv.Itoa(int(stored.ID))+`"`, string(resp["thank_you"]))
}

func statusRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin/bookings/:id/status", NewAdminBookingController(cfg).UpdateStatus)
	return r
}

func putStatus(r *gin.Engine, id, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"status": status})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/bookings/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateStatusTransitionAndIdempotentRepeat(t *testing.T) {
	db := setupTestDB(t)
	booking := models.Booking{BookingRef: "ref-2", CustomerName: "דנה", CustomerEmail: "dana@example.com"}
	assert.NoError(t, db.Create(&booking).Error)
	r := statusRouter(&config.Config{})
	id := strconv.Itoa(int(booking.ID))

	w := putStatus(r, id, models.StatusConfirmed)
	assert.Equal(t, http.StatusOK, w.Code)

	var confirmed models.Booking
	assert.NoError(t, db.First(&confirmed, booking.ID).Error)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	// Re-confirming leaves the record observably unchanged, updated_at
	// included.
	w = putStatus(r, id, models.StatusConfirmed)
	assert.Equal(t, http.StatusOK, w.Code)

	var again models.Booking
	assert.NoError(t, db.First(&again, booking.ID).Error)
	assert.Equal(t, confirmed, again)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	booking := models.Booking{BookingRef: "ref-3", CustomerName: "דנה", CustomerEmail: "dana@example.com"}
	assert.NoError(t, db.Create(&booking).Error)
	r := statusRouter(&config.Config{})

	w := putStatus(r, strconv.Itoa(int(booking.ID)), "shipped")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusRejectsNonNumericID(t *testing.T) {
	db := setupTestDB(t)
	booking := models.Booking{BookingRef: "ref-4", CustomerName: "Victim", CustomerEmail: "victim@example.com"}
	assert.NoError(t, db.Create(&booking).Error)
	r := statusRouter(&config.Config{})

	w := putStatus(r, url.PathEscape("customer_email LIKE '%victim%'"), models.StatusCancelled)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Booking
	assert.NoError(t, db.First(&stored, booking.ID).Error)
	assert.NotEqual(t, models.StatusCancelled, stored.Status)
}
