package controllers

import (
	"net/http"
	"strconv"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct{}

func NewBookingController() *BookingController {
	return &BookingController{}
}

// POST /user/bookings — checkout. Requires a session: an unauthenticated
// request never reaches here (the middleware returns 401 and the client
// goes through redirect login, then resubmits). The booking always starts
// at pending; the price string travels through untouched.
func (bc *BookingController) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("user_id")
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "המשתמש לא נמצא"})
		return
	}

	createdBy := ""
	if user.Email != nil {
		createdBy = *user.Email
	}

	booking := models.Booking{
		BookingRef:      uuid.New().String(),
		UserID:          user.ID,
		ExperienceSlug:  req.ExperienceSlug,
		PackageName:     req.PackageName,
		Price:           req.Price,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PreferredDate:   req.PreferredDate,
		NumberOfPeople:  req.NumberOfPeople,
		SpecialRequests: req.SpecialRequests,
		Status:          models.StatusPending,
		CreatedBy:       createdBy,
	}
	if err := db.Create(&booking).Error; err != nil {
		utils.LogError(err, "booking: create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "אירעה שגיאה. אנא נסה שוב."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":   booking,
		"thank_you": "/flow/thank-you?id=" + strconv.FormatUint(uint64(booking.ID), 10),
	})
}
