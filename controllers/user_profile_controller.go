package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type UserProfileController struct {
	RDB *redis.Client
}

func NewUserProfileController(rdb *redis.Client) *UserProfileController {
	return &UserProfileController{RDB: rdb}
}

// GET /user/profile — the current-user lookup every page used to repeat;
// now a single session endpoint. 401 when unauthenticated (handled by the
// JWT middleware before we get here).
func (upc *UserProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "המשתמש לא נמצא"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"role":         user.Role,
		"created_date": user.CreatedAt,
	}})
}

// GET /user/bookings — the customer's own bookings, newest first, with
// experience names resolved (raw slug when the experience is gone).
func (upc *UserProfileController) MyBookings(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "המשתמש לא נמצא"})
		return
	}

	var bookings []models.Booking
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	if err := db.Where("created_by = ?", email).Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.LogError(err, "my bookings: load")
		c.JSON(http.StatusOK, gin.H{"bookings": []models.Booking{}})
		return
	}

	var experiences []models.Experience
	if err := db.Find(&experiences).Error; err != nil {
		utils.LogError(err, "my bookings: load experiences")
	}

	type bookingView struct {
		models.Booking
		ExperienceName string `json:"experience_name"`
	}
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			Booking:        b,
			ExperienceName: models.NameBySlug(experiences, b.ExperienceSlug),
		})
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// POST /user/logout — blacklists the current token until it would have
// expired anyway.
func (upc *UserProfileController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		ctx := context.Background()
		upc.RDB.Set(ctx, "blacklist:"+token, 1, 72*time.Hour)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
