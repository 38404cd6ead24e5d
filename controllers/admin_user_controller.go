package controllers

import (
	"net/http"
	"time"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

type AdminUserController struct{}

func NewAdminUserController() *AdminUserController {
	return &AdminUserController{}
}

// GET /admin/users — all users, newest first, with how many bookings each
// has made. Accounts themselves are created by the auth flow; the admin
// panel only reads them.
func (auc *AdminUserController) List(c *gin.Context) {
	db := utils.GetDB()

	var users []models.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.LogError(err, "admin users: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	var bookings []models.Booking
	if err := db.Find(&bookings).Error; err != nil {
		utils.LogError(err, "admin users: load bookings")
	}
	countsByEmail := map[string]int{}
	for _, b := range bookings {
		countsByEmail[b.CreatedBy]++
	}

	type userView struct {
		ID           uint        `json:"id"`
		Email        *string     `json:"email"`
		FullName     string      `json:"full_name"`
		Role         string      `json:"role"`
		CreatedDate  time.Time   `json:"created_date"`
		BookingCount int         `json:"booking_count"`
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		count := 0
		if u.Email != nil {
			count = countsByEmail[*u.Email]
		}
		views = append(views, userView{
			ID:           u.ID,
			Email:        u.Email,
			FullName:     u.FullName,
			Role:         u.Role,
			CreatedDate:  u.CreatedAt,
			BookingCount: count,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}
