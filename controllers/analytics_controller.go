package controllers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct{}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{}
}

// GET /admin/analytics?range=7|30|90|365
// Serves the nightly Redis snapshot when one exists; ?refresh=1 (or a
// cache miss) recomputes from a concurrent batched load of bookings,
// experiences and users — the three reads are independent and the
// response waits for all of them.
func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	days := 30
	if rangeStr := c.Query("range"); rangeStr != "" {
		parsed, err := strconv.Atoi(rangeStr)
		if err != nil || !services.ValidAnalyticsRange(parsed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "range must be one of 7, 30, 90, 365"})
			return
		}
		days = parsed
	}

	if c.Query("refresh") != "1" {
		if snap, ok := services.CachedSnapshot(days); ok {
			c.JSON(http.StatusOK, gin.H{"analytics": snap, "cached": true})
			return
		}
	}

	db := utils.GetDB()
	var bookings []models.Booking
	var experiences []models.Experience
	var users []models.User
	var bookingsErr, experiencesErr, usersErr error

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		bookingsErr = db.Order("created_at DESC").Find(&bookings).Error
	}()
	go func() {
		defer wg.Done()
		experiencesErr = db.Find(&experiences).Error
	}()
	go func() {
		defer wg.Done()
		usersErr = db.Find(&users).Error
	}()
	wg.Wait()

	for _, err := range []error{bookingsErr, experiencesErr, usersErr} {
		if err != nil {
			utils.LogError(err, "analytics: load data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics data"})
			return
		}
	}

	snap := services.BuildSnapshot(bookings, experiences, users, days, time.Now())
	c.JSON(http.StatusOK, gin.H{"analytics": snap, "cached": false})
}
