package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminBookingController struct {
	Cfg *config.Config
}

func NewAdminBookingController(cfg *config.Config) *AdminBookingController {
	return &AdminBookingController{Cfg: cfg}
}

// bookingByID loads one booking by its numeric path id. The raw parameter
// never reaches the query: anything non-numeric reads as not found.
func bookingByID(db *gorm.DB, rawID string) (models.Booking, error) {
	var booking models.Booking
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return booking, gorm.ErrRecordNotFound
	}
	err = db.First(&booking, id).Error
	return booking, err
}

// GET /admin/bookings?status=pending — all bookings, newest first, with
// experience names resolved for display.
func (abc *AdminBookingController) List(c *gin.Context) {
	db := utils.GetDB()
	query := db.Model(&models.Booking{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" && status != "all" {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.LogError(err, "admin bookings: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}

	var experiences []models.Experience
	if err := db.Find(&experiences).Error; err != nil {
		utils.LogError(err, "admin bookings: load experiences")
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

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/bookings/:id/status — the only mutation a booking ever sees
// after creation. Any of the three statuses may be set at any time;
// setting the current one changes nothing. The admin list reloads from
// the store afterwards rather than patching in memory.
func (abc *AdminBookingController) UpdateStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, confirmed or cancelled"})
		return
	}

	db := utils.GetDB()
	booking, err := bookingByID(db, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ההזמנה לא נמצאה"})
		return
	}

	// Setting the current status again is a no-op: the record, including
	// its updated_at, stays exactly as it was.
	if booking.Status != req.Status {
		if err := db.Model(&booking).Update("status", req.Status).Error; err != nil {
			utils.LogError(err, "admin bookings: update status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בעדכון סטטוס"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type BookingEmailRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// POST /admin/bookings/:id/email — the per-booking compose dialog. The
// recipient is always the booking's customer.
func (abc *AdminBookingController) SendEmail(c *gin.Context) {
	var req BookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "אנא מלא את כל השדות"})
		return
	}

	db := utils.GetDB()
	booking, err := bookingByID(db, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ההזמנה לא נמצאה"})
		return
	}

	err = utils.SendEmail(booking.CustomerEmail, req.Subject, req.Body,
		abc.Cfg.SMTPHost, abc.Cfg.SMTPPort, abc.Cfg.SMTPUser, abc.Cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "admin bookings: send email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בשליחת האימייל"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// GET /admin/bookings/:id/email-draft — the prefilled compose content,
// same fields the admin dialog has always defaulted to.
func (abc *AdminBookingController) EmailDraft(c *gin.Context) {
	db := utils.GetDB()
	booking, err := bookingByID(db, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ההזמנה לא נמצאה"})
		return
	}

	var experiences []models.Experience
	if err := db.Find(&experiences).Error; err != nil {
		utils.LogError(err, "admin bookings: load experiences")
	}

	packageName := booking.PackageName
	if packageName == "" {
		packageName = models.NameBySlug(experiences, booking.ExperienceSlug)
	}

	subject := fmt.Sprintf("בנוגע להזמנה שלך - %s", packageName)
	body := fmt.Sprintf("שלום %s,\n\nבנוגע להזמנה שלך מתאריך %s.\n\nבברכה,\nצוות 1000-2000",
		booking.CustomerName, booking.CreatedAt.Format("02/01/2006"))

	c.JSON(http.StatusOK, gin.H{
		"to":      booking.CustomerEmail,
		"subject": subject,
		"body":    body,
	})
}
