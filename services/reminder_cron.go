package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartReminderCron mails the team inbox every morning with bookings that
// have sat in pending for more than a day, so none of them gets forgotten
// before the confirmation phone call.
func StartReminderCron(db *gorm.DB, cfg *config.Config) {
	c := cron.New()
	c.AddFunc("0 8 * * *", func() {
		SendPendingReminders(db, cfg)
	})
	c.Start()
	log.Println("Pending-booking reminder cron started (daily at 08:00)")
}

func SendPendingReminders(db *gorm.DB, cfg *config.Config) {
	cutoff := time.Now().Add(-24 * time.Hour)
	var stale []models.Booking
	if err := db.Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Order("created_at ASC").Find(&stale).Error; err != nil {
		utils.LogError(err, "reminder cron: load pending bookings")
		return
	}
	if len(stale) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "יש %d הזמנות שממתינות לאישור מעל 24 שעות:\n\n", len(stale))
	for _, booking := range stale {
		fmt.Fprintf(&b, "- #%d %s | %s | %s | %s אנשים: %d\n",
			booking.ID, booking.BookingRef, booking.CustomerName,
			booking.CustomerPhone, booking.PreferredDate, booking.NumberOfPeople)
	}

	err := utils.SendEmail(cfg.AdminEmail, "הזמנות ממתינות לטיפול", b.String(),
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "reminder cron: send email")
	}
}
