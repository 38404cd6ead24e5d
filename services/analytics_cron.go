package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const analyticsSnapshotTTL = 26 * time.Hour

func analyticsSnapshotKey(days int) string {
	return fmt.Sprintf("analytics:snap:%d", days)
}

// StartAnalyticsCron warms the Redis analytics snapshots for every range
// once at startup and then nightly, so the dashboard opens instantly even
// on large booking tables.
func StartAnalyticsCron(db *gorm.DB) {
	WarmAnalyticsSnapshots(db)

	c := cron.New()
	c.AddFunc("30 2 * * *", func() {
		WarmAnalyticsSnapshots(db)
	})
	c.Start()
	log.Println("Analytics snapshot cron started (nightly at 02:30)")
}

// WarmAnalyticsSnapshots recomputes and caches the snapshot for each
// selectable range.
func WarmAnalyticsSnapshots(db *gorm.DB) {
	var bookings []models.Booking
	var experiences []models.Experience
	var users []models.User

	if err := db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.LogError(err, "analytics cron: load bookings")
		return
	}
	if err := db.Find(&experiences).Error; err != nil {
		utils.LogError(err, "analytics cron: load experiences")
		return
	}
	if err := db.Find(&users).Error; err != nil {
		utils.LogError(err, "analytics cron: load users")
		return
	}

	rdb := utils.GetRedis()
	if rdb == nil {
		return
	}
	now := time.Now()
	for _, days := range AnalyticsRanges {
		snap := BuildSnapshot(bookings, experiences, users, days, now)
		data, err := json.Marshal(snap)
		if err != nil {
			utils.LogError(err, "analytics cron: marshal snapshot")
			continue
		}
		if err := rdb.Set(utils.RedisCtx(), analyticsSnapshotKey(days), data, analyticsSnapshotTTL).Err(); err != nil {
			utils.LogError(err, "analytics cron: cache snapshot")
		}
	}
}

// CachedSnapshot returns the warmed snapshot for a range, if present.
func CachedSnapshot(days int) (AnalyticsSnapshot, bool) {
	rdb := utils.GetRedis()
	if rdb == nil {
		return AnalyticsSnapshot{}, false
	}
	data, err := rdb.Get(utils.RedisCtx(), analyticsSnapshotKey(days)).Bytes()
	if err != nil {
		return AnalyticsSnapshot{}, false
	}
	var snap AnalyticsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return AnalyticsSnapshot{}, false
	}
	return snap, true
}
