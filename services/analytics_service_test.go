package services

import (
	"testing"
	"time"

	"github.com/shaiiram/website1000-2000/models"

	"github.com/stretchr/testify/assert"
)

func booking(slug, price, status string, createdAt time.Time) models.Booking {
	return models.Booking{
		ExperienceSlug: slug,
		Price:          price,
		Status:         status,
		CreatedAt:      createdAt,
	}
}

func TestRevenueEmpty(t *testing.T) {
	assert.Equal(t, int64(0), Revenue(nil))
}

func TestRevenueOnlyConfirmed(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("romance", "1,800 ₪", models.StatusConfirmed, now),
		booking("romance", "1,250 ₪", models.StatusPending, now),
		booking("cruises", "2,000 ₪", models.StatusCancelled, now),
	}
	assert.Equal(t, int64(1800), Revenue(bookings))
}

func TestFilterByRangeExcludesOldBookings(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("romance", "1,800 ₪", models.StatusConfirmed, now.AddDate(0, 0, -1)),
		booking("cruises", "1,500 ₪", models.StatusConfirmed, now.AddDate(0, 0, -31)),
	}
	filtered := FilterByRange(bookings, 30, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "romance", filtered[0].ExperienceSlug)
}

func TestCountByStatusUnknownCountsAsPending(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("romance", "", models.StatusConfirmed, now),
		booking("romance", "", models.StatusCancelled, now),
		booking("romance", "", models.StatusPending, now),
		booking("romance", "", "", now),
	}
	pending, confirmed, cancelled := CountByStatus(bookings)
	assert.Equal(t, 2, pending)
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, cancelled)
}

func TestTopExperiencesRankingAndFallback(t *testing.T) {
	now := time.Now()
	experiences := []models.Experience{
		{Slug: "romance", Name: "רומנטיקה"},
		{Slug: "cruises", Name: "קרוזים"},
	}
	bookings := []models.Booking{
		booking("romance", "", models.StatusPending, now),
		booking("romance", "", models.StatusPending, now),
		booking("cruises", "", models.StatusPending, now),
		booking("deleted-experience", "", models.StatusPending, now),
	}

	top := TopExperiences(bookings, experiences, 5)
	assert.Len(t, top, 3)
	assert.Equal(t, "רומנטיקה", top[0].Name)
	assert.Equal(t, 2, top[0].Bookings)
	// Slug that no longer resolves shows up under its raw value.
	names := []string{top[1].Name, top[2].Name}
	assert.Contains(t, names, "deleted-experience")
}

func TestTopExperiencesCapped(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("a", "", models.StatusPending, now),
		booking("b", "", models.StatusPending, now),
		booking("c", "", models.StatusPending, now),
		booking("d", "", models.StatusPending, now),
		booking("e", "", models.StatusPending, now),
		booking("f", "", models.StatusPending, now),
	}
	top := TopExperiences(bookings, nil, 5)
	assert.Len(t, top, 5)
}

func TestBookingsOverTimeBucketsByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking("romance", "", models.StatusPending, day1),
		booking("romance", "", models.StatusPending, day1.Add(2*time.Hour)),
		booking("cruises", "", models.StatusPending, day2),
	}

	series := BookingsOverTime(bookings)
	assert.Equal(t, []DailyPoint{
		{Date: "10/03", Bookings: 2},
		{Date: "11/03", Bookings: 1},
	}, series)
}

func TestAverageConfirmedValue(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("romance", "1,800 ₪", models.StatusConfirmed, now),
		booking("romance", "1,250 ₪", models.StatusConfirmed, now),
		booking("romance", "9,999 ₪", models.StatusPending, now),
	}
	assert.Equal(t, int64(1525), AverageConfirmedValue(bookings))
}

func TestAverageConfirmedValueNoConfirmed(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		booking("romance", "1,800 ₪", models.StatusPending, now),
	}
	assert.Equal(t, int64(0), AverageConfirmedValue(bookings))
}

func TestBuildSnapshotEndToEnd(t *testing.T) {
	now := time.Now()
	experiences := []models.Experience{{Slug: "romance", Name: "רומנטיקה"}}
	users := []models.User{{}, {}}
	bookings := []models.Booking{
		booking("romance", "1,800 ₪", models.StatusConfirmed, now.AddDate(0, 0, -2)),
		booking("romance", "1,500 ₪", models.StatusPending, now.AddDate(0, 0, -1)),
		booking("romance", "5,000 ₪", models.StatusConfirmed, now.AddDate(0, 0, -40)),
	}

	snap := BuildSnapshot(bookings, experiences, users, 30, now)
	assert.Equal(t, 30, snap.RangeDays)
	assert.Equal(t, int64(1800), snap.Revenue)
	assert.Equal(t, 2, snap.NewBookings)
	assert.Equal(t, 1, snap.Pending)
	assert.Equal(t, 1, snap.Confirmed)
	assert.Equal(t, 0, snap.Cancelled)
	assert.Equal(t, int64(1800), snap.AverageBookingValue)
	assert.Equal(t, 2, snap.TotalUsers)
	assert.Len(t, snap.TopExperiences, 1)
	assert.Equal(t, "רומנטיקה", snap.TopExperiences[0].Name)
}

func TestValidAnalyticsRange(t *testing.T) {
	assert.True(t, ValidAnalyticsRange(7))
	assert.True(t, ValidAnalyticsRange(365))
	assert.False(t, ValidAnalyticsRange(14))
	assert.False(t, ValidAnalyticsRange(0))
}
