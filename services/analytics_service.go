package services

import (
	"math"
	"sort"
	"time"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"
)

// AnalyticsRanges are the selectable dashboard windows, in days.
var AnalyticsRanges = []int{7, 30, 90, 365}

func ValidAnalyticsRange(days int) bool {
	for _, r := range AnalyticsRanges {
		if r == days {
			return true
		}
	}
	return false
}

type ExperiencePopularity struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

type DailyPoint struct {
	Date     string `json:"date"` // dd/MM
	Bookings int    `json:"bookings"`
}

// AnalyticsSnapshot is everything the admin dashboard renders for one time
// range. All of it comes from a single pass over the fetched booking list;
// there is deliberately no SQL aggregation so the dangling-slug fallback
// behaves exactly like the booking views.
type AnalyticsSnapshot struct {
	RangeDays           int                    `json:"range_days"`
	Revenue             int64                  `json:"revenue"`
	NewBookings         int                    `json:"new_bookings"`
	Pending             int                    `json:"pending"`
	Confirmed           int                    `json:"confirmed"`
	Cancelled           int                    `json:"cancelled"`
	TopExperiences      []ExperiencePopularity `json:"top_experiences"`
	BookingsOverTime    []DailyPoint           `json:"bookings_over_time"`
	AverageBookingValue int64                  `json:"average_booking_value"`
	TotalUsers          int                    `json:"total_users"`
	GeneratedAt         time.Time              `json:"generated_at"`
}

// FilterByRange keeps bookings created strictly after now − days. A
// booking created exactly days+ε ago falls out of every range-scoped
// aggregate.
func FilterByRange(bookings []models.Booking, days int, now time.Time) []models.Booking {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.CreatedAt.After(cutoff) {
			out = append(out, b)
		}
	}
	return out
}

// Revenue sums confirmed bookings' prices in whole currency units.
func Revenue(bookings []models.Booking) int64 {
	var total int64
	for _, b := range bookings {
		if b.Status == models.StatusConfirmed {
			total += utils.ParseMoney(b.Price).Units()
		}
	}
	return total
}

func CountByStatus(bookings []models.Booking) (pending, confirmed, cancelled int) {
	for _, b := range bookings {
		switch b.Status {
		case models.StatusConfirmed:
			confirmed++
		case models.StatusCancelled:
			cancelled++
		default:
			pending++
		}
	}
	return
}

// TopExperiences ranks experiences by booking count, best n first.
// Bookings whose slug no longer resolves are counted under the raw slug.
func TopExperiences(bookings []models.Booking, experiences []models.Experience, n int) []ExperiencePopularity {
	counts := map[string]int{}
	for _, b := range bookings {
		name := models.NameBySlug(experiences, b.ExperienceSlug)
		counts[name]++
	}

	ranked := make([]ExperiencePopularity, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, ExperiencePopularity{Name: name, Bookings: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Bookings != ranked[j].Bookings {
			return ranked[i].Bookings > ranked[j].Bookings
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BookingsOverTime buckets bookings per creation day, keyed dd/MM and
// sorted lexicographically (the dashboard has always keyed days this way).
func BookingsOverTime(bookings []models.Booking) []DailyPoint {
	daily := map[string]int{}
	for _, b := range bookings {
		daily[b.CreatedAt.Format("02/01")]++
	}

	series := make([]DailyPoint, 0, len(daily))
	for date, count := range daily {
		series = append(series, DailyPoint{Date: date, Bookings: count})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// AverageConfirmedValue is the mean confirmed booking price in whole
// units, rounded. Zero when nothing is confirmed.
func AverageConfirmedValue(bookings []models.Booking) int64 {
	var total int64
	var count int
	for _, b := range bookings {
		if b.Status == models.StatusConfirmed && b.Price != "" {
			total += utils.ParseMoney(b.Price).Units()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int64(math.Round(float64(total) / float64(count)))
}

// BuildSnapshot computes the full dashboard payload for one range.
func BuildSnapshot(bookings []models.Booking, experiences []models.Experience, users []models.User, days int, now time.Time) AnalyticsSnapshot {
	filtered := FilterByRange(bookings, days, now)
	pending, confirmed, cancelled := CountByStatus(filtered)
	return AnalyticsSnapshot{
		RangeDays:           days,
		Revenue:             Revenue(filtered),
		NewBookings:         len(filtered),
		Pending:             pending,
		Confirmed:           confirmed,
		Cancelled:           cancelled,
		TopExperiences:      TopExperiences(filtered, experiences, 5),
		BookingsOverTime:    BookingsOverTime(filtered),
		AverageBookingValue: AverageConfirmedValue(filtered),
		TotalUsers:          len(users),
		GeneratedAt:         now,
	}
}
