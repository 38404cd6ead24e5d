package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a customer order for a vacation package. Status starts at
// pending and is only ever changed by an admin; every other field is set
// once at checkout. Price is kept as the opaque display string the results
// page produced (e.g. "1,250 ₪") — aggregation parses it through
// utils.Money.
type Booking struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	BookingRef      string         `json:"booking_ref" gorm:"uniqueIndex;not null"`
	UserID          uint           `json:"user_id" gorm:"index"`
	ExperienceSlug  string         `json:"experience_slug" gorm:"index"`
	PackageName     string         `json:"package_name"`
	Price           string         `json:"price"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerEmail   string         `json:"customer_email" gorm:"not null;index"`
	CustomerPhone   string         `json:"customer_phone" gorm:"not null"`
	PreferredDate   string         `json:"preferred_date" gorm:"not null"`
	NumberOfPeople  int            `json:"number_of_people" gorm:"not null"`
	SpecialRequests string         `json:"special_requests" gorm:"type:text"`
	Status          string         `json:"status" gorm:"default:'pending';index"`
	CreatedBy       string         `json:"created_by" gorm:"index"`
	CreatedAt       time.Time      `json:"created_date"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// BookingRequest is the checkout payload. Package metadata arrives from
// the results step of the flow; the rest is the customer form.
type BookingRequest struct {
	ExperienceSlug  string `json:"experience_slug"`
	PackageName     string `json:"package_name"`
	Price           string `json:"price"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	PreferredDate   string `json:"preferred_date" binding:"required"`
	NumberOfPeople  int    `json:"number_of_people" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

// ValidStatus reports whether s is one of the three booking statuses.
// Transitions themselves are unrestricted: an admin may re-confirm or
// re-cancel at will.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
