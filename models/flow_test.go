package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlowDefaults(t *testing.T) {
	f := ParseFlow(url.Values{})
	assert.Equal(t, "", f.Slug)
	assert.Equal(t, 1, f.Rooms)
	assert.Equal(t, 2, f.Adults)
	assert.Equal(t, 0, f.Children)
	assert.Equal(t, 0, f.Infants)
}

func TestParseFlowFullQuery(t *testing.T) {
	q := url.Values{}
	q.Set("slug", "romance")
	q.Set("month", "June")
	q.Set("budget", "2000")
	q.Set("rooms", "2")
	q.Set("adults", "3")
	q.Set("children", "1")

	f := ParseFlow(q)
	assert.Equal(t, "romance", f.Slug)
	assert.Equal(t, "June", f.Month)
	assert.Equal(t, "2000", f.Budget)
	assert.Equal(t, 2, f.Rooms)
	assert.Equal(t, 3, f.Adults)
	assert.Equal(t, 1, f.Children)
	assert.Equal(t, 0, f.Infants)
}

func TestParseFlowExperienceParamFallback(t *testing.T) {
	q := url.Values{}
	q.Set("experience", "cruises")
	q.Set("month", "August")

	f := ParseFlow(q)
	assert.Equal(t, "cruises", f.Slug)
}

func TestParseFlowBadNumbersUseDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("adults", "lots")
	q.Set("rooms", "-2")

	f := ParseFlow(q)
	assert.Equal(t, 2, f.Adults)
	assert.Equal(t, 1, f.Rooms)
}

func TestEncodeRoundTrip(t *testing.T) {
	f := BookingFlow{
		Slug: "romance", Month: "June", Budget: "2000",
		Rooms: 1, Adults: 2, Children: 1, Infants: 0,
	}
	assert.Equal(t, f, ParseFlow(f.Encode()))
}

func TestSelectMonthURLCarriesState(t *testing.T) {
	f := BookingFlow{Slug: "romance", Budget: "2000", Rooms: 1, Adults: 2}
	u, err := url.Parse(f.SelectMonthURL())
	assert.NoError(t, err)
	assert.Equal(t, "/flow/select-month", u.Path)
	assert.Equal(t, "romance", u.Query().Get("slug"))
	assert.Equal(t, "2000", u.Query().Get("budget"))
}

func TestResultsURLKeepsExperienceParam(t *testing.T) {
	f := BookingFlow{Slug: "romance", Month: "June", Budget: "2000", Rooms: 1, Adults: 2}
	u, err := url.Parse(f.ResultsURL())
	assert.NoError(t, err)
	assert.Equal(t, "/flow/results", u.Path)
	assert.Equal(t, "romance", u.Query().Get("experience"))
	assert.Equal(t, "romance", u.Query().Get("slug"))
	assert.Equal(t, "June", u.Query().Get("month"))
}

func TestCheckoutURLParams(t *testing.T) {
	f := BookingFlow{Slug: "romance"}
	u, err := url.Parse(f.CheckoutURL("Romantic Santorini Escape", "1,850 ₪"))
	assert.NoError(t, err)
	assert.Equal(t, "/checkout", u.Path)
	assert.Equal(t, "Romantic Santorini Escape", u.Query().Get("packageTitle"))
	assert.Equal(t, "1,850 ₪", u.Query().Get("price"))
	assert.Equal(t, "romance", u.Query().Get("slug"))
}

func TestFlowMonths(t *testing.T) {
	assert.Len(t, FlowMonths, 12)
	assert.Equal(t, "January", FlowMonths[0])
	assert.Equal(t, "December", FlowMonths[11])
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}
