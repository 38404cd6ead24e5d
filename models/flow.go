package models

import (
	"net/url"
	"strconv"
)

// BookingFlow is the state of the guided search flow (home → transition →
// select month → results → checkout). The original site threaded these
// values through ad hoc query parameters per page; here they live in one
// struct that is parsed once per request and re-encoded when building the
// next step's URL, so every step stays reproducible from its URL alone.
type BookingFlow struct {
	Slug     string `json:"slug"`
	Month    string `json:"month"`
	Budget   string `json:"budget"`
	Rooms    int    `json:"rooms"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Infants  int    `json:"infants"`
}

// TransitionAdvanceSeconds is the fixed display delay of the transition
// screen before it auto-advances to month selection. A UX delay, not a
// network timeout.
const TransitionAdvanceSeconds = 5

// ParseFlow reads the flow state out of query parameters. The results page
// historically used "experience" where the other pages used "slug", so
// both are accepted.
func ParseFlow(q url.Values) BookingFlow {
	f := BookingFlow{
		Slug:     q.Get("slug"),
		Month:    q.Get("month"),
		Budget:   q.Get("budget"),
		Rooms:    intParam(q, "rooms", 1),
		Adults:   intParam(q, "adults", 2),
		Children: intParam(q, "children", 0),
		Infants:  intParam(q, "infants", 0),
	}
	if f.Slug == "" {
		f.Slug = q.Get("experience")
	}
	return f
}

func intParam(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Encode serializes the flow back into query parameters.
func (f BookingFlow) Encode() url.Values {
	q := url.Values{}
	q.Set("slug", f.Slug)
	if f.Month != "" {
		q.Set("month", f.Month)
	}
	if f.Budget != "" {
		q.Set("budget", f.Budget)
	}
	q.Set("rooms", strconv.Itoa(f.Rooms))
	q.Set("adults", strconv.Itoa(f.Adults))
	q.Set("children", strconv.Itoa(f.Children))
	q.Set("infants", strconv.Itoa(f.Infants))
	return q
}

// TransitionURL is the step after picking an experience on the home page.
func (f BookingFlow) TransitionURL() string {
	return "/flow/transition?" + f.Encode().Encode()
}

// SelectMonthURL is where the transition screen auto-advances to.
func (f BookingFlow) SelectMonthURL() string {
	return "/flow/select-month?" + f.Encode().Encode()
}

// ResultsURL keeps the original "experience" parameter name of the results
// page on top of the shared encoding.
func (f BookingFlow) ResultsURL() string {
	q := f.Encode()
	q.Set("experience", f.Slug)
	return "/flow/results?" + q.Encode()
}

// CheckoutURL forwards the chosen package's name, display price and the
// experience slug to checkout, exactly what the book-now button carries.
func (f BookingFlow) CheckoutURL(packageName, price string) string {
	q := url.Values{}
	q.Set("packageTitle", packageName)
	q.Set("price", price)
	q.Set("slug", f.Slug)
	return "/checkout?" + q.Encode()
}

// Months selectable on the month screen, in calendar order.
var FlowMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
