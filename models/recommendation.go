package models

// VacationPackage is one AI-generated offer on the results page.
type VacationPackage struct {
	PackageName string  `json:"package_name"`
	TotalPrice  float64 `json:"total_price"`
	Flight      Flight  `json:"flight"`
	Hotel       Hotel   `json:"hotel"`
}

type Flight struct {
	Airline          string `json:"airline"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureDate    string `json:"departure_date"`
	ArrivalDate      string `json:"arrival_date"`
	Duration         string `json:"duration"`
}

type Hotel struct {
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
}
