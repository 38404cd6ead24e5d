package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstPlace(t *testing.T) {
	cases := map[string]string{
		"Santorini or Venice":                  "Santorini",
		"Tanzania or Costa Rica":               "Tanzania",
		"Europe (e.g., Prague, Budapest)":      "Prague",
		"the Swiss Alps or Aspen, Colorado":    "Swiss Alps",
		"the Caribbean or the Mediterranean":   "Caribbean",
		"Rome or Athens":                       "Rome",
		"a major business hub like New York or London":                    "",
		"a countryside resort in Tuscany or a wellness center in Bali":    "",
		"a popular tourist destination":                                   "",
	}
	for destination, want := range cases {
		assert.Equal(t, want, firstPlace(destination), destination)
	}
}

func TestDestinationContextScrapesParagraphs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Santorini", r.URL.Path)
		w.Write([]byte(`<html><body><div class="mw-parser-output">
			<p>Santorini is a volcanic island in the Aegean Sea.</p>
			<p></p>
			<p>It is famous for its caldera views.</p>
		</div></body></html>`))
	}))
	defer server.Close()

	s := &WebContextService{
		baseURL:    server.URL + "/",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	ctx := s.DestinationContext("Santorini or Venice")

	assert.Contains(t, ctx, "Background on Santorini")
	assert.Contains(t, ctx, "volcanic island")
	assert.Contains(t, ctx, "caldera views")
}

func TestDestinationContextGenericPhrase(t *testing.T) {
	s := NewWebContextService()
	assert.Equal(t, "", s.DestinationContext("a popular tourist destination"))
}

func TestDestinationContextFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	s := &WebContextService{
		baseURL:    server.URL + "/",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	assert.Equal(t, "", s.DestinationContext("Santorini or Venice"))
}
