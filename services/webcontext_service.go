package services

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// WebContextService pulls a few paragraphs about a destination from
// Wikivoyage. Used to ground recommendation prompts when the LLM provider
// cannot browse the web itself. Any failure degrades to an empty string;
// the prompt simply goes out without extra context.
type WebContextService struct {
	baseURL    string
	httpClient *http.Client
}

func NewWebContextService() *WebContextService {
	return &WebContextService{
		baseURL: "https://en.wikivoyage.org/wiki/",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

const maxContextChars = 1500

// DestinationContext fetches the article for the first place named in a
// destination phrase ("Santorini or Venice" → Santorini) and returns its
// opening paragraphs, capped to a prompt-friendly length.
func (s *WebContextService) DestinationContext(destination string) string {
	place := firstPlace(destination)
	if place == "" {
		return ""
	}

	pageURL := s.baseURL + url.PathEscape(strings.ReplaceAll(place, " ", "_"))
	resp, err := s.httpClient.Get(pageURL)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	var b strings.Builder
	doc.Find("div.mw-parser-output > p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		if b.Len()+len(text) > maxContextChars {
			return false
		}
		b.WriteString(text)
		b.WriteString("\n")
		return b.Len() < maxContextChars
	})

	if b.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("Background on %s (from Wikivoyage):\n%s", place, b.String())
}

// firstPlace extracts the first concrete place name from phrases like
// "Tanzania or Costa Rica", "Europe (e.g., Prague, Budapest)" or
// "the Swiss Alps or Aspen, Colorado".
func firstPlace(destination string) string {
	d := destination
	if i := strings.Index(d, "(e.g.,"); i >= 0 {
		rest := d[i+len("(e.g.,"):]
		rest = strings.TrimRight(rest, ")")
		d = rest
	}
	if i := strings.Index(d, " or "); i >= 0 {
		d = d[:i]
	}
	if i := strings.Index(d, ","); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimSpace(d)
	d = strings.TrimPrefix(d, "the ")
	for _, prefix := range []string{"a major ", "a countryside ", "a wellness ", "a popular "} {
		if strings.HasPrefix(d, prefix) {
			return ""
		}
	}
	return strings.TrimSpace(d)
}
