package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"
)

// PackageCount is the fixed number of offers the results page shows.
const PackageCount = 6

// experienceDestinations maps an experience slug to the destination phrase
// fed to the model. Unknown slugs fall back to a generic destination.
var experienceDestinations = map[string]string{
	"deals-sales":       "Europe (e.g., Prague, Budapest)",
	"adventures-safari": "Tanzania or Costa Rica",
	"beaches-diving":    "Thailand or the Maldives",
	"accessible-trips":  "a major accessible city like Barcelona or London",
	"heritage-trips":    "Rome or Athens",
	"spa-wellness":      "a countryside resort in Tuscany or a wellness center in Bali",
	"shopping-culinary": "Paris or Milan",
	"cruises":           "the Caribbean or the Mediterranean",
	"casino-gaming":     "Las Vegas or Macau",
	"winter-sports":     "the Swiss Alps or Aspen, Colorado",
	"romance":           "Santorini or Venice",
	"business-travel":   "a major business hub like New York or London",
}

const fallbackDestination = "a popular tourist destination"

// DestinationFor resolves an experience slug to its destination phrase.
func DestinationFor(slug string) string {
	if d, ok := experienceDestinations[slug]; ok {
		return d
	}
	return fallbackDestination
}

// packagesSchema is the structured-output contract: exactly six packages,
// each with a flight and a hotel carrying exactly three image URLs.
var packagesSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"packages": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"package_name": map[string]interface{}{
						"type":        "string",
						"description": "Catchy name for the package, e.g., 'Romantic Paris Escape'",
					},
					"total_price": map[string]interface{}{"type": "number"},
					"flight": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"airline":           map[string]interface{}{"type": "string"},
							"departure_airport": map[string]interface{}{"type": "string", "default": "TLV"},
							"arrival_airport":   map[string]interface{}{"type": "string"},
							"departure_date":    map[string]interface{}{"type": "string"},
							"arrival_date":      map[string]interface{}{"type": "string"},
							"duration":          map[string]interface{}{"type": "string"},
						},
						"required": []string{"airline", "arrival_airport", "departure_date", "arrival_date", "duration"},
					},
					"hotel": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name":        map[string]interface{}{"type": "string"},
							"rating":      map[string]interface{}{"type": "number", "minimum": 3, "maximum": 5},
							"description": map[string]interface{}{"type": "string"},
							"image_urls": map[string]interface{}{
								"type":     "array",
								"items":    map[string]interface{}{"type": "string", "format": "uri"},
								"minItems": 3,
								"maxItems": 3,
							},
						},
						"required": []string{"name", "rating", "description", "image_urls"},
					},
				},
				"required": []string{"package_name", "total_price", "flight", "hotel"},
			},
			"minItems": PackageCount,
			"maxItems": PackageCount,
		},
	},
	"required": []string{"packages"},
}

// RecommendService produces the AI-generated vacation packages for the
// results page.
type RecommendService struct {
	llm *LLMService
	web *WebContextService
}

func NewRecommendService(llm *LLMService, web *WebContextService) *RecommendService {
	return &RecommendService{llm: llm, web: web}
}

// BuildPrompt assembles the generation prompt for a destination, month and
// per-person budget ceiling (NIS).
func (s *RecommendService) BuildPrompt(destination, month, budget string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please generate %d diverse and realistic vacation packages for a trip to %s.\n", PackageCount, destination)
	fmt.Fprintf(&b, "The vacation should take place in %s.\n", month)
	fmt.Fprintf(&b, "The budget is up to %s NIS per person. Please ensure prices reflect this budget.\n", budget)
	b.WriteString("The package should include round-trip flights from TLV and a hotel stay.\n")
	b.WriteString("Generate varied options for airlines and hotels.\n")
	b.WriteString("Ensure hotel image URLs are real and from a provider like Unsplash.\n")
	b.WriteString("The response MUST strictly follow the provided JSON schema.\n")

	// Providers without their own browsing get scraped destination
	// background inlined instead.
	if s.web != nil && !s.llm.SupportsWebContext() {
		if ctx := s.web.DestinationContext(destination); ctx != "" {
			b.WriteString("\n")
			b.WriteString(ctx)
		}
	}
	return b.String()
}

// Packages generates the offers for one flow state. Malformed or empty
// model output yields an empty slice: the results page shows its empty
// state, nothing more.
func (s *RecommendService) Packages(ctx context.Context, flow models.BookingFlow) []models.VacationPackage {
	destination := DestinationFor(flow.Slug)
	prompt := s.BuildPrompt(destination, flow.Month, flow.Budget)

	raw, err := s.llm.Invoke(ctx, prompt, packagesSchema, true)
	if err != nil {
		utils.LogError(err, "recommend: invoke failed")
		return nil
	}
	return DecodePackages(raw)
}

// DecodePackages leniently decodes a schema-shaped response. Anything that
// does not carry a packages array decodes to nil.
func DecodePackages(raw json.RawMessage) []models.VacationPackage {
	var response struct {
		Packages []models.VacationPackage `json:"packages"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		utils.LogError(err, "recommend: malformed response")
		return nil
	}
	return response.Packages
}
