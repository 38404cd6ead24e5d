package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

// FlowController serves the guided search flow: home/search → transition →
// month selection → results → checkout → thank-you. Every step is
// reproducible from its query parameters alone; a missing slug sends the
// browser back to the home page.
type FlowController struct {
	Recommend *services.RecommendService
}

func NewFlowController(recommend *services.RecommendService) *FlowController {
	return &FlowController{Recommend: recommend}
}

// GET /flow/search — the home page payload: selectable experiences and
// months.
func (fc *FlowController) Search(c *gin.Context) {
	db := utils.GetDB()
	var experiences []models.Experience
	if err := db.Order("created_at ASC").Find(&experiences).Error; err != nil {
		utils.LogError(err, "flow search: load experiences")
	}
	c.JSON(http.StatusOK, gin.H{
		"experiences": experiences,
		"months":      models.FlowMonths,
	})
}

// GET /flow/transition — character art + quote, shown for a fixed five
// seconds before the client advances to month selection.
func (fc *FlowController) Transition(c *gin.Context) {
	flow := models.ParseFlow(c.Request.URL.Query())
	if flow.Slug == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	db := utils.GetDB()
	var experience models.Experience
	if err := db.Where("slug = ?", flow.Slug).First(&experience).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"experience":            experience,
		"quote":                 experience.TransitionQuote,
		"character_image_url":   experience.CharacterImageURL,
		"advance_after_seconds": models.TransitionAdvanceSeconds,
		"next":                  flow.SelectMonthURL(),
	})
}

// GET /flow/select-month — the month list, each entry carrying its own
// results URL so the client never rebuilds query strings.
func (fc *FlowController) SelectMonth(c *gin.Context) {
	flow := models.ParseFlow(c.Request.URL.Query())
	if flow.Slug == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	db := utils.GetDB()
	var experience models.Experience
	if err := db.Where("slug = ?", flow.Slug).First(&experience).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	type monthOption struct {
		Month      string `json:"month"`
		ResultsURL string `json:"results_url"`
	}
	options := make([]monthOption, 0, len(models.FlowMonths))
	for _, month := range models.FlowMonths {
		next := flow
		next.Month = month
		options = append(options, monthOption{Month: month, ResultsURL: next.ResultsURL()})
	}

	c.JSON(http.StatusOK, gin.H{
		"experience": experience,
		"months":     options,
	})
}

// GET /flow/results — the AI-generated offers. The LLM call is the slow
// part; a malformed or empty model response renders as zero offers, same
// as no results.
func (fc *FlowController) Results(c *gin.Context) {
	flow := models.ParseFlow(c.Request.URL.Query())
	if flow.Slug == "" || flow.Month == "" || flow.Budget == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	db := utils.GetDB()
	var experience *models.Experience
	var found models.Experience
	if err := db.Where("slug = ?", flow.Slug).First(&found).Error; err == nil {
		experience = &found
	}

	packages := fc.Recommend.Packages(c.Request.Context(), flow)

	type offer struct {
		models.VacationPackage
		Price       string `json:"price"`
		CheckoutURL string `json:"checkout_url"`
	}
	offers := make([]offer, 0, len(packages))
	for _, pkg := range packages {
		price := offerPrice(pkg.TotalPrice)
		offers = append(offers, offer{
			VacationPackage: pkg,
			Price:           price,
			CheckoutURL:     flow.CheckoutURL(pkg.PackageName, price),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"experience": experience,
		"offers":     offers,
	})
}

// offerPrice renders a model-produced total as the site's display price.
// The float carries at most two meaningful decimals; rounding (not
// truncating) keeps values like 1849.99 from losing an agora.
func offerPrice(total float64) string {
	return utils.Money{
		Amount:   int64(math.Round(total * 100)),
		Currency: utils.DefaultCurrency,
	}.Format()
}

// GET /flow/thank-you?id= — the confirmation screen's booking lookup.
// The id is parsed to an integer before it ever reaches the query; this
// endpoint is public, so the parameter must never be usable as SQL.
func (fc *FlowController) ThankYou(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ההזמנה לא נמצאה"})
		return
	}

	db := utils.GetDB()
	var booking models.Booking
	if err := db.First(&booking, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ההזמנה לא נמצאה"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
