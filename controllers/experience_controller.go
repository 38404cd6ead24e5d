package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

type ExperienceController struct{}

func NewExperienceController() *ExperienceController {
	return &ExperienceController{}
}

// GET /experiences?sort=-created_date&limit=12
// Sort keys follow the entity API convention: field name, "-" prefix for
// descending. Only created_date and name are sortable.
func (ec *ExperienceController) List(c *gin.Context) {
	db := utils.GetDB()
	query := db.Model(&models.Experience{})

	if order := sortOrder(c.Query("sort")); order != "" {
		query = query.Order(order)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	var experiences []models.Experience
	if err := query.Find(&experiences).Error; err != nil {
		utils.LogError(err, "experiences: list")
		c.JSON(http.StatusOK, gin.H{"experiences": []models.Experience{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}

// GET /experiences/:slug
func (ec *ExperienceController) GetBySlug(c *gin.Context) {
	db := utils.GetDB()
	var experience models.Experience
	if err := db.Where("slug = ?", c.Param("slug")).First(&experience).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "החוויה לא נמצאה"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": experience})
}

func sortOrder(sort string) string {
	desc := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")
	var column string
	switch field {
	case "created_date":
		column = "created_at"
	case "name":
		column = "name"
	default:
		return ""
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
