package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type AdminExperienceController struct {
	Uploads *services.UploadService
}

func NewAdminExperienceController(uploads *services.UploadService) *AdminExperienceController {
	return &AdminExperienceController{Uploads: uploads}
}

// POST /admin/experiences
func (aec *AdminExperienceController) Create(c *gin.Context) {
	var req models.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := utils.GetDB()
	var count int64
	db.Model(&models.Experience{}).Where("slug = ?", req.Slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "חוויה עם מזהה זה כבר קיימת"})
		return
	}

	experience := experienceFromRequest(req)
	if err := db.Create(&experience).Error; err != nil {
		utils.LogError(err, "admin experiences: create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה ביצירת החוויה"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"experience": experience})
}

// PUT /admin/experiences/:slug — the slug itself is immutable; the path
// parameter wins over whatever the body carries.
func (aec *AdminExperienceController) Update(c *gin.Context) {
	var req models.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := utils.GetDB()
	var experience models.Experience
	if err := db.Where("slug = ?", c.Param("slug")).First(&experience).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "החוויה לא נמצאה"})
		return
	}

	updated := experienceFromRequest(req)
	updated.ID = experience.ID
	updated.Slug = experience.Slug
	updated.CreatedAt = experience.CreatedAt
	if err := db.Save(&updated).Error; err != nil {
		utils.LogError(err, "admin experiences: update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בעדכון החוויה"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": updated})
}

// DELETE /admin/experiences/:slug — soft delete. Bookings that still
// reference the slug keep working; their views fall back to the raw slug.
func (aec *AdminExperienceController) Delete(c *gin.Context) {
	db := utils.GetDB()
	var experience models.Experience
	if err := db.Where("slug = ?", c.Param("slug")).First(&experience).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "החוויה לא נמצאה"})
		return
	}
	if err := db.Delete(&experience).Error; err != nil {
		utils.LogError(err, "admin experiences: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה במחיקת החוויה"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/uploads — multipart image upload, returns the public URL the
// admin form drops into image_url / character_image_url.
func (aec *AdminExperienceController) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	url, err := aec.Uploads.UploadImage(file, header)
	if err != nil {
		utils.LogError(err, "admin uploads: image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בהעלאת התמונה"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func experienceFromRequest(req models.ExperienceRequest) models.Experience {
	highlights, _ := json.Marshal(req.Highlights)
	return models.Experience{
		Slug:                req.Slug,
		Name:                req.Name,
		NameEn:              req.NameEn,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		PriceRange:          req.PriceRange,
		Duration:            req.Duration,
		Location:            req.Location,
		Category:            req.Category,
		ImageURL:            req.ImageURL,
		CharacterImageURL:   req.CharacterImageURL,
		TransitionQuote:     req.TransitionQuote,
		Highlights:          datatypes.JSON(highlights),
	}
}
