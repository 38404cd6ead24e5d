package controllers

import (
	"net/http"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

// AdminEmailController is the email center: free-form sends, canned
// templates and a bulk send to every known booking customer.
type AdminEmailController struct {
	Cfg *config.Config
}

func NewAdminEmailController(cfg *config.Config) *AdminEmailController {
	return &AdminEmailController{Cfg: cfg}
}

// GET /admin/emails/templates
func (aec *AdminEmailController) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": services.EmailTemplates})
}

type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// POST /admin/emails
func (aec *AdminEmailController) Send(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "אנא מלא את כל השדות"})
		return
	}

	err := utils.SendEmail(req.To, req.Subject, req.Body,
		aec.Cfg.SMTPHost, aec.Cfg.SMTPPort, aec.Cfg.SMTPUser, aec.Cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "admin emails: send")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "שגיאה בשליחת האימייל"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

type BulkEmailRequest struct {
	TemplateID string `json:"template_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// POST /admin/emails/bulk — one personalized message per distinct booking
// customer. Either a template id or explicit subject+body (with {name} and
// {date} placeholders). Failures are counted, not retried.
func (aec *AdminEmailController) SendBulk(c *gin.Context) {
	var req BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	template := services.EmailTemplate{Subject: req.Subject, Body: req.Body}
	if req.TemplateID != "" {
		t, ok := services.TemplateByID(req.TemplateID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown template"})
			return
		}
		template = t
	}
	if template.Subject == "" || template.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "אנא מלא את כל השדות"})
		return
	}

	db := utils.GetDB()
	var bookings []models.Booking
	if err := db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.LogError(err, "admin emails: load recipients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipients"})
		return
	}

	seen := map[string]bool{}
	sent, failed := 0, 0
	for _, b := range bookings {
		if b.CustomerEmail == "" || seen[b.CustomerEmail] {
			continue
		}
		seen[b.CustomerEmail] = true

		subject, body := template.Render(b.CustomerName, b.CreatedAt.Format("02/01/2006"))
		err := utils.SendEmail(b.CustomerEmail, subject, body,
			aec.Cfg.SMTPHost, aec.Cfg.SMTPPort, aec.Cfg.SMTPUser, aec.Cfg.SMTPPass)
		if err != nil {
			utils.LogError(err, "admin emails: bulk send")
			failed++
			continue
		}
		sent++
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}
