package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shaiiram/website1000-2000/models"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"

	"github.com/gin-gonic/gin"
)

// ChatController is Sherry, the site's travel-expert chatbot. One prompt
// per message, the currently viewed experience serialized as context.
type ChatController struct {
	LLM *services.LLMService
}

func NewChatController(llm *services.LLMService) *ChatController {
	return &ChatController{LLM: llm}
}

type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ExperienceSlug string `json:"experience_slug"`
}

// POST /chat
func (cc *ChatController) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	experienceJSON := "null"
	if req.ExperienceSlug != "" {
		db := utils.GetDB()
		var experience models.Experience
		if err := db.Where("slug = ?", req.ExperienceSlug).First(&experience).Error; err == nil {
			if b, err := json.MarshalIndent(experience, "", "  "); err == nil {
				experienceJSON = string(b)
			}
		}
	}

	context := fmt.Sprintf(`You are Sherry, a world-class travel expert. Your knowledge of flights, hotels, and destinations is encyclopedic.
Your tone is intelligent, respectful, and very polite. Your answers must be short, clear, and to the point.
You must provide real, factual information.
The user is currently interested in a vacation package with the following theme:
%s

Based on this theme, answer the user's question.`, experienceJSON)

	prompt := fmt.Sprintf("%s\n\nUser Question: %q", context, req.Message)

	reply, err := cc.LLM.InvokeText(c.Request.Context(), prompt, true)
	if err != nil {
		utils.LogError(err, "chat: invoke")
		c.JSON(http.StatusBadGateway, gin.H{"error": "שרי לא זמינה כרגע, נסו שוב בעוד רגע"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
