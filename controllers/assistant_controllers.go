package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/services"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// AssistantController exposes the staff helper. Both endpoints always answer
// 200 with text; degradation happens inside the service.
type AssistantController struct {
	Assistant *services.Assistant
}

func NewAssistantController(assistant *services.Assistant) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

func (ac *AssistantController) Chat(c *gin.Context) {
	var req struct {
		Message string   `json:"message" binding:"required"`
		History []string `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reply := ac.Assistant.Chat(req.Message, req.History)
	utils.RespondJSON(c, http.StatusOK, "Assistant reply", gin.H{"reply": reply})
}

func (ac *AssistantController) DescribeProduct(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	description := ac.Assistant.DescribeProduct(req.Name, req.Category)
	utils.RespondJSON(c, http.StatusOK, "Generated description", gin.H{"description": description})
}
