package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raahi/internal/models/request_models"
	"raahi/internal/services"
	"raahi/pkg/utils"
)

type ChatController struct {
	agentService services.AgentServiceInterface
}

func NewChatController(agentService services.AgentServiceInterface) *ChatController {
	return &ChatController{agentService: agentService}
}

// ChatHandler runs one conversational turn. A missing conversation id gets a
// generated one so follow-up messages can refine this query.
func (cc *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "conv_" + uuid.New().String()
	}

	result := cc.agentService.ProcessQuery(c.Request.Context(), req.Message, conversationID)
	utils.RespondSuccess(c, result, "Query processed")
}

// RecommendHandler is the one-shot variant: no conversation continuity, just
// parse and rank.
func (cc *ChatController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	result := cc.agentService.ProcessQuery(c.Request.Context(), req.Query, "conv_"+uuid.New().String())
	utils.RespondSuccess(c, result.Recommendations, "Recommendations generated")
}

func (cc *ChatController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"features": []string{
			"Custom NLP Query Parser",
			"Weighted Recommendation Engine",
			"Multi-language Support (English + Urdu)",
			"Conversation Context Management",
			"Template-based Responses",
		},
	})
}
