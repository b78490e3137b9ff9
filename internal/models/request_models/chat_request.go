package request_models

type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversationId"`
}

type RecommendRequest struct {
	Query string `json:"query" binding:"required"`
}
