package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/models/response_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

// ChatController speaks the chatbot wire format directly instead of
// the standard response envelope, which the frontend widget expects.
type ChatController struct {
	chatService  services.ChatService
	indexService services.EmbeddingIndexService
}

func NewChatController(chatService services.ChatService, indexService services.EmbeddingIndexService) *ChatController {
	return &ChatController{
		chatService:  chatService,
		indexService: indexService,
	}
}

func (cc *ChatController) MessageHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	resp, err := cc.chatService.ProcessMessage(c.Request.Context(), req.Text())
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyMessage), errors.Is(err, utils.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
		default:
			log.Printf("chat request failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error procesando el mensaje"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (cc *ChatController) ReindexHandler(c *gin.Context) {
	report, err := cc.indexService.Reindex(c.Request.Context())
	if err != nil {
		log.Printf("reindex failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al reindexar los establecimientos"})
		return
	}

	resp := response_models.ReindexResponse{
		Message:   fmt.Sprintf("Se procesaron %d establecimientos", report.Processed),
		Processed: report.Processed,
	}
	for _, id := range report.Failed {
		resp.Failed = append(resp.Failed, id.String())
	}
	c.JSON(http.StatusOK, resp)
}
