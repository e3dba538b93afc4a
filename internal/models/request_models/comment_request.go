package request_models

type CreateCommentRequest struct {
	EstablishmentID string `json:"establecimiento" binding:"required"`
	Text            string `json:"comentario" binding:"required"`
	Rating          int    `json:"calificacion"`
}
