package request_models

type CreateNotificationRequest struct {
	UserID  string `json:"usuario" binding:"required"`
	Message string `json:"mensaje" binding:"required"`
	Kind    string `json:"tipo" binding:"required,oneof=promocion sistema comentario like"`
}
