package request_models

import "time"

type PromotionRequest struct {
	EstablishmentID string    `json:"establecimiento" binding:"required"`
	Name            string    `json:"nombre" binding:"required"`
	Description     string    `json:"descripcion" binding:"required"`
	StartDate       time.Time `json:"fechaInicio" binding:"required"`
	EndDate         time.Time `json:"fechaFin" binding:"required"`
	Conditions      string    `json:"condiciones"`
	Discount        int       `json:"descuento" binding:"min=0,max=100"`
	Image           string    `json:"imagen"`
}
