package response_models

type DashboardResponse struct {
	TotalUsers             int64 `json:"totalUsuarios"`
	TotalEstablishments    int64 `json:"totalEstablecimientos"`
	PendingEstablishments  int64 `json:"establecimientosPendientes"`
	ApprovedEstablishments int64 `json:"establecimientosAprobados"`
	RejectedEstablishments int64 `json:"establecimientosRechazados"`
	EmbeddedEstablishments int64 `json:"establecimientosIndexados"`
	TotalComments          int64 `json:"totalComentarios"`
	ActivePromotions       int64 `json:"promocionesActivas"`
}
