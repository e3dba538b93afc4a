package request_models

type CategoryRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion"`
}

type TypeRequest struct {
	Name string `json:"nombre" binding:"required"`
}
