package request_models

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`
	Tiktok    string `json:"tiktok"`
}

type LocationPayload struct {
	Address    string  `json:"direccion" binding:"required"`
	City       string  `json:"ciudad"`
	District   string  `json:"distrito"`
	PostalCode string  `json:"codigoPostal"`
	Latitude   float64 `json:"latitud"`
	Longitude  float64 `json:"longitud"`
	Reference  string  `json:"referencia"`
}

type SchedulePayload struct {
	Day    string `json:"dia" binding:"required"`
	Opens  string `json:"entrada" binding:"required"`
	Closes string `json:"salida" binding:"required"`
}

type CreateEstablishmentRequest struct {
	Name        string            `json:"nombre" binding:"required"`
	Description string            `json:"descripcion"`
	Phone       string            `json:"telefono"`
	CategoryIDs []string          `json:"categoria"`
	TypeIDs     []string          `json:"tipo"`
	Locations   []LocationPayload `json:"ubicacion"`
	Schedules   []SchedulePayload `json:"horario"`
	Social      SocialLinks       `json:"redesSociales"`
}

type UpdateEstablishmentRequest struct {
	Name        *string      `json:"nombre"`
	Description *string      `json:"descripcion"`
	Phone       *string      `json:"telefono"`
	CategoryIDs []string     `json:"categoria"`
	TypeIDs     []string     `json:"tipo"`
	Social      *SocialLinks `json:"redesSociales"`
}

type ChangeStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

type ChangeVerifiedRequest struct {
	Verified bool `json:"verificado"`
}

type RemoveImageRequest struct {
	ImageName string `json:"nombreImagen" binding:"required"`
}

type ReorderImagesRequest struct {
	Images []string `json:"nuevaOrdenImagenes" binding:"required"`
}
