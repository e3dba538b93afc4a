package response_models

import "time"

type LocationResponse struct {
	ID         string  `json:"id"`
	Address    string  `json:"direccion"`
	City       string  `json:"ciudad"`
	District   string  `json:"distrito"`
	PostalCode string  `json:"codigoPostal"`
	Latitude   float64 `json:"latitud"`
	Longitude  float64 `json:"longitud"`
	Reference  string  `json:"referencia"`
}

type ScheduleResponse struct {
	ID     string `json:"id"`
	Day    string `json:"dia"`
	Opens  string `json:"entrada"`
	Closes string `json:"salida"`
}

type CommentResponse struct {
	ID       string `json:"id"`
	Username string `json:"nombreUsuario"`
	Text     string `json:"comentario"`
	Rating   int    `json:"calificacion"`
}

type SocialLinksResponse struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Tiktok    string `json:"tiktok,omitempty"`
}

type EstablishmentResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"nombre"`
	Description   string              `json:"descripcion"`
	OwnerID       string              `json:"creador"`
	Phone         string              `json:"telefono"`
	Image         string              `json:"imagen"`
	Cover         string              `json:"portada"`
	Images        []string            `json:"imagenes"`
	Status        string              `json:"estado"`
	Verified      bool                `json:"verificado"`
	VerifiedAt    *time.Time          `json:"fechaVerificacion,omitempty"`
	Social        SocialLinksResponse `json:"redesSociales"`
	Categories    []string            `json:"categoria"`
	Types         []string            `json:"tipo"`
	Locations     []LocationResponse  `json:"ubicacion"`
	Schedules     []ScheduleResponse  `json:"horario"`
	Comments      []CommentResponse   `json:"comentarios,omitempty"`
	FollowerCount int                 `json:"seguidores"`
	LikeCount     int                 `json:"likes"`
	AverageRating float64             `json:"promedioCalificaciones"`
	ReviewCount   int                 `json:"totalResenas"`
}
