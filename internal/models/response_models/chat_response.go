package response_models

// DisplayRecord is the projection of an establishment sent back by the
// chat endpoint, with placeholders already applied.
type DisplayRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"nombre"`
	Description  string   `json:"descripcion"`
	Categories   string   `json:"categorias"`
	Types        string   `json:"tipos"`
	Address      string   `json:"direccion"`
	Phone        string   `json:"telefono"`
	Hours        string   `json:"horario"`
	Image        *string  `json:"imagen"`
	Images       []string `json:"imagenes"`
	SocialLinks  []string `json:"redesSociales"`
	LikeCount    int      `json:"likes"`
	CommentCount int      `json:"comentarios"`
	Verified     bool     `json:"verificado"`
	Score        float64  `json:"score"`
}

const (
	MethodSemantic = "semantic"
	MethodText     = "text"
	MethodNone     = "none"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNone   = "none"
)

type ChatResponse struct {
	Reply      string          `json:"respuesta"`
	Found      int             `json:"found"`
	Results    []DisplayRecord `json:"results"`
	Method     string          `json:"metodo"`
	Confidence string          `json:"confianza,omitempty"`
	TopScore   float64         `json:"scoreMaximo,omitempty"`
}

type ReindexResponse struct {
	Message   string   `json:"mensaje"`
	Processed int      `json:"procesados"`
	Failed    []string `json:"fallidos,omitempty"`
}
