package response_models

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Username      string `json:"nombreUsuario"`
	FirstName     string `json:"nombres"`
	LastName      string `json:"apellidos"`
	Bio           string `json:"bio"`
	ProfilePhoto  string `json:"fotoPerfil"`
	CoverPhoto    string `json:"fotoPortada"`
	Role          string `json:"rol"`
	VendorRequest string `json:"solicitudVendedor,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
