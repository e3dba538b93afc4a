package request_models

type UpdateProfileRequest struct {
	FirstName    *string `json:"nombres"`
	LastName     *string `json:"apellidos"`
	Bio          *string `json:"bio"`
	ProfilePhoto *string `json:"fotoPerfil"`
	CoverPhoto   *string `json:"fotoPortada"`
}

type VendorRequestUpdate struct {
	Decision string `json:"solicitudVendedor" binding:"required,oneof=aprobada rechazada"`
}
