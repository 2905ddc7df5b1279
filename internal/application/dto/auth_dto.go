package dto

// LoginRequest credenciales de la consola de administración.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token compartido que la consola envía luego como Bearer.
type LoginResponse struct {
	Token string `json:"token"`
}
