// Package auth implementa el login de la consola de administración. No hay
// sesiones ni identidad por usuario: el login entrega el token compartido que
// luego valida el middleware de API token.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
)

// Config credenciales del administrador y token compartido.
type Config struct {
	AdminUsername string
	AdminPassword string
	APIToken      string
}

// UseCase caso de uso de login.
type UseCase struct {
	username     string
	passwordHash []byte
	token        string
}

// New construye el caso de uso. La contraseña configurada se hashea una vez al
// arrancar para que la comparación del login use bcrypt.
func New(cfg Config) (*UseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &UseCase{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		token:        cfg.APIToken,
	}, nil
}

// Login verifica usuario y contraseña y devuelve el token compartido.
// ErrUnauthorized en cualquier fallo de credenciales.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.LoginResponse{Token: uc.token}, nil
}
