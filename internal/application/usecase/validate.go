package usecase

import (
	"regexp"
	"strings"

	"github.com/jhoicas/hotel-admin-api/internal/domain"
)

// Reglas de formato compartidas por todos los recursos (mismas expresiones que
// usa la consola en el navegador).
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid(field, "es requerido")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return domain.Invalid("email", "formato de email inválido")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return domain.Invalid("phone", "formato de teléfono inválido (mínimo 10 dígitos)")
	}
	return nil
}

func validateEnum(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return domain.Invalid(field, "debe ser uno de: "+strings.Join(allowed, ", "))
}
