package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordStrength(t *testing.T) {
	casos := []struct {
		nombre   string
		password string
		valida   bool
	}{
		{"letras y números, 8 caracteres", "abc12345", true},
		{"larga con mayúsculas", "Password2026", true},
		{"letra unicode cuenta como letra", "contraseña1", true},
		{"muy corta", "abc1", false},
		{"solo letras", "solamenteletras", false},
		{"solo números", "12345678", false},
		{"vacía", "", false},
		{"solo símbolos", "!!!!!!!!", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.valida, CheckPasswordStrength(c.password))
		})
	}
}
