package auth

import "unicode"

// PasswordPolicyMessage es el mensaje de la política, compartido por registro
// y confirmación de reseteo.
const PasswordPolicyMessage = "la contraseña debe tener mínimo 8 caracteres e incluir letras y números"

// CheckPasswordStrength valida la política de contraseñas: mínimo 8
// caracteres, al menos una letra y un dígito.
func CheckPasswordStrength(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
