package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token de sesión. El refresh token solo sirve para acuñar un nuevo
// access token; nunca autoriza llamadas a la API por sí mismo.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"` // "MANAGER" | "ADMIN" | "EMPLOYEE"
	TokenType string `json:"typ"`  // "access" | "refresh"
}

// Pair es el par access/refresh que se entrega en login.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateAccess genera un access token HS256 de vida corta (minutos).
func GenerateAccess(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, role, issuer, TypeAccess, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh genera un refresh token HS256 de vida larga (días).
// No incluye role: el rol vigente se relee al refrescar.
func GenerateRefresh(secret, userID, issuer string, expDays int) (string, error) {
	return generate(secret, userID, "", issuer, TypeRefresh, time.Duration(expDays)*24*time.Hour)
}

// GeneratePair genera el par access+refresh para un usuario.
func GeneratePair(secret, userID, role, issuer string, accessMinutes, refreshDays int) (Pair, error) {
	access, err := GenerateAccess(secret, userID, role, issuer, accessMinutes)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := GenerateRefresh(secret, userID, issuer, refreshDays)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func generate(secret, userID, role, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccess valida un access token y devuelve userID y role.
// Retorna error si el token es inválido, expirado, con firma incorrecta
// o si es un refresh token presentado como access.
func ParseAccess(secret, tokenString string) (userID, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != TypeAccess {
		return "", "", fmt.Errorf("jwt: el token no es de tipo access")
	}
	return claims.UserID, claims.Role, nil
}

// ParseRefresh valida un refresh token y devuelve el userID.
func ParseRefresh(secret, tokenString string) (userID string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TypeRefresh {
		return "", fmt.Errorf("jwt: el token no es de tipo refresh")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
