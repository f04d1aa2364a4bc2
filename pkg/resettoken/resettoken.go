// Package resettoken implementa tokens de reseteo de contraseña de un solo uso
// sin almacenamiento en servidor.
//
// El token es un HMAC-SHA256 sobre (userID, hash de contraseña vigente,
// timestamp de emisión) con un secreto del servidor, más el timestamp en
// base36: "<ts36>-<firma>". La verificación recalcula la firma con el hash
// almacenado en ese momento: cambiar la contraseña invalida todo token emitido
// antes del cambio, lo que da la semántica de un solo uso sin persistir nada.
package resettoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generator emite y verifica tokens de reseteo. Es stateless y seguro para
// uso concurrente.
type Generator struct {
	secret   []byte
	validity time.Duration

	// Now permite fijar el reloj en tests; nil usa time.Now.
	Now func() time.Time
}

// New construye un Generator con el secreto del servidor y la ventana de validez.
func New(secret string, validity time.Duration) *Generator {
	return &Generator{secret: []byte(secret), validity: validity}
}

// EncodeUID codifica un ID de usuario de forma segura para URL.
// No es secreto: solo transporte (equivale al "uid" del enlace de reseteo).
func EncodeUID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeUID revierte EncodeUID.
func DecodeUID(s string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("uid inválido: %w", err)
	}
	return string(b), nil
}

// Generate emite un token ligado al usuario y a su hash de contraseña vigente.
func (g *Generator) Generate(userID, passwordHash string) string {
	ts := g.now().Unix()
	return formatToken(ts, g.sign(userID, passwordHash, ts))
}

// Check verifica un token contra el hash de contraseña vigente del usuario.
// Devuelve false si el token está malformado, la firma no coincide (hash
// cambiado, usuario distinto o token manipulado) o la ventana expiró.
func (g *Generator) Check(userID, passwordHash, token string) bool {
	ts, sig, err := parseToken(token)
	if err != nil {
		return false
	}
	issued := time.Unix(ts, 0)
	now := g.now()
	if issued.After(now) {
		return false
	}
	if now.Sub(issued) > g.validity {
		return false
	}
	expected := g.sign(userID, passwordHash, ts)
	return hmac.Equal([]byte(sig), []byte(expected))
}

func (g *Generator) sign(userID, passwordHash string, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	// Separador \x00 para que (id, hash) no sea ambiguo al concatenar.
	mac.Write([]byte(userID))
	mac.Write([]byte{0})
	mac.Write([]byte(passwordHash))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func formatToken(ts int64, sig string) string {
	return strconv.FormatInt(ts, 36) + "-" + sig
}

func parseToken(token string) (ts int64, sig string, err error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, "", fmt.Errorf("token malformado")
	}
	ts, err = strconv.ParseInt(parts[0], 36, 64)
	if err != nil {
		return 0, "", fmt.Errorf("timestamp inválido: %w", err)
	}
	return ts, parts[1], nil
}
