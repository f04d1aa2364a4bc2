package resettoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "00000000-0000-0000-0000-000000000001"
	testHash   = "$2a$10$hashDeEjemploParaTests000000000000000000000000000000"
)

func newTestGenerator() *Generator {
	return New("reset-secret-para-tests", 24*time.Hour)
}

func TestGenerateAndCheck(t *testing.T) {
	g := newTestGenerator()
	tok := g.Generate(testUserID, testHash)
	require.NotEmpty(t, tok)

	assert.True(t, g.Check(testUserID, testHash, tok))
}

// El token queda ligado al hash vigente: cambiar la contraseña lo invalida.
// Esta es la semántica de un solo uso sin almacenamiento.
func TestCheck_HashCambiado_Invalida(t *testing.T) {
	g := newTestGenerator()
	tok := g.Generate(testUserID, testHash)

	otroHash := "$2a$10$otroHashDespuesDelCambio0000000000000000000000000000"
	assert.False(t, g.Check(testUserID, otroHash, tok),
		"un token emitido sobre el hash anterior no debe verificar tras el cambio")
}

func TestCheck_UsuarioDistinto_Invalida(t *testing.T) {
	g := newTestGenerator()
	tok := g.Generate(testUserID, testHash)

	assert.False(t, g.Check("00000000-0000-0000-0000-000000000002", testHash, tok))
}

func TestCheck_VentanaExpirada_Invalida(t *testing.T) {
	g := newTestGenerator()
	emitido := time.Now()
	g.Now = func() time.Time { return emitido }
	tok := g.Generate(testUserID, testHash)

	// Dentro de la ventana sigue siendo válido aunque el hash no cambie.
	g.Now = func() time.Time { return emitido.Add(23 * time.Hour) }
	assert.True(t, g.Check(testUserID, testHash, tok))

	// Pasadas las 24h deja de verificar, con el mismo hash.
	g.Now = func() time.Time { return emitido.Add(24*time.Hour + time.Minute) }
	assert.False(t, g.Check(testUserID, testHash, tok))
}

func TestCheck_TimestampFuturo_Invalida(t *testing.T) {
	g := newTestGenerator()
	emitido := time.Now()
	g.Now = func() time.Time { return emitido }
	tok := g.Generate(testUserID, testHash)

	// Un token "emitido en el futuro" (reloj manipulado) no debe verificar.
	g.Now = func() time.Time { return emitido.Add(-time.Hour) }
	assert.False(t, g.Check(testUserID, testHash, tok))
}

func TestCheck_TokenManipulado_Invalida(t *testing.T) {
	g := newTestGenerator()
	tok := g.Generate(testUserID, testHash)

	casos := map[string]string{
		"firma alterada":     tok[:len(tok)-1] + "x",
		"sin separador":      "abcdef",
		"vacío":              "",
		"timestamp inválido": "!!!-" + tok,
		"solo separador":     "-",
	}
	for nombre, malo := range casos {
		assert.False(t, g.Check(testUserID, testHash, malo), nombre)
	}
}

func TestCheck_SecretDistinto_Invalida(t *testing.T) {
	g := newTestGenerator()
	tok := g.Generate(testUserID, testHash)

	otro := New("otro-secret", 24*time.Hour)
	assert.False(t, otro.Check(testUserID, testHash, tok))
}

func TestEncodeDecodeUID(t *testing.T) {
	uid := EncodeUID(testUserID)
	require.NotEmpty(t, uid)
	assert.NotEqual(t, testUserID, uid)

	id, err := DecodeUID(uid)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id)
}

func TestDecodeUID_Invalido_RetornaError(t *testing.T) {
	_, err := DecodeUID("%%%no-es-base64%%%")
	assert.Error(t, err)
}
