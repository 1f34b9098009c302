package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ana@empresa.com"))
	assert.True(t, ValidEmail("luis.perez+test@sub.empresa.mx"))

	assert.False(t, ValidEmail("ana"))
	assert.False(t, ValidEmail("ana@empresa"))
	assert.False(t, ValidEmail("@empresa.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Secreto1!"))
	assert.True(t, ValidPassword("Abcdef1#xyz"))

	assert.False(t, ValidPassword("Ab1!"), "too short")
	assert.False(t, ValidPassword("secreto1!"), "no upper")
	assert.False(t, ValidPassword("SECRETO1!"), "no lower")
	assert.False(t, ValidPassword("Secretoo!"), "no digit")
	assert.False(t, ValidPassword("Secreto12"), "no symbol")
}
