package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/pkg/jwt"
)

const secret = "s3cr3t"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "hotel-inventory", "u-17", "Marta", time.Hour)
	require.NoError(t, err)

	id, name, err := jwt.Parse(secret, "hotel-inventory", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-17", id)
	assert.Equal(t, "Marta", name)
}

func TestParse_Rechazos(t *testing.T) {
	expired, err := jwt.Generate(secret, "hotel-inventory", "u-1", "Ana", -time.Minute)
	require.NoError(t, err)
	_, _, err = jwt.Parse(secret, "hotel-inventory", expired)
	assert.Error(t, err, "token vencido")

	tok, err := jwt.Generate(secret, "otro-emisor", "u-1", "Ana", time.Hour)
	require.NoError(t, err)
	_, _, err = jwt.Parse(secret, "hotel-inventory", tok)
	assert.Error(t, err, "emisor distinto")

	_, _, err = jwt.Parse("otra-clave", "hotel-inventory", tok)
	assert.Error(t, err, "firma incorrecta")

	_, _, err = jwt.Parse(secret, "", "no-es-un-token")
	assert.Error(t, err)

	anon, err := jwt.Generate(secret, "", "", "", time.Hour)
	require.NoError(t, err)
	_, _, err = jwt.Parse(secret, "", anon)
	assert.ErrorIs(t, err, jwt.ErrMissingIdentity)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := jwt.Generate("", "x", "u", "n", time.Hour)
	assert.Error(t, err)
}
