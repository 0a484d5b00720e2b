package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/goodwork-api/internal/domain"
)

func TestValidLink(t *testing.T) {
	valid := []string{
		"https://acme.com/apply",
		"http://acme.com",
		"acme.com",
		"jobs.acme.com.ng/apply/dev-role",
	}
	for _, link := range valid {
		assert.True(t, domain.ValidLink(link), "debe aceptar %q", link)
	}

	invalid := []string{
		"",
		"no tiene punto",
		"ftp://",
		"https://",
	}
	for _, link := range invalid {
		assert.False(t, domain.ValidLink(link), "debe rechazar %q", link)
	}
}

// La regex es deliberadamente permisiva: documenta el trade-off, no lo "arregla".
func TestValidLink_EsPermisiva(t *testing.T) {
	assert.True(t, domain.ValidLink("acme.com/ruta con espacios"),
		"paths con espacios pasan aunque no sean URLs reales")
}

func TestFutureDeadline(t *testing.T) {
	now := time.Now()

	assert.True(t, domain.FutureDeadline(now.Add(24*time.Hour), now))
	assert.False(t, domain.FutureDeadline(now.Add(-time.Minute), now), "pasado debe rechazarse")
	assert.False(t, domain.FutureDeadline(now, now), "igual a now debe rechazarse: la regla es estricta")
}
