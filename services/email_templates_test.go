package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateByID(t *testing.T) {
	tmpl, ok := TemplateByID("booking-confirmed")
	assert.True(t, ok)
	assert.Equal(t, "הזמנתכם אושרה!", tmpl.Subject)

	_, ok = TemplateByID("no-such-template")
	assert.False(t, ok)
}

func TestRenderFillsPlaceholders(t *testing.T) {
	tmpl, _ := TemplateByID("booking-confirmed")
	subject, body := tmpl.Render("דנה", "10/03/2026")

	assert.Equal(t, "הזמנתכם אושרה!", subject)
	assert.Contains(t, body, "שלום דנה")
	assert.Contains(t, body, "מתאריך 10/03/2026")
	assert.NotContains(t, body, "{name}")
	assert.NotContains(t, body, "{date}")
}

func TestAllTemplatesPresent(t *testing.T) {
	assert.Len(t, EmailTemplates, 3)
	for _, id := range []string{"welcome", "booking-confirmed", "special-offer"} {
		_, ok := TemplateByID(id)
		assert.True(t, ok, id)
	}
}
