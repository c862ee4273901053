package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	for _, name := range []string{"reset-password.html", "contact-message.html", "client-intake.html"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %s should be embedded", name)
	}
}

func TestTemplatesRender(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	t.Run("reset password", func(t *testing.T) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "reset-password.html", map[string]interface{}{
			"ResetURL": "https://example.com/reset?token=abc",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "https://example.com/reset?token=abc")
	})

	t.Run("contact message", func(t *testing.T) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "contact-message.html", ContactMessageData{
			Name:    "Derya",
			Email:   "derya@example.com",
			Phone:   "5551234567",
			Message: "Merhaba",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Derya")
		assert.Contains(t, buf.String(), "Merhaba")
	})

	t.Run("client intake", func(t *testing.T) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "client-intake.html", ClientIntakeData{
			Name:         "Ali",
			Phone:        "5559876543",
			PropertyType: "Konut",
			Budget:       "3.000.000",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Ali")
		assert.Contains(t, buf.String(), "Konut")
	})
}
