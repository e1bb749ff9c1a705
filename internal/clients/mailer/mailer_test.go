package mailer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/clients/mailer"
	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/config"
)

func TestClient_Message(t *testing.T) {
	t.Parallel()

	c := mailer.New(config.Mailer{Host: "smtp.example.com", Port: 465, From: "noreply@example.com", FromName: "MRO"})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "explicit plain", body: "<b>hi</b>", contentType: entity.ContentTypePlain, want: "text/plain"},
		{name: "detected html", body: "<p>Due tomorrow</p>", want: "text/html"},
		{name: "detected plain", body: "Due tomorrow", want: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := require.New(t)

			msg := c.Message("Corrective action assigned", tt.body, []string{"tech@example.com"}, tt.contentType)

			r.Equal([]string{"tech@example.com"}, msg.GetHeader("To"))
			r.Equal([]string{"Corrective action assigned"}, msg.GetHeader("Subject"))

			var buf bytes.Buffer

			_, err := msg.WriteTo(&buf)
			r.NoError(err)
			r.Contains(buf.String(), "Content-Type: "+tt.want+"; charset=UTF-8")
		})
	}
}

func TestClient_SendWithoutRecipients(t *testing.T) {
	t.Parallel()

	c := mailer.New(config.Mailer{Host: "127.0.0.1", Port: 1})

	require.NoError(t, c.Send("subject", "body", nil, ""))
}
