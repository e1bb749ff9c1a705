package mailer

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/config"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Client struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		from:     cfg.From,
		fromName: cfg.FromName,
		dialer:   dialer,
	}
}

func (c *Client) Send(subject, body string, recipients []string, contentType string) error {
	if len(recipients) == 0 {
		return nil
	}

	err := c.dialer.DialAndSend(c.Message(subject, body, recipients, contentType))
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// Message builds the email. Without an explicit content type the body is sent as HTML when it contains tags.
func (c *Client) Message(subject, body string, recipients []string, contentType string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.from, c.fromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody(bodyType(body, contentType), body)

	return msg
}

func bodyType(body, contentType string) string {
	switch contentType {
	case entity.ContentTypeHTML, entity.ContentTypePlain:
		return contentType
	}

	if htmlTag.MatchString(body) {
		return entity.ContentTypeHTML
	}

	return entity.ContentTypePlain
}
