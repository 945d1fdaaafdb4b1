package mailer

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/gomail.v2"
)

// SMTPSettings is the typed view over the loose messaging credential
// map stored in the site config.
type SMTPSettings struct {
	Host     string `mapstructure:"smtp_host"`
	Port     string `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_username"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
}

// SendTest sends a probe message to verify the stored messaging
// credentials actually work. Never fatal; callers surface the error.
func SendTest(creds map[string]string, to string) error {
	var s SMTPSettings
	if err := mapstructure.Decode(creds, &s); err != nil {
		return errors.Wrap(err, "decode messaging credentials")
	}
	if s.Host == "" {
		return errors.New("messaging credentials missing smtp_host")
	}
	if to == "" {
		return errors.New("recipient is required")
	}
	port := cast.ToInt(s.Port)
	if port == 0 {
		port = 587
	}
	from := s.From
	if from == "" {
		from = s.Username
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "StoreAdmin messaging test")
	m.SetBody("text/plain", "This is a test message sent from the StoreAdmin console.")

	d := gomail.NewDialer(s.Host, port, s.Username, s.Password)
	return errors.Wrap(d.DialAndSend(m), "send test message")
}
