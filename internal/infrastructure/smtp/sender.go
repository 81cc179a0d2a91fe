package smtp

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/pkg/config"
)

var _ reservation.EmailSender = (*Sender)(nil)

// Sender envía correos de confirmación por SMTP (STARTTLS en el puerto
// configurado). Sin estado entre llamadas: cada Send abre y cierra su
// conexión.
type Sender struct {
	dialer *gomail.Dialer
}

// NewSender construye el sender con las credenciales SMTP de la app.
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}
}

// Send envía un correo de texto plano.
func (s *Sender) Send(from, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar correo a %s: %w", to, err)
	}
	return nil
}
