package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/auth-api/pkg/config"
)

// SMTPSender envía los correos transaccionales del servicio vía SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender construye el adaptador de correo.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset envía el enlace de reseteo. Un fallo aquí es fatal para la
// solicitud: no hay reintentos internos.
func (s *SMTPSender) SendPasswordReset(to, link string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Restablecer contraseña")
	m.SetBody("text/plain", fmt.Sprintf(
		"Para restablecer tu contraseña abre el siguiente enlace:\r\n\r\n%s\r\n\r\n"+
			"El enlace vence en 24 horas. Si no solicitaste el cambio, ignora este correo.", link))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de reseteo: %w", err)
	}
	return nil
}
