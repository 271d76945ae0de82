package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/eclipse7-9/enlistment-layout/internal/config"
)

// Mailer envía correos transaccionales (verificación y recuperación).
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody,
	)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}

	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}

// SimulateMailer no envía nada; deja el correo en el log. Útil en
// desarrollo sin SMTP (DEV_EMAIL_SIMULATE=1).
type SimulateMailer struct{}

func (SimulateMailer) Send(to, subject, htmlBody string) error {
	log.Printf("mail simulado para %s: %s\n%s", to, subject, htmlBody)
	return nil
}

func New(cfg *config.Config) Mailer {
	if cfg.MailSimulate || cfg.SMTPHost == "" {
		return SimulateMailer{}
	}
	return NewSMTP(cfg)
}

func VerificationBody(code string) (subject, body string) {
	subject = "Verificación de correo electrónico"
	body = fmt.Sprintf(`<html><body>
<h1>Verificación de correo electrónico</h1>
<p>Tu código de verificación es: <strong>%s</strong></p>
<p>Este código expirará en 15 minutos.</p>
</body></html>`, code)
	return subject, body
}

func RecoveryBody(code string) (subject, body string) {
	subject = "Recuperación de Contraseña"
	body = fmt.Sprintf(`<html><body>
<h1>Recuperación de Contraseña</h1>
<p>Tu código de recuperación es: <strong>%s</strong></p>
<p>Este código expirará en 15 minutos.</p>
<p>Si no solicitaste recuperar tu contraseña, ignora este correo.</p>
</body></html>`, code)
	return subject, body
}
