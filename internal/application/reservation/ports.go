package reservation

// EmailSender abstrae el envío de correos de confirmación.
type EmailSender interface {
	Send(from, to, subject, body string) error
}
