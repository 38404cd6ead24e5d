package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers a single plain-text message through SMTP.
// Fire-and-forget from the caller's point of view: no retry.
func SendEmail(to, subject, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	port, err := strconv.Atoi(smtpPort)
	if err != nil || port == 0 {
		port = 587
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
