package notify

import (
	"context"
	"fmt"

	"prokat-rental/internal/logger"

	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

func NewSMTPMailer(host string, port int, username, password, fromEmail, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   fromEmail,
		name:   fromName,
	}
}

func (s *SMTPMailer) SendContract(ctx context.Context, to, toName, contractNumber, body string) error {
	logger.ExternalServiceCall("smtp", "SendContract", "to", to, "contract_number", contractNumber)

	m := s.message(to, toName, contractNumber, body)
	if err := s.dialer.DialAndSend(m); err != nil {
		err = fmt.Errorf("failed to send contract email via gomail: %w", err)
		logger.ExternalServiceResult("smtp", "SendContract", err)
		return err
	}

	logger.ExternalServiceResult("smtp", "SendContract", nil)
	return nil
}

func (s *SMTPMailer) message(to, toName, contractNumber, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.name)
	m.SetAddressHeader("To", to, toName)
	m.SetHeader("Subject", contractSubject(contractNumber))
	m.SetBody("text/plain", body)
	return m
}
