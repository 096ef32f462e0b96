package notify

import (
	"context"
	"fmt"

	"prokat-rental/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridMailer) SendContract(ctx context.Context, to, toName, contractNumber, body string) error {
	logger.ExternalServiceCall("sendgrid", "SendContract", "to", to, "contract_number", contractNumber)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, contractSubject(contractNumber), recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		err = fmt.Errorf("failed to send contract email: %w", err)
		logger.ExternalServiceResult("sendgrid", "SendContract", err)
		return err
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "SendContract", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "SendContract", nil, "status", response.StatusCode)
	return nil
}
