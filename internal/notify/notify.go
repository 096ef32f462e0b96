package notify

import (
	"context"
	"fmt"

	"prokat-rental/internal/config"
	"prokat-rental/internal/logger"
)

// ContractMailer delivers a rendered rental contract to the renter
type ContractMailer interface {
	SendContract(ctx context.Context, to, toName, contractNumber, body string) error
}

// NewContractMailer picks the delivery channel from config: SendGrid when an
// API key is set, SMTP when a host is set, otherwise log-only.
func NewContractMailer(cfg config.EmailConfig) ContractMailer {
	switch {
	case cfg.SendGridAPIKey != "":
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	case cfg.SMTPHost != "":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.FromEmail, cfg.FromName)
	default:
		return &LogMailer{}
	}
}

func contractSubject(contractNumber string) string {
	return fmt.Sprintf("Договор аренды №%s", contractNumber)
}

// LogMailer writes contracts to the log instead of sending them
type LogMailer struct{}

func (m *LogMailer) SendContract(ctx context.Context, to, toName, contractNumber, body string) error {
	logger.InfoContext(ctx, "Contract mail skipped, no mail transport configured",
		"to", to, "contract_number", contractNumber, "body_length", len(body))
	return nil
}
