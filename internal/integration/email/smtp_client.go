package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/grocery-pos/backend/internal/application/adapter"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// SMTPClient implements the adapter.EmailSender interface over plain
// SMTP with the caller's own credentials: each send authenticates as
// the sender address carried in the input, so the bill arrives from the
// operator's mailbox rather than a shared provider address.
type SMTPClient struct {
	host string
	port int
}

// NewSMTPClient creates a new SMTP client for the given server.
func NewSMTPClient(host string, port int) *SMTPClient {
	return &SMTPClient{
		host: host,
		port: port,
	}
}

// Send sends an email over SMTP. Connect, authenticate, send, and close
// failures all surface as the same consolidated error.
func (c *SMTPClient) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if input.SenderEmail == "" || input.SenderPassword == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeMissingCredentials,
			"sender address and credential are required",
			domainerror.ErrMissingCredentials,
		)
	}

	var message strings.Builder
	fmt.Fprintf(&message, "From: %s\r\n", input.SenderEmail)
	fmt.Fprintf(&message, "To: %s\r\n", input.To)
	fmt.Fprintf(&message, "Subject: %s\r\n", input.Subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	message.WriteString("\r\n")
	message.WriteString(input.Text)

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	auth := smtp.PlainAuth("", input.SenderEmail, input.SenderPassword, c.host)

	if err := smtp.SendMail(addr, auth, input.SenderEmail, []string{input.To}, []byte(message.String())); err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeSendFailed,
			"email could not be sent",
			err,
		)
	}

	return &adapter.SendEmailResult{}, nil
}

// Ensure implementations satisfy interfaces.
var _ adapter.EmailSender = (*SMTPClient)(nil)
