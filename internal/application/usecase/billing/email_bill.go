package billing

import (
	"context"
	"fmt"

	"github.com/grocery-pos/backend/internal/application/adapter"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// emailSubject is the fixed subject line of a mailed bill.
const emailSubject = "Grocery Bill"

// EmailBillInput represents the input for mailing a persisted bill.
type EmailBillInput struct {
	BillNumber string
	Recipient  string

	// SenderEmail and SenderPassword are forwarded to credential-based
	// providers; provider-key senders ignore them.
	SenderEmail    string
	SenderPassword string
}

// EmailBillOutput represents the result of mailing a bill.
type EmailBillOutput struct {
	ProviderID string
}

// EmailBillUseCase loads a persisted receipt and sends it as plain text.
// The send is one consolidated outcome: any failure at any stage is one
// error, never a partial-send ambiguity.
type EmailBillUseCase struct {
	receipts adapter.ReceiptStore
	sender   adapter.EmailSender
}

// NewEmailBillUseCase creates a new EmailBillUseCase instance.
func NewEmailBillUseCase(receipts adapter.ReceiptStore, sender adapter.EmailSender) *EmailBillUseCase {
	return &EmailBillUseCase{
		receipts: receipts,
		sender:   sender,
	}
}

// Execute mails the bill to the recipient.
func (uc *EmailBillUseCase) Execute(ctx context.Context, input EmailBillInput) (*EmailBillOutput, error) {
	if input.Recipient == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"recipient address is required",
			domainerror.ErrMissingRecipient,
		)
	}

	text, err := uc.receipts.LoadText(ctx, input.BillNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", input.BillNumber, err)
	}

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:             input.Recipient,
		Subject:        emailSubject,
		Text:           text,
		SenderEmail:    input.SenderEmail,
		SenderPassword: input.SenderPassword,
	})
	if err != nil {
		return nil, err
	}

	return &EmailBillOutput{ProviderID: result.ProviderID}, nil
}
