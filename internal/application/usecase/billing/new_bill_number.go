package billing

import (
	"context"
	"fmt"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// maxNumberAttempts bounds collision retries. The number space holds
// 90,000 values, so exhausting this many attempts means the store is
// effectively full.
const maxNumberAttempts = 100

// NewBillNumberUseCase issues bill numbers that are not already taken
// by a persisted receipt. Random numbers can collide; generation
// retries instead of silently overwriting a stored bill later.
type NewBillNumberUseCase struct {
	receipts adapter.ReceiptStore
}

// NewNewBillNumberUseCase creates a new NewBillNumberUseCase instance.
func NewNewBillNumberUseCase(receipts adapter.ReceiptStore) *NewBillNumberUseCase {
	return &NewBillNumberUseCase{receipts: receipts}
}

// Execute returns an unused bill number.
func (uc *NewBillNumberUseCase) Execute(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := entity.NewBillNumber()

		taken, err := uc.receipts.Exists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check bill number %s: %w", number, err)
		}
		if !taken {
			return number, nil
		}
	}

	return "", domainerror.NewBillingError(
		domainerror.ErrCodeBillNumberExhausted,
		"could not generate an unused bill number",
		domainerror.ErrBillNumberExhausted,
	)
}
