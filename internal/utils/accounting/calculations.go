package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// Tolerance is the legacy rounding allowance for the balance law. Exact
// decimal arithmetic makes any genuine drift an error; the tolerance only
// absorbs rounding in amounts imported from legacy books.
var Tolerance = decimal.RequireFromString(domain.BalanceTolerance)

// SignedAmount returns the balance effect of a line on its account.
// A debit increases a DEBIT-normal account and decreases a CREDIT-normal
// one; a credit is the inverse.
func SignedAmount(line domain.JournalLine, normal domain.NormalBalance) (decimal.Decimal, error) {
	switch normal {
	case domain.DebitNormal:
		return line.DebitAmount.Sub(line.CreditAmount), nil
	case domain.CreditNormal:
		return line.CreditAmount.Sub(line.DebitAmount), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown normal balance '%s' for account %s", normal, line.AccountID)
	}
}

// SumLines returns the debit and credit totals across the given lines.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	return totalDebit, totalCredit
}

// ValidateLines enforces the per-entry invariants: at least two lines and
// each line a pure debit or pure credit with a positive amount. A one-sided
// entry can never balance, so fewer than two lines is rejected outright.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

// CheckBalanced verifies the entry balance law |totalDebit - totalCredit| < tolerance.
func CheckBalanced(totalDebit, totalCredit decimal.Decimal) error {
	if totalDebit.Sub(totalCredit).Abs().GreaterThanOrEqual(Tolerance) {
		return fmt.Errorf("%w: total debit %s does not equal total credit %s",
			apperrors.ErrUnbalanced, totalDebit.String(), totalCredit.String())
	}
	return nil
}
