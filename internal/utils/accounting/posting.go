package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// PostingPlan holds the balance effects of posting one entry's lines:
// netted signed deltas per account, plus the running balance each line
// produces, aligned by index with the planned lines.
type PostingPlan struct {
	BalanceChanges  map[string]decimal.Decimal
	RunningBalances []decimal.Decimal
}

// NeedsPosting decides whether a locked entry still has to be posted.
// posted_at is the idempotency guard: a non-nil value means the deltas were
// already applied, so the answer is false with no error and no balance
// arithmetic runs. A draft must satisfy the balance law here, at the commit
// point, regardless of any validation done at creation time.
func NeedsPosting(postedAt *time.Time, lines []domain.JournalLine) (bool, error) {
	if postedAt != nil {
		return false, nil
	}
	totalDebit, totalCredit := SumLines(lines)
	if err := CheckBalanced(totalDebit, totalCredit); err != nil {
		return false, err
	}
	return true, nil
}

// ProjectPosting nets the signed per-account deltas for the lines and
// carries each account's running balance forward, line by line, from its
// pre-post balance. Every line's account must be present in accounts.
func ProjectPosting(lines []domain.JournalLine, accounts map[string]domain.Account) (*PostingPlan, error) {
	plan := &PostingPlan{
		BalanceChanges:  make(map[string]decimal.Decimal),
		RunningBalances: make([]decimal.Decimal, len(lines)),
	}

	current := make(map[string]decimal.Decimal, len(accounts))
	for accID, acc := range accounts {
		current[accID] = acc.CurrentBalance
	}

	for i, line := range lines {
		acc, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s missing from balance projection", line.AccountID)
		}
		signed, err := SignedAmount(line, acc.NormalBalance)
		if err != nil {
			return nil, err
		}
		plan.BalanceChanges[line.AccountID] = plan.BalanceChanges[line.AccountID].Add(signed)
		next := current[line.AccountID].Add(signed)
		plan.RunningBalances[i] = next
		current[line.AccountID] = next
	}
	return plan, nil
}
