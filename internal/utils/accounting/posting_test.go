package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/utils/accounting"
)

func TestNeedsPosting_AlreadyPostedShortCircuits(t *testing.T) {
	postedAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// Deliberately unbalanced lines: once posted_at is set, posting again
	// must be a no-op before any balance arithmetic runs, so the deltas can
	// never be applied a second time.
	lines := []domain.JournalLine{
		{AccountID: "acc-cash", DebitAmount: mustDecimal(t, "500")},
		{AccountID: "acc-rev", CreditAmount: mustDecimal(t, "300")},
	}

	needsPosting, err := accounting.NeedsPosting(&postedAt, lines)

	require.NoError(t, err)
	assert.False(t, needsPosting)
}

func TestNeedsPosting_DraftUnbalanced(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-cash", DebitAmount: mustDecimal(t, "500")},
		{AccountID: "acc-rev", CreditAmount: mustDecimal(t, "300")},
	}

	needsPosting, err := accounting.NeedsPosting(nil, lines)

	assert.False(t, needsPosting)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
}

func TestNeedsPosting_DraftBalanced(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-cash", DebitAmount: mustDecimal(t, "500")},
		{AccountID: "acc-rev", CreditAmount: mustDecimal(t, "500")},
	}

	needsPosting, err := accounting.NeedsPosting(nil, lines)

	require.NoError(t, err)
	assert.True(t, needsPosting)
}

func TestProjectPosting_NetsDeltasAndCarriesRunningBalances(t *testing.T) {
	accounts := map[string]domain.Account{
		"acc-cash": {AccountID: "acc-cash", NormalBalance: domain.DebitNormal, CurrentBalance: mustDecimal(t, "100")},
		"acc-rev":  {AccountID: "acc-rev", NormalBalance: domain.CreditNormal, CurrentBalance: mustDecimal(t, "0")},
	}
	// Cash is touched twice so its delta nets and its running balance steps
	// through both lines.
	lines := []domain.JournalLine{
		{AccountID: "acc-cash", DebitAmount: mustDecimal(t, "500")},
		{AccountID: "acc-cash", CreditAmount: mustDecimal(t, "200")},
		{AccountID: "acc-rev", CreditAmount: mustDecimal(t, "300")},
	}

	plan, err := accounting.ProjectPosting(lines, accounts)

	require.NoError(t, err)
	assert.True(t, plan.BalanceChanges["acc-cash"].Equal(mustDecimal(t, "300")))
	assert.True(t, plan.BalanceChanges["acc-rev"].Equal(mustDecimal(t, "300")))

	require.Len(t, plan.RunningBalances, 3)
	assert.True(t, plan.RunningBalances[0].Equal(mustDecimal(t, "600")))
	assert.True(t, plan.RunningBalances[1].Equal(mustDecimal(t, "400")))
	assert.True(t, plan.RunningBalances[2].Equal(mustDecimal(t, "300")))
}

func TestProjectPosting_MissingAccount(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-ghost", DebitAmount: mustDecimal(t, "100")},
	}

	plan, err := accounting.ProjectPosting(lines, map[string]domain.Account{})

	assert.Nil(t, plan)
	assert.Error(t, err)
}

func TestProjectPosting_RepostAppliesNothing(t *testing.T) {
	accounts := map[string]domain.Account{
		"acc-cash": {AccountID: "acc-cash", NormalBalance: domain.DebitNormal, CurrentBalance: decimal.Zero},
		"acc-rev":  {AccountID: "acc-rev", NormalBalance: domain.CreditNormal, CurrentBalance: decimal.Zero},
	}
	lines := []domain.JournalLine{
		{AccountID: "acc-cash", DebitAmount: mustDecimal(t, "500")},
		{AccountID: "acc-rev", CreditAmount: mustDecimal(t, "500")},
	}

	// First post computes and applies the deltas.
	needsPosting, err := accounting.NeedsPosting(nil, lines)
	require.NoError(t, err)
	require.True(t, needsPosting)
	_, err = accounting.ProjectPosting(lines, accounts)
	require.NoError(t, err)

	// A second post of the same entry sees posted_at set and plans nothing,
	// so the deltas cannot be applied twice.
	postedAt := time.Now().UTC()
	needsPosting, err = accounting.NeedsPosting(&postedAt, lines)
	require.NoError(t, err)
	assert.False(t, needsPosting)
}
