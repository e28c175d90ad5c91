package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/utils/accounting"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestSignedAmount_DebitNormal(t *testing.T) {
	line := domain.JournalLine{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100)}

	signed, err := accounting.SignedAmount(line, domain.DebitNormal)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(100)), "debit increases a debit-normal account")

	creditLine := domain.JournalLine{AccountID: "acc-1", CreditAmount: decimal.NewFromInt(40)}
	signed, err = accounting.SignedAmount(creditLine, domain.DebitNormal)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(-40)), "credit decreases a debit-normal account")
}

func TestSignedAmount_CreditNormal(t *testing.T) {
	line := domain.JournalLine{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(250)}

	signed, err := accounting.SignedAmount(line, domain.CreditNormal)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(250)), "credit increases a credit-normal account")

	debitLine := domain.JournalLine{AccountID: "acc-2", DebitAmount: decimal.NewFromInt(30)}
	signed, err = accounting.SignedAmount(debitLine, domain.CreditNormal)
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.NewFromInt(-30)), "debit decreases a credit-normal account")
}

func TestSignedAmount_UnknownNormalBalance(t *testing.T) {
	line := domain.JournalLine{AccountID: "acc-3", DebitAmount: decimal.NewFromInt(10)}

	_, err := accounting.SignedAmount(line, domain.NormalBalance("SIDEWAYS"))
	assert.Error(t, err)
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalLine{
		{DebitAmount: mustDecimal(t, "100.50")},
		{CreditAmount: mustDecimal(t, "60.25")},
		{CreditAmount: mustDecimal(t, "40.25")},
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	assert.True(t, totalDebit.Equal(mustDecimal(t, "100.50")))
	assert.True(t, totalCredit.Equal(mustDecimal(t, "100.50")))
}

func TestCheckBalanced(t *testing.T) {
	testCases := []struct {
		name    string
		debit   string
		credit  string
		wantErr bool
	}{
		{"exact match", "100.00", "100.00", false},
		{"within tolerance", "100.005", "100.00", false},
		{"at tolerance boundary", "100.01", "100.00", true},
		{"clearly unbalanced", "100.00", "90.00", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.CheckBalanced(mustDecimal(t, tc.debit), mustDecimal(t, tc.credit))
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLines_MinimumTwoLines(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateLines(lines)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateLines_RejectsBothSides(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100), CreditAmount: decimal.NewFromInt(100)},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateLines(lines)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateLines_RejectsZeroLine(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-1"},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateLines(lines)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateLines_Valid(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "acc-1", DebitAmount: decimal.NewFromInt(100)},
		{AccountID: "acc-2", CreditAmount: decimal.NewFromInt(100)},
	}

	assert.NoError(t, accounting.ValidateLines(lines))
}
