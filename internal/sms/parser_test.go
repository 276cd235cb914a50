package sms_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akarshakk/F-Buddy/internal/sms"
	"github.com/Akarshakk/F-Buddy/internal/transaction"
)

const debitSMS = "Rs 500.00 debited from A/c **1234 to Swiggy via UPI on 15-01-26. Ref 401234567890. SBI"

func TestParser_KnownSender(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	assert.True(t, p.KnownSender("SBIINB"))
	assert.True(t, p.KnownSender("AD-SBIINB"))
	assert.True(t, p.KnownSender("vm-hdfcbk"))
	assert.False(t, p.KnownSender("UNKNOWNSENDER123"))
	assert.False(t, p.KnownSender(""))
}

func TestParser_Parse(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	tx, err := p.Parse(context.Background(), debitSMS, "AD-SBIINB")
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeExpense, tx.Type)
	assert.InDelta(t, 500.00, tx.Amount, 0.001)
	assert.Equal(t, "Swiggy", tx.Merchant)
	assert.Equal(t, "Payment to Swiggy", tx.Description)
	assert.Equal(t, "1234", tx.Account)
	assert.Equal(t, "401234567890", tx.RefNo)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "Food & Dining", tx.Category)
	assert.Equal(t, "food_dining", tx.CategoryID)
	assert.InDelta(t, 0.75, tx.Confidence, 0.001)
	assert.True(t, tx.NeedsReview)
	assert.Equal(t, debitSMS, tx.RawText)
}

func TestParser_Parse_Credit(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	text := "Rs 12,000.00 credited to A/c **1234 on 01-02-2026. Salary. Ref 88221100. HDFC Bank"

	tx, err := p.Parse(context.Background(), text, "VM-HDFCBK")
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeIncome, tx.Type)
	assert.InDelta(t, 12000.00, tx.Amount, 0.001)
	assert.Equal(t, "Other Income", tx.Category)
	assert.Equal(t, "", tx.CategoryID)
	assert.InDelta(t, 0.7, tx.Confidence, 0.001)
	assert.True(t, tx.NeedsReview)
}

func TestParser_Parse_UPIMerchantFallback(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	text := "INR 250 debited. UPI: merchantshop@okaxis Ref 123456. PhonePe"

	tx, err := p.Parse(context.Background(), text, "PHONEPE")
	require.NoError(t, err)

	assert.Equal(t, "merchantshop@okaxis", tx.UPIID)
	assert.Equal(t, "merchantshop", tx.Merchant)
}

func TestParser_Parse_Errors(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	type testCase struct {
		name    string
		text    string
		sender  string
		wantErr error
	}

	tests := []testCase{
		{
			name:    "UnknownSender",
			text:    debitSMS,
			sender:  "UNKNOWNSENDER123",
			wantErr: sms.ErrUnknownSender,
		},
		{
			name:    "PromotionalNoAmount",
			text:    "Get 50% off on your next order!",
			sender:  "AD-SBIINB",
			wantErr: sms.ErrNoAmount,
		},
		{
			name:    "NoDirection",
			text:    "Rs 500 balance in A/c **1234",
			sender:  "AD-SBIINB",
			wantErr: sms.ErrNoDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(context.Background(), tt.text, tt.sender)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParser_ParseBulk(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	stamped := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	msgs := []sms.Message{
		{ID: "sms-1", Text: debitSMS, Sender: "AD-SBIINB", Timestamp: stamped},
		{ID: "sms-2", Text: "Big sale this weekend!", Sender: "PROMO", Timestamp: stamped},
		{ID: "sms-3", Text: "Rs 250 debited to Uber via UPI. Ref 9988. ICICI", Sender: "ICICIB", Timestamp: stamped},
	}

	txs := p.ParseBulk(context.Background(), msgs)

	require.Len(t, txs, 2)

	// Every bulk result keeps its message id.
	assert.Equal(t, "sms-1", txs[0].SMSID)
	assert.Equal(t, "sms-3", txs[1].SMSID)

	assert.InDelta(t, 500.00, txs[0].Amount, 0.001)
	assert.InDelta(t, 250.00, txs[1].Amount, 0.001)

	// The first message has a date in its text, which wins over the batch
	// timestamp; the second has none, so the timestamp stands in.
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, stamped, txs[1].Date)
}

func TestParser_ParseBulk_NoTimestamp(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	before := time.Now()

	txs := p.ParseBulk(context.Background(), []sms.Message{
		{ID: "sms-9", Text: "Rs 100 debited to Uber via UPI. SBI", Sender: "SBIINB"},
	})

	require.Len(t, txs, 1)
	assert.Equal(t, "sms-9", txs[0].SMSID)
	assert.False(t, txs[0].Date.Before(before.Truncate(time.Second)))
}

func TestParseSMSDateFallback(t *testing.T) {
	p := sms.NewParser(sms.NewClassifier(nil))

	// No date in the text: the parse timestamp stands in.
	before := time.Now()
	tx, err := p.Parse(context.Background(), "Rs 100 debited to Uber via UPI. SBI", "SBIINB")
	require.NoError(t, err)

	assert.False(t, tx.Date.Before(before.Truncate(time.Second)))
}
