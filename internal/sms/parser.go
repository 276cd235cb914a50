package sms

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Akarshakk/F-Buddy/internal/transaction"
)

var (
	// ErrUnknownSender means the SMS is not from a known bank or payment
	// app and is not a transaction message at all.
	ErrUnknownSender = errors.New("sender not in bank allow-list")

	// ErrNoAmount means no labelled currency amount was found; without an
	// amount there is nothing to record.
	ErrNoAmount = errors.New("no amount in sms text")

	// ErrNoDirection means neither a debit nor a credit keyword matched.
	ErrNoDirection = errors.New("cannot determine debit or credit")
)

// bankSenders are the short-codes of known banks and payment apps. Matching
// is case-insensitive substring: real sender ids arrive with DLT prefixes
// like "AD-SBIINB".
var bankSenders = []string{
	"SBIINB", "HDFCBK", "ICICIB", "AXISBK", "PNBSMS", "KOTAKBK",
	"PAYTM", "GPAY", "PHONEPE", "AMAZPAY", "BHARPE", "SBIPAY",
	"YESBNK", "CITIBK", "SCBANK", "HSBC", "IDBIBNK",
}

// Field patterns for bank/payment SMS formats. One regex per field, no
// cascades: SMS text is far more uniform than receipt OCR.
var (
	amountPattern   = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*([0-9,]+\.?\d*)`)
	debitPattern    = regexp.MustCompile(`(?i)debited|spent|paid|withdrawn|deducted|purchase|transaction|sent`)
	creditPattern   = regexp.MustCompile(`(?i)credited|received|deposited|refund|cashback`)
	merchantPattern = regexp.MustCompile(`(?i)(?:at|to|from|merchant)\s+([A-Za-z0-9\s&.-]+?)(?:\s+on|\s+dated|\s+for|\s+via|\.|,|UPI)`)
	upiPattern      = regexp.MustCompile(`(?i)(?:UPI|VPA|UPI ID):\s*([a-zA-Z0-9._-]+@[a-zA-Z]+)`)
	accountPattern  = regexp.MustCompile(`(?i)A/c\s*\**(\d{4})`)
	cardPattern     = regexp.MustCompile(`(?i)card\s*(?:ending\s*)?\**(\d{4})`)
	datePattern     = regexp.MustCompile(`(?i)(?:on|dated)\s+(\d{2}[-/]\d{2}[-/]\d{2,4})`)
	refPattern      = regexp.MustCompile(`(?i)(?:Ref\.?|Reference|Txn)\s*(?:No\.?|ID|#)?\s*:?\s*([A-Z0-9]+)`)
)

// Transaction is a structured financial record parsed from one bank SMS.
type Transaction struct {
	RawText     string           `json:"rawText"`
	SMSID       string           `json:"smsId,omitempty"`
	Sender      string           `json:"sender"`
	Type        transaction.Type `json:"type"`
	Amount      float64          `json:"amount"`
	Merchant    string           `json:"merchant"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	CategoryID  string           `json:"categoryId"`
	Account     string           `json:"account"`
	UPIID       string           `json:"upiId"`
	RefNo       string           `json:"refNo"`
	Date        time.Time        `json:"date"`
	Confidence  float64          `json:"confidence"`
	NeedsReview bool             `json:"needsReview"`
}

// Message is one entry in a bulk parse request.
type Message struct {
	ID        string
	Text      string
	Sender    string
	Timestamp time.Time
}

// Parser turns bank/payment SMS text into transactions. It is narrower than
// bill extraction on purpose: mandatory amount and direction, single-regex
// fields, no fallback cascades.
type Parser struct {
	classifier *Classifier
	now        func() time.Time
}

func NewParser(classifier *Classifier) *Parser {
	return &Parser{
		classifier: classifier,
		now:        time.Now,
	}
}

// KnownSender reports whether the sender id belongs to a bank or payment app.
func (p *Parser) KnownSender(sender string) bool {
	upper := strings.ToUpper(sender)
	for _, bank := range bankSenders {
		if strings.Contains(upper, bank) {
			return true
		}
	}

	return false
}

// Parse extracts a transaction from one SMS. Unknown senders, missing
// amounts, and undetermined direction return sentinel errors; everything
// optional just stays zero.
func (p *Parser) Parse(ctx context.Context, text, sender string) (*Transaction, error) {
	return p.parse(ctx, text, sender, p.now())
}

// parse runs the extraction with an explicit date fallback. A date found in
// the text always wins; fallback stands in when the text carries none.
func (p *Parser) parse(ctx context.Context, text, sender string, fallback time.Time) (*Transaction, error) {
	if !p.KnownSender(sender) {
		return nil, ErrUnknownSender
	}

	tx := &Transaction{
		RawText: text,
		Sender:  sender,
		Date:    fallback,
	}

	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrNoAmount
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", m[1], err)
	}
	tx.Amount = amount

	switch {
	case debitPattern.MatchString(text):
		tx.Type = transaction.TypeExpense
	case creditPattern.MatchString(text):
		tx.Type = transaction.TypeIncome
	default:
		return nil, ErrNoDirection
	}

	if m := merchantPattern.FindStringSubmatch(text); m != nil {
		tx.Merchant = strings.TrimSpace(m[1])
		tx.Description = "Payment to " + tx.Merchant
	}

	if m := upiPattern.FindStringSubmatch(text); m != nil {
		tx.UPIID = m[1]
		if tx.Merchant == "" {
			tx.Merchant = strings.SplitN(m[1], "@", 2)[0]
		}
	}

	if m := accountPattern.FindStringSubmatch(text); m != nil {
		tx.Account = m[1]
	} else if m := cardPattern.FindStringSubmatch(text); m != nil {
		tx.Account = m[1]
	}

	if m := refPattern.FindStringSubmatch(text); m != nil {
		tx.RefNo = m[1]
	}

	if m := datePattern.FindStringSubmatch(text); m != nil {
		tx.Date = parseSMSDate(m[1], fallback)
	}

	switch {
	case tx.Type == transaction.TypeExpense && tx.Merchant != "":
		cls := p.classifier.Categorize(ctx, tx.Merchant, text)
		tx.Category = cls.Category.Name
		tx.CategoryID = cls.Category.ID
		tx.Confidence = cls.Confidence
		tx.NeedsReview = cls.Confidence < ReviewThreshold
	case tx.Type == transaction.TypeIncome:
		tx.Category = OtherIncome.Name
		tx.Confidence = 0.7
		tx.NeedsReview = true
	}

	return tx, nil
}

// ParseBulk parses a batch of messages, skipping the ones that fail the
// gates. Each result carries its message id, and the message timestamp
// stands in for the date when the text has none; a date extracted from the
// text still wins.
func (p *Parser) ParseBulk(ctx context.Context, msgs []Message) []*Transaction {
	var txs []*Transaction

	for _, msg := range msgs {
		fallback := msg.Timestamp
		if fallback.IsZero() {
			fallback = p.now()
		}

		tx, err := p.parse(ctx, msg.Text, msg.Sender, fallback)
		if err != nil {
			continue
		}

		tx.SMSID = msg.ID
		txs = append(txs, tx)
	}

	return txs
}

// parseSMSDate handles DD-MM-YY and DD-MM-YYYY with - or / separators.
// Anything unparseable falls back to now.
func parseSMSDate(s string, now time.Time) time.Time {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return now
	}

	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])

	if err1 != nil || err2 != nil || err3 != nil {
		return now
	}

	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return now
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
