package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Akarshakk/F-Buddy/internal/bill"
	"github.com/Akarshakk/F-Buddy/internal/category"
	"github.com/Akarshakk/F-Buddy/internal/chat"
	"github.com/Akarshakk/F-Buddy/internal/config"
	"github.com/Akarshakk/F-Buddy/internal/database"
	"github.com/Akarshakk/F-Buddy/internal/dedupe"
	dedupeStore "github.com/Akarshakk/F-Buddy/internal/dedupe/store"
	"github.com/Akarshakk/F-Buddy/internal/encoding"
	"github.com/Akarshakk/F-Buddy/internal/llm"
	"github.com/Akarshakk/F-Buddy/internal/recognize"
	"github.com/Akarshakk/F-Buddy/internal/sms"
	"github.com/Akarshakk/F-Buddy/internal/transaction"
)

// sink holds the optional database-side collaborators. All nil when the run
// is extraction-only.
type sink struct {
	guard  *dedupe.Service
	store  *dedupeStore.Store
	userID string
	window time.Duration
	save   bool
	when   time.Time
}

func main() {
	var (
		mode      = flag.String("mode", "bill", "extraction mode: bill or sms")
		input     = flag.String("input", "-", "input text file, or - for stdin")
		image     = flag.String("image", "", "bill image to OCR instead of reading text input")
		sender    = flag.String("sender", "", "SMS sender id, required in sms mode")
		when      = flag.String("date", "", "bill date override: absolute or relative (\"yesterday\", \"3 days ago\")")
		userID    = flag.String("user", "", "user id for database operations")
		checkDupe = flag.Bool("check-duplicate", false, "look up possible duplicates in the database")
		save      = flag.Bool("save", false, "persist the extracted transaction (skipped for duplicates)")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var completer llm.Completer
	if cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		completer = gemini
	} else {
		slog.Info("no GEMINI_API_KEY set, using keyword and pattern tiers only")
	}

	db := sink{
		userID: *userID,
		window: cfg.Dedupe.Tolerance,
		save:   *save,
		when:   chat.ParseRelativeDate(*when, time.Now()),
	}
	if *checkDupe || *save {
		conn, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		db.store = dedupeStore.New(conn)
		if *checkDupe {
			db.guard = dedupe.NewService(db.store)
		}
	}

	switch *mode {
	case "bill":
		err = runBill(ctx, cfg, completer, db, *input, *image)
	case "sms":
		err = runSMS(ctx, completer, db, *input, *sender)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		slog.Error("extraction failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

func runBill(ctx context.Context, cfg *config.Config, completer llm.Completer, db sink, input, image string) error {
	classifier := category.NewClassifier(completer)
	service := bill.NewService(completer, classifier, recognize.NewTesseract(cfg.OCR.TesseractPath))

	var result bill.Result

	if image != "" {
		data, err := os.ReadFile(image)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		result, err = service.ProcessImage(ctx, data)
		if err != nil {
			return err
		}
	} else {
		text, err := readInput(input)
		if err != nil {
			return err
		}
		result = service.Extract(ctx, text)
	}

	out := struct {
		bill.Result
		Duplicate *bool `json:"possibleDuplicate,omitempty"`
	}{Result: result}

	if db.guard != nil && result.Amount != nil {
		q := dedupe.ForEntry(db.userID, *result.Amount, string(result.Category), db.when, db.window)

		dup, err := db.guard.IsDuplicate(ctx, q)
		if err != nil {
			return err
		}
		out.Duplicate = &dup
	}

	if db.save && result.Amount != nil && !boolValue(out.Duplicate) {
		if err := db.store.Insert(ctx, billRecord(db.userID, result, db.when)); err != nil {
			return err
		}
	}

	return writeJSON(out)
}

func runSMS(ctx context.Context, completer llm.Completer, db sink, input, sender string) error {
	if sender == "" {
		return fmt.Errorf("sms mode requires -sender")
	}

	text, err := readInput(input)
	if err != nil {
		return err
	}

	parser := sms.NewParser(sms.NewClassifier(completer))

	tx, err := parser.Parse(ctx, text, sender)
	if err != nil {
		return err
	}

	out := struct {
		*sms.Transaction
		Duplicate *bool `json:"possibleDuplicate,omitempty"`
	}{Transaction: tx}

	if db.guard != nil {
		dup, err := db.guard.IsDuplicate(ctx, dedupe.ForSMS(db.userID, tx.Amount, tx.Merchant, tx.Date))
		if err != nil {
			return err
		}
		out.Duplicate = &dup
	}

	if db.save && !boolValue(out.Duplicate) {
		rec := &transaction.Record{
			UserID:      db.userID,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Category:    tx.Category,
			Description: tx.Description,
			Merchant:    tx.Merchant,
			Date:        tx.Date,
		}

		if err := db.store.Insert(ctx, rec); err != nil {
			return err
		}
	}

	return writeJSON(out)
}

// billRecord builds the record to persist. A date extracted from the bill
// wins; the -date flag (or now) stands in otherwise.
func billRecord(userID string, result bill.Result, fallback time.Time) *transaction.Record {
	rec := &transaction.Record{
		UserID:   userID,
		Amount:   *result.Amount,
		Type:     transaction.TypeExpense,
		Category: string(result.Category),
		Date:     fallback,
	}

	if result.Merchant != nil {
		rec.Merchant = *result.Merchant
		rec.Description = "Bill from " + *result.Merchant
	}

	if result.Date != nil {
		if d, err := time.Parse("2006-01-02", *result.Date); err == nil {
			rec.Date = d
		}
	}

	return rec
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func readInput(input string) (string, error) {
	var src io.Reader

	if input == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(input)
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		src = f
	}

	decoded, err := encoding.NewUTF8Reader(src)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return string(data), nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
