package bill

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Akarshakk/F-Buddy/internal/category"
	"github.com/Akarshakk/F-Buddy/internal/llm"
	"github.com/Akarshakk/F-Buddy/internal/recognize"
)

// Result is the structured record extracted from one bill. Amount, merchant,
// and date are absent when no extractor matched; category always resolves to
// a member of the closed set. Confidence is the recognition engine's score,
// passed through for caller display.
type Result struct {
	ID         uuid.UUID       `json:"id"`
	RawText    string          `json:"rawText"`
	Amount     *float64        `json:"amount"`
	Category   category.Label  `json:"category"`
	Method     category.Method `json:"method"`
	Merchant   *string         `json:"merchant"`
	Date       *string         `json:"date"`
	Confidence float64         `json:"confidence"`
}

// Service orchestrates bill extraction: a combined LLM multi-field call with
// per-field fallback to the individual extractors, or a purely local
// regex-and-keywords path when the model is unavailable.
type Service struct {
	completer  llm.Completer
	classifier *category.Classifier
	recognizer recognize.Recognizer
}

// NewService wires the orchestrator. completer may be nil (local tiers only);
// recognizer may be nil if ProcessImage is never used.
func NewService(completer llm.Completer, classifier *category.Classifier, recognizer recognize.Recognizer) *Service {
	return &Service{
		completer:  completer,
		classifier: classifier,
		recognizer: recognizer,
	}
}

// ProcessImage runs recognition and then the smart extraction path. The
// engine's confidence score is carried onto the result.
func (s *Service) ProcessImage(ctx context.Context, image []byte) (Result, error) {
	if s.recognizer == nil {
		return Result{}, fmt.Errorf("no recognizer configured")
	}

	rec, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		return Result{}, fmt.Errorf("recognizing image: %w", err)
	}

	res := s.Extract(ctx, rec.Text)
	res.Confidence = rec.Confidence

	return res, nil
}

// Extract is the smart path: normalize the text, ask the model for all four
// fields in one call, and fill whatever it omitted from the individual
// extractors. A combined-call miss degrades to the fully local path. The
// input here is normalized before everything; ExtractFields is the variant
// that works on raw text.
func (s *Service) Extract(ctx context.Context, rawText string) Result {
	clean := Normalize(rawText)

	if s.completer != nil {
		if obj, ok := s.extractCombined(ctx, clean); ok {
			return s.merge(obj, rawText, clean)
		}

		slog.Debug("combined llm extraction missed, using local extraction")
	}

	res := s.extractLocal(ctx, clean)
	res.RawText = rawText

	return res
}

// ExtractFields is the plain path: individual extractors plus the standalone
// classifier over the text exactly as given, no normalization.
func (s *Service) ExtractFields(ctx context.Context, rawText string) Result {
	return s.extractLocal(ctx, rawText)
}

func (s *Service) extractLocal(ctx context.Context, text string) Result {
	res := Result{
		ID:      uuid.New(),
		RawText: text,
	}

	if amount, ok := ExtractAmount(text); ok {
		res.Amount = &amount
	}

	if date, ok := ExtractDate(text); ok {
		res.Date = &date
	}

	if merchant, ok := ExtractMerchant(text); ok {
		res.Merchant = &merchant
	}

	cls := s.classifier.Classify(ctx, text)
	res.Category = cls.Category
	res.Method = cls.Method

	return res
}

// extractCombined performs the single multi-field LLM call. Any transport
// error or unparseable body is a miss, never a failure.
func (s *Service) extractCombined(ctx context.Context, clean string) (llm.Object, bool) {
	resp, err := s.completer.Complete(ctx, extractPrompt(clean), llm.Options{
		Temperature: 0.05,
		MaxTokens:   150,
	})
	if err != nil {
		slog.Debug("combined extraction call failed", "error", err)
		return llm.Object{}, false
	}

	obj, status := llm.ParseObject(resp)
	if status != llm.StatusOK {
		slog.Debug("combined extraction response unusable", "status", status)
		return llm.Object{}, false
	}

	return obj, true
}

// merge takes the combined call's fields and falls back per field to the
// individual extractors over the normalized text. Category has no individual
// extractor on this path; a missing or invalid label is forced to others.
func (s *Service) merge(obj llm.Object, rawText, clean string) Result {
	res := Result{
		ID:       uuid.New(),
		RawText:  rawText,
		Category: category.Others,
		Method:   category.MethodLLM,
	}

	if v, ok := obj.Float("amount"); ok {
		res.Amount = &v
	} else if v, ok := ExtractAmount(clean); ok {
		res.Amount = &v
	}

	if m, ok := obj.String("merchant"); ok {
		m = truncate(m, merchantMaxLen)
		res.Merchant = &m
	} else if m, ok := ExtractMerchant(clean); ok {
		res.Merchant = &m
	}

	if d, ok := obj.String("date"); ok {
		res.Date = &d
	} else if d, ok := ExtractDate(clean); ok {
		res.Date = &d
	}

	if c, ok := obj.String("category"); ok {
		if label, valid := category.Parse(c); valid {
			res.Category = label
		}
	}

	return res
}
