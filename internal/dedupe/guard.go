package dedupe

import (
	"context"
	"time"
)

const (
	// DefaultWindow is the tolerance for manually entered transactions.
	DefaultWindow = time.Minute

	// SMSWindow is the fixed tolerance for SMS-sourced transactions, which
	// arrive within seconds of the underlying payment.
	SMSWindow = 2 * time.Minute
)

// Query describes a candidate transaction to check for an existing match:
// same user, same amount, optionally the same category, optionally a
// description containing the given substring, within OccurredAt ± Window.
type Query struct {
	UserID      string
	Amount      float64
	Category    string // empty: any category
	Description string // empty: any description; otherwise substring match
	OccurredAt  time.Time
	Window      time.Duration
}

//go:generate mockgen -source=guard.go -destination=finder_mock.go -package=dedupe
type Finder interface {
	FindMatching(ctx context.Context, q Query) (bool, error)
}

// Service is the duplicate guard. It only answers yes/no; whether to block,
// skip, or prompt is the caller's decision. The check is best-effort: a race
// between two concurrent identical submissions is not prevented here.
type Service struct {
	finder Finder
}

func NewService(finder Finder) *Service {
	return &Service{finder: finder}
}

// IsDuplicate reports whether a matching record already exists. Zero-valued
// window and timestamp default to DefaultWindow and now.
func (s *Service) IsDuplicate(ctx context.Context, q Query) (bool, error) {
	if q.Window <= 0 {
		q.Window = DefaultWindow
	}

	if q.OccurredAt.IsZero() {
		q.OccurredAt = time.Now()
	}

	return s.finder.FindMatching(ctx, q)
}

// ForSMS builds the SMS-path query: amount plus merchant-substring match
// inside the fixed two-minute window.
func ForSMS(userID string, amount float64, merchant string, at time.Time) Query {
	return Query{
		UserID:      userID,
		Amount:      amount,
		Description: merchant,
		OccurredAt:  at,
		Window:      SMSWindow,
	}
}

// ForEntry builds the manual-entry query: amount plus category equality
// within the caller's tolerance (DefaultWindow when zero).
func ForEntry(userID string, amount float64, category string, at time.Time, window time.Duration) Query {
	return Query{
		UserID:     userID,
		Amount:     amount,
		Category:   category,
		OccurredAt: at,
		Window:     window,
	}
}
