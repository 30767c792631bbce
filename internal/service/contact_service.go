package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/listeningclub/internal/config"
	"github.com/listeningclub/internal/db"
)

// ErrRateLimited means the caller exhausted the submission quota for the
// trailing window.
var ErrRateLimited = errors.New("too many submissions")

// ValidationError carries the short human-readable reason surfaced to the
// caller on a 400. It never includes internals.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

const (
	maxNameLength       = 100
	maxPhoneLength      = 20
	maxProfessionLength = 100
	maxCityLength       = 100
	minAge              = 1
	maxAge              = 150
)

// ContactInput carries the raw, untrusted contact-form fields.
// Age stays a string until validation because browsers send it as either a
// JSON string or a number.
type ContactInput struct {
	Name       string
	Phone      string
	Age        string
	Profession string
	City       string
}

// RateLimitPolicy bounds submissions per address hash within a trailing
// window. FailMode decides what a failed count query means.
type RateLimitPolicy struct {
	Limit    int
	Window   time.Duration
	FailMode string
}

// ContactService validates, sanitizes and persists public contact-form
// submissions.
type ContactService struct {
	store  SubmissionStore
	policy RateLimitPolicy
	now    func() time.Time
}

// NewContactService creates a ContactService over the given store.
func NewContactService(store SubmissionStore, policy RateLimitPolicy) *ContactService {
	if policy.Limit <= 0 {
		policy.Limit = 5
	}
	if policy.Window <= 0 {
		policy.Window = time.Hour
	}
	if policy.FailMode != config.RateLimitFailClosed {
		policy.FailMode = config.RateLimitFailOpen
	}
	return &ContactService{store: store, policy: policy, now: time.Now}
}

// CheckQuota returns ErrRateLimited when the address hash already produced
// the maximum number of submissions within the trailing window. The window
// slides: only rows younger than now-window count. A failed count query is
// resolved by the configured fail mode and logged either way; enforcement is
// best-effort, concurrent requests may slightly overshoot the cap.
func (s *ContactService) CheckQuota(ctx context.Context, ipHash string) error {
	since := s.now().Add(-s.policy.Window)
	count, err := s.store.CountRecent(ctx, ipHash, since)
	if err != nil {
		slog.Error("contact: rate limit count failed", "error", err, "ip_hash", ipHash, "fail_mode", s.policy.FailMode)
		if s.policy.FailMode == config.RateLimitFailClosed {
			return ErrRateLimited
		}
		return nil
	}

	if count >= int64(s.policy.Limit) {
		slog.Warn("contact: rate limit exceeded", "ip_hash", ipHash, "count", count)
		return ErrRateLimited
	}

	return nil
}

// Submit validates and sanitizes the input, then persists exactly one row
// tagged with ipHash. Validation failures return a *ValidationError; any
// store error is returned as-is and means no row was created.
func (s *ContactService) Submit(ctx context.Context, ipHash string, input ContactInput) (*db.ContactSubmission, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	age, _ := strconv.Atoi(strings.TrimSpace(input.Age))

	submission := &db.ContactSubmission{
		Name:       SanitizeText(input.Name),
		Phone:      SanitizeText(input.Phone),
		Age:        age,
		Profession: SanitizeText(input.Profession),
		City:       SanitizeText(input.City),
		IPHash:     ipHash,
		CreatedAt:  s.now(),
	}

	if err := s.store.Insert(ctx, submission); err != nil {
		slog.Error("contact: insert failed", "error", err, "ip_hash", ipHash)
		return nil, err
	}

	slog.Info("contact: submission accepted", "ip_hash", ipHash)
	return submission, nil
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Age) == "" ||
		strings.TrimSpace(input.Profession) == "" ||
		strings.TrimSpace(input.City) == "" {
		return &ValidationError{Reason: "All fields are required"}
	}

	if utf8.RuneCountInString(input.Name) > maxNameLength {
		return &ValidationError{Reason: "Name must be less than 100 characters"}
	}
	if utf8.RuneCountInString(input.Phone) > maxPhoneLength {
		return &ValidationError{Reason: "Phone number must be less than 20 characters"}
	}
	if utf8.RuneCountInString(input.Profession) > maxProfessionLength {
		return &ValidationError{Reason: "Profession must be less than 100 characters"}
	}
	if utf8.RuneCountInString(input.City) > maxCityLength {
		return &ValidationError{Reason: "City must be less than 100 characters"}
	}

	age, err := strconv.Atoi(strings.TrimSpace(input.Age))
	if err != nil || age < minAge || age > maxAge {
		return &ValidationError{Reason: "Please provide a valid age"}
	}

	return nil
}
