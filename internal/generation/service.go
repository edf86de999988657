// Package generation turns a goal and a duration into a learning plan.
//
// A Service asks the configured language model for a plan a fixed number of
// times and accepts the first answer whose tiers have exactly the expected
// entry counts. When every attempt fails, or no model is configured, the plan
// is synthesized deterministically from the curriculum catalog. Generate only
// returns an error for an empty goal or duration, or a duration longer than
// duration.MaxDays.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/llm"
	"github.com/alexanderramin/learnplan/internal/plan"
	"github.com/alexanderramin/learnplan/internal/subject"
	"github.com/google/uuid"
)

// MaxAttempts is the number of model calls made before falling back.
const MaxAttempts = 3

// errorPrefix marks a model answer that reports a failure in-band.
const errorPrefix = "Error:"

var (
	ErrEmptyGoal     = errors.New("goal is required")
	ErrEmptyDuration = errors.New("duration is required")
)

// Source records which path produced a plan.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Request is the input to Generate. Category overrides classification when
// set; RequestID is generated when empty.
type Request struct {
	Goal      string
	Duration  string
	Profile   *Profile
	Category  domain.Category
	RequestID string
}

// Result is a generated plan plus metadata about how it was produced.
type Result struct {
	Plan      domain.Plan
	Source    Source
	Attempts  int
	Category  domain.Category
	Totals    duration.Totals
	RequestID string
}

// Service orchestrates plan generation. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	client         llm.LLMClient
	classifier     *subject.Classifier
	assembler      *plan.Assembler
	observer       Observer
	repetitionGate bool
	newID          func() string
}

// Option configures a Service.
type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithRepetitionGate controls whether a model plan with repeated daily or
// weekly entries is rejected. The gate is on by default.
func WithRepetitionGate(on bool) Option {
	return func(s *Service) { s.repetitionGate = on }
}

// NewService wires a Service. client may be nil, in which case every plan
// comes from the deterministic fallback.
func NewService(client llm.LLMClient, classifier *subject.Classifier, assembler *plan.Assembler, opts ...Option) *Service {
	s := &Service{
		client:         client,
		classifier:     classifier,
		assembler:      assembler,
		observer:       NoopObserver{},
		repetitionGate: true,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a plan for req. The returned error is ErrEmptyGoal,
// ErrEmptyDuration or duration.ErrTooLong; model failures are absorbed by
// the fallback.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	durationText := strings.TrimSpace(req.Duration)
	if durationText == "" {
		return nil, ErrEmptyDuration
	}
	span := duration.Parse(durationText)
	if err := span.Validate(); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = s.classifier.Classify(goal)
	}
	res := &Result{
		Category:  category,
		Totals:    span.Totals(),
		RequestID: req.RequestID,
	}
	if res.RequestID == "" {
		res.RequestID = s.newID()
	}
	base := Event{RequestID: res.RequestID, Goal: goal, Category: category, Expected: res.Totals}

	reason, lastErr := ReasonNoClient, error(nil)
	if s.client != nil {
		for attempt := 1; attempt <= MaxAttempts; attempt++ {
			if ctx.Err() != nil {
				reason, lastErr = ReasonCallerCanceled, ctx.Err()
				break
			}
			res.Attempts = attempt

			ev := base
			ev.Attempt = attempt
			ev.Kind = EventAttemptStarted
			s.observer.OnTransition(ctx, ev)

			start := time.Now()
			p, failure, err := s.attempt(ctx, goal, durationText, res.Totals, category, req.Profile, attempt)
			ev.Latency = time.Since(start)

			if failure == "" {
				ev.Kind = EventSucceeded
				s.observer.OnTransition(ctx, ev)
				res.Plan = p
				res.Source = SourceLLM
				return res, nil
			}

			ev.Kind = EventAttemptFailed
			ev.Reason = failure
			ev.Err = err
			s.observer.OnTransition(ctx, ev)
			reason, lastErr = failure, err
		}
	}

	ev := base
	ev.Kind = EventFallbackEntered
	ev.Attempt = res.Attempts
	ev.Reason = reason
	ev.Err = lastErr
	s.observer.OnTransition(ctx, ev)

	res.Plan = s.assembler.Assemble(goal, res.Totals, category)
	res.Source = SourceFallback
	return res, nil
}

// attempt makes one model call. A non-empty FailureReason means the answer
// was rejected.
func (s *Service) attempt(ctx context.Context, goal, durationText string, totals duration.Totals, category domain.Category, profile *Profile, n int) (domain.Plan, FailureReason, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(goal, durationText, totals, category, profile, n),
	})
	if err != nil {
		return domain.Plan{}, ReasonClientError, err
	}

	text := strings.TrimSpace(resp.Text)
	if strings.HasPrefix(text, errorPrefix) {
		return domain.Plan{}, ReasonErrorResponse, errors.New(truncate(text, 200))
	}

	candidate, err := llm.ExtractJSON[map[string]any](text, nil)
	if err != nil {
		return domain.Plan{}, ReasonDecodeFailed, err
	}

	if err := checkShape(candidate, totals); err != nil {
		return domain.Plan{}, ReasonShapeMismatch, err
	}

	p := plan.Repair(candidate)
	if s.repetitionGate {
		if plan.IsRepetitive(p.DailyTasks) {
			return domain.Plan{}, ReasonRepetitive, fmt.Errorf("%s repeats entries", domain.TierDaily)
		}
		if plan.IsRepetitive(p.WeeklyTasks) {
			return domain.Plan{}, ReasonRepetitive, fmt.Errorf("%s repeats entries", domain.TierWeekly)
		}
	}
	return p, "", nil
}

// checkShape compares each tier's entry count with totals. A tier that is
// missing or not a list counts as empty.
func checkShape(candidate map[string]any, totals duration.Totals) error {
	want := map[domain.Tier]int{
		domain.TierMonthly: totals.TotalMonths,
		domain.TierWeekly:  totals.TotalWeeks,
		domain.TierDaily:   totals.TotalDays,
	}
	var errs []error
	for _, tier := range domain.Tiers {
		items, _ := candidate[string(tier)].([]any)
		if got := len(items); got != want[tier] {
			errs = append(errs, fmt.Errorf("%s: want %d entries, got %d", tier, want[tier], got))
		}
	}
	return errors.Join(errs...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
