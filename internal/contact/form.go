package contact

import (
	"context"
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not resolved yet.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Submitter is the handler contract the form depends on.
type Submitter interface {
	Submit(ctx context.Context, req Request) Result
}

// BannerKind classifies the banner shown after a submission resolves.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the message rendered above the form.
type Banner struct {
	Kind BannerKind
	Text string
}

// Form models the contact form's client-side state: the entered field
// values, a single-flight submission guard, and the result banner. At most
// one submission per Form instance is in flight at a time; the guard is
// per-instance and advisory, two Form instances can still submit
// concurrently.
type Form struct {
	submitter Submitter

	mu         sync.Mutex
	submitting bool
	fields     Request
	banner     *Banner
}

// NewForm creates a form bound to a submission handler.
func NewForm(submitter Submitter) *Form {
	return &Form{submitter: submitter}
}

// Submit runs one submission through the handler. While a submission is in
// flight, further calls return ErrSubmissionInFlight without invoking the
// handler. On success the fields are cleared; on failure they are retained
// so the user does not need to retype. A panic escaping the handler call is
// converted to a generic error banner, never propagated.
func (f *Form) Submit(ctx context.Context, req Request) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.submitting = true
	f.fields = req
	f.banner = nil
	f.mu.Unlock()

	res := f.submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if res.Success {
		f.banner = &Banner{Kind: BannerSuccess, Text: res.Message}
		f.fields = Request{}
	} else {
		f.banner = &Banner{Kind: BannerError, Text: res.Message}
	}
	f.submitting = false
	return nil
}

func (f *Form) submit(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail("An error occurred. Please try again later.")
		}
	}()
	return f.submitter.Submit(ctx, req)
}

// Submitting reports whether a submission is currently in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Banner returns the current result banner, or nil before the first
// submission resolves.
func (f *Form) Banner() *Banner {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.banner
}

// Fields returns the retained field values.
func (f *Form) Fields() Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}
