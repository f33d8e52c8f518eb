package contact

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Status is the state of the submission flow.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// GenericFailure is shown when the relay gave no error text of its own.
const GenericFailure = "Failed to send emails"

// DefaultAutoReply is the body of the auto-reply sent to the visitor.
const DefaultAutoReply = "Thank you for your message! I have received it and will get back to you soon."

// ErrInFlight is returned by Begin while a submission is already being dispatched.
var ErrInFlight = errors.New("a submission is already in progress")

// Options configures who receives the messages and which relay templates are used.
type Options struct {
	OwnerEmail        string
	InboxTemplate     string
	AutoReplyTemplate string
	AutoReplyMessage  string
}

// Outcome records what each leg of a dispatch did. Err is nil only when both legs
// were delivered.
type Outcome struct {
	InboxSent     bool
	AutoReplySent bool
	Err           error
}

// Partial reports whether exactly one of the two messages went out.
func (o Outcome) Partial() bool {
	return o.InboxSent != o.AutoReplySent
}

// Snapshot is the persisted form of a Flow.
type Snapshot struct {
	Form          FormState `json:"form"`
	Status        Status    `json:"status"`
	Error         string    `json:"error,omitempty"`
	InboxSent     bool      `json:"inbox_sent,omitempty"`
	AutoReplySent bool      `json:"auto_reply_sent,omitempty"`
	StartedAt     time.Time `json:"started_at,omitempty"`
}

// Flow is the contact form state machine:
//
//	idle|success|error --Begin--> submitting --Finish--> success|error
//
// On success the form is cleared; on error it is kept for a retry.
type Flow struct {
	mu    sync.Mutex
	relay Relay
	opts  Options
	snap  Snapshot
	nowFn func() time.Time
}

func NewFlow(relay Relay, opts Options) *Flow {
	return RestoreFlow(relay, opts, Snapshot{})
}

// RestoreFlow rebuilds a flow from a session snapshot.
func RestoreFlow(relay Relay, opts Options, snap Snapshot) *Flow {
	if snap.Status == "" {
		snap.Status = StatusIdle
	}
	if opts.AutoReplyMessage == "" {
		opts.AutoReplyMessage = DefaultAutoReply
	}
	return &Flow{relay: relay, opts: opts, snap: snap, nowFn: time.Now}
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap.Status
}

func (f *Flow) Form() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap.Form
}

// Update replaces the form fields, as typing into the inputs would.
func (f *Flow) Update(form FormState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap.Form = form
}

// Begin moves to submitting. An invalid form is refused without leaving the
// current state, the way a browser blocks submission of empty required fields.
func (f *Flow) Begin() (FormState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.snap.Status == StatusSubmitting {
		return FormState{}, ErrInFlight
	}
	if err := f.snap.Form.Validate(); err != nil {
		return FormState{}, err
	}

	f.snap.Status = StatusSubmitting
	f.snap.Error = ""
	f.snap.InboxSent = false
	f.snap.AutoReplySent = false
	f.snap.StartedAt = f.nowFn()
	return f.snap.Form, nil
}

// Dispatch sends the inbox copy and the auto-reply concurrently and waits for both.
// The calls are detached from ctx cancellation: a visitor leaving the page does not
// abort messages already in flight.
func (f *Flow) Dispatch(ctx context.Context, form FormState) Outcome {
	ctx = context.WithoutCancel(ctx)

	inbox := Payload{
		ToEmail:   f.opts.OwnerEmail,
		FromName:  form.Name,
		FromEmail: form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		ReplyTo:   form.Email,
	}
	autoReply := Payload{
		ToEmail:  form.Email,
		FromName: form.Name,
		Subject:  form.Subject,
		Message:  f.opts.AutoReplyMessage,
		ReplyTo:  f.opts.OwnerEmail,
	}

	var inboxErr, autoReplyErr error
	var g errgroup.Group
	g.Go(func() error {
		inboxErr = f.relay.Send(ctx, f.opts.InboxTemplate, inbox)
		return inboxErr
	})
	g.Go(func() error {
		autoReplyErr = f.relay.Send(ctx, f.opts.AutoReplyTemplate, autoReply)
		return autoReplyErr
	})
	_ = g.Wait()

	out := Outcome{InboxSent: inboxErr == nil, AutoReplySent: autoReplyErr == nil}
	switch {
	case inboxErr != nil:
		out.Err = errors.Wrap(inboxErr, "inbox copy")
	case autoReplyErr != nil:
		out.Err = errors.Wrap(autoReplyErr, "auto-reply")
	}
	return out
}

// Finish applies a dispatch outcome. Any failure, including a partial one, is an error.
func (f *Flow) Finish(out Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.snap.InboxSent = out.InboxSent
	f.snap.AutoReplySent = out.AutoReplySent

	if out.Err != nil {
		f.snap.Status = StatusError
		f.snap.Error = ErrorText(out.Err)
		return
	}

	f.snap.Status = StatusSuccess
	f.snap.Error = ""
	f.snap.Form = FormState{}
}

// Submit runs Begin, Dispatch and Finish.
func (f *Flow) Submit(ctx context.Context) (Outcome, error) {
	form, err := f.Begin()
	if err != nil {
		return Outcome{}, err
	}

	out := f.Dispatch(ctx, form)
	LogOutcome(form, out)
	f.Finish(out)
	return out, nil
}

// LogOutcome writes one log line per dispatch, naming the legs that went out.
func LogOutcome(form FormState, out Outcome) {
	if out.Err != nil {
		log.Printf("Email failed: %v (inbox sent: %t, auto-reply sent: %t)", out.Err, out.InboxSent, out.AutoReplySent)
		return
	}
	log.Printf("Contact message relayed from %s (%s)", form.Name, form.Email)
}

// ErrorText is what the visitor is told about a failed dispatch: the relay's own
// text when it sent one, otherwise GenericFailure.
func ErrorText(err error) string {
	var re *RelayError
	if errors.As(err, &re) && re.Text != "" {
		return re.Text
	}
	return GenericFailure
}
