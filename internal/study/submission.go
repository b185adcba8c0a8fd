package study

// SubmissionState is the state of a topic submission form.
type SubmissionState int

const (
	Idle SubmissionState = iota
	Submitting
	Succeeded
)

func (s SubmissionState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	default:
		return "idle"
	}
}

// Submission tracks one form: idle → submitting → succeeded, or back to
// idle with an error message. Succeeded is terminal.
type Submission struct {
	state   SubmissionState
	message string
}

// Begin moves an idle form to submitting and clears the previous message.
func (s *Submission) Begin() error {
	if s.state != Idle {
		return ErrBusy
	}
	s.state = Submitting
	s.message = ""
	return nil
}

func (s *Submission) Succeed() {
	if s.state == Submitting {
		s.state = Succeeded
	}
}

// Fail returns a submitting form to idle with message shown.
func (s *Submission) Fail(message string) {
	if s.state == Submitting {
		s.state = Idle
		s.message = message
	}
}

func (s *Submission) State() SubmissionState { return s.state }

func (s *Submission) Message() string { return s.message }
