package pipeline

import "fmt"

// Message is one of ErrorMessage, EOSMessage, DurationChangedMessage,
// StateChangedMessage or OtherMessage. Source is the path of the element
// that posted the message, e.g. "/playbin/uridecodebin0".
type Message interface {
	SourceName() string
	isMessage()
}

type ErrorMessage struct {
	Source string
	Text   string
	Debug  string
}

type EOSMessage struct {
	Source string
}

type DurationChangedMessage struct {
	Source string
}

// StateChangedMessage reports a state transition of Source. FromPipeline
// is set when Source is the top level pipeline itself, as opposed to one of
// its children, which may share its name.
type StateChangedMessage struct {
	Source       string
	FromPipeline bool
	Old          State
	New          State
}

// OtherMessage carries every message kind the tutorials do not react to.
type OtherMessage struct {
	Source string
	Kind   string
}

func (m ErrorMessage) SourceName() string           { return m.Source }
func (m EOSMessage) SourceName() string             { return m.Source }
func (m DurationChangedMessage) SourceName() string { return m.Source }
func (m StateChangedMessage) SourceName() string    { return m.Source }
func (m OtherMessage) SourceName() string           { return m.Source }

func (ErrorMessage) isMessage()           {}
func (EOSMessage) isMessage()             {}
func (DurationChangedMessage) isMessage() {}
func (StateChangedMessage) isMessage()    {}
func (OtherMessage) isMessage()           {}

// Error lets a terminating ErrorMessage travel as an error value.
func (m ErrorMessage) Error() string {
	if m.Source == "" {
		return m.Text
	}
	return fmt.Sprintf("%v: %v", m.Source, m.Text)
}
