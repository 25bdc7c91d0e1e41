package verify

import (
	"fmt"
	"io"
)

// FeedbackSink surfaces a failure message to the user.
// The engine calls Notify at most once per verification pass.
type FeedbackSink interface {
	Notify(message string)
}

// FeedbackFunc adapts an ordinary function to FeedbackSink.
type FeedbackFunc func(message string)

func (f FeedbackFunc) Notify(message string) { f(message) }

// NopSink discards every message.
type NopSink struct{}

func (NopSink) Notify(string) {}

// WriterSink writes each message on its own line to w.
// Write errors are dropped: feedback is best effort.
func WriterSink(w io.Writer) FeedbackSink {
	return FeedbackFunc(func(message string) {
		_, _ = fmt.Fprintln(w, message)
	})
}
