package instruction

import (
	"os"

	"github.com/atotto/clipboard"
)

// writeFileFn and copyToClipboardFn are the active implementations for file
// and clipboard side effects. Tests replace them via StubPlatformActions.
var (
	writeFileFn       = os.WriteFile
	copyToClipboardFn = clipboard.WriteAll
)

// Recorder captures side effects while platform actions are stubbed.
type Recorder struct {
	Files     map[string]string
	Clipboard []string
	Err       error
}

// StubPlatformActions routes file writes and clipboard copies into a
// Recorder and returns it with a restore function. A non-nil Recorder.Err is
// returned from every stubbed call.
func StubPlatformActions() (*Recorder, func()) {
	rec := &Recorder{Files: map[string]string{}}
	origWrite := writeFileFn
	origCopy := copyToClipboardFn
	writeFileFn = func(name string, data []byte, _ os.FileMode) error {
		if rec.Err != nil {
			return rec.Err
		}
		rec.Files[name] = string(data)
		return nil
	}
	copyToClipboardFn = func(text string) error {
		if rec.Err != nil {
			return rec.Err
		}
		rec.Clipboard = append(rec.Clipboard, text)
		return nil
	}
	return rec, func() {
		writeFileFn = origWrite
		copyToClipboardFn = origCopy
	}
}
