// Package console defines the output channel between the engine and its
// front ends. The engine only classifies what it says; how a line looks is
// entirely up to the Console implementation.
package console

// Kind classifies an output line for presentation. It never carries
// gameplay meaning.
type Kind int

const (
	Message Kind = iota
	Title
	Section
	Subsection
	Description
	Command
	Error
	Information
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Message:
		return "message"
	case Title:
		return "title"
	case Section:
		return "section"
	case Subsection:
		return "subsection"
	case Description:
		return "description"
	case Command:
		return "command"
	case Error:
		return "error"
	case Information:
		return "information"
	default:
		return "unknown"
	}
}

// Console receives classified output lines from the engine.
type Console interface {
	Display(text string, kind Kind)
}

// Line is one recorded output line.
type Line struct {
	Text string
	Kind Kind
}

// Recorder is a Console that accumulates lines in memory. The TUI uses it
// to collect engine output between frames; tests use it to assert on
// output.
type Recorder struct {
	lines []Line
}

// Display appends the line to the recording.
func (r *Recorder) Display(text string, kind Kind) {
	r.lines = append(r.lines, Line{Text: text, Kind: kind})
}

// Drain returns all recorded lines and resets the recording.
func (r *Recorder) Drain() []Line {
	out := r.lines
	r.lines = nil
	return out
}

// Lines returns the recorded lines without resetting.
func (r *Recorder) Lines() []Line {
	return r.lines
}
