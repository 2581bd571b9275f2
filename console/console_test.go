package console

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Message:     "message",
		Title:       "title",
		Section:     "section",
		Subsection:  "subsection",
		Description: "description",
		Command:     "command",
		Error:       "error",
		Information: "information",
		Kind(99):    "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestRecorder_Drain(t *testing.T) {
	r := &Recorder{}
	r.Display("hello", Message)
	r.Display("oops", Error)

	lines := r.Drain()
	if len(lines) != 2 || lines[1].Kind != Error {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if len(r.Drain()) != 0 {
		t.Error("Drain should reset the recording")
	}
}
