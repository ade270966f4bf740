package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	for _, tc := range []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 5*time.Second, "2m:5s"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3h:4m:5s"},
	} {
		if got := FormatTime(tc.in); got != tc.want {
			t.Errorf("FormatTime(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestColorize(t *testing.T) {
	if got := Colorize("ok", SuccessColor, false); got != "ok" {
		t.Errorf("disabled: got %q", got)
	}
	if got := Colorize("ok", SuccessColor, true); got != SuccessColor+"ok"+DefaultColor {
		t.Errorf("enabled: got %q", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

type syncBuffer struct {
	ch chan string
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.ch <- string(p)
	return len(p), nil
}

func TestSpinner(t *testing.T) {
	out := &syncBuffer{ch: make(chan string, 1024)}
	s := NewSpinner(out, "working")
	s.Start()
	first := <-out.ch
	s.Stop()
	s.Stop()
	close(out.ch)

	if !strings.Contains(first, "working") {
		t.Errorf("spinner frame %q does not hold the message", first)
	}
	var last string
	for frame := range out.ch {
		last = frame
	}
	if last != "\r\x1b[K" {
		t.Errorf("spinner should clear its line on stop, last write was %q", last)
	}
}
