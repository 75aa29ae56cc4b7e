package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		quiet, verbose bool
		want           logrus.Level
	}{
		{false, false, logrus.InfoLevel},
		{true, false, logrus.WarnLevel},
		{false, true, logrus.DebugLevel},
	}
	for _, c := range cases {
		if got := NewLogger(&bytes.Buffer{}, c.quiet, c.verbose).GetLevel(); got != c.want {
			t.Fatalf("quiet=%v verbose=%v: level %v want %v", c.quiet, c.verbose, got, c.want)
		}
	}
}

func TestLoggerWritesToDst(t *testing.T) {
	var b bytes.Buffer
	NewLogger(&b, false, false).WithField("motif", "M1").Info("hello")
	if s := b.String(); !strings.Contains(s, "hello") || !strings.Contains(s, "motif=M1") {
		t.Fatalf("log line %q", s)
	}
}

func TestDisabledProgressIsSilent(t *testing.T) {
	var b bytes.Buffer
	p := NewProgress(&b, 10, false)
	p.Increment()
	p.Finish()
	if b.Len() != 0 {
		t.Fatalf("disabled bar wrote %q", b.String())
	}
}
