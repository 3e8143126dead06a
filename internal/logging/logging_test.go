package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	test.That(t, !Logger().Enabled(t.Context(), 0), "default logger must be disabled")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, false))
	defer SetLogger(nil)

	Logger().Info("shapes drawn", "count", 3)
	Logger().Debug("hidden")
	test.That(t, strings.Contains(buf.String(), "count=3"), "missing attribute in", buf.String())
	test.That(t, !strings.Contains(buf.String(), "hidden"), "debug output must be filtered")
}
