package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "svc" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{{Key: "existing", Value: slog.StringValue("x")}}, "", "")
	if len(attrs) != 1 || attrs[0].Key != "existing" {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "fetch failed", errors.New("boom"), "league", "nfl")
	if out := buf.String(); !strings.Contains(out, "error=boom") || !strings.Contains(out, "league=nfl") {
		t.Fatalf("expected error and league fields, got %s", out)
	}
}

func TestRedactQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"regions=us", "regions=us"},
		{"apiKey=secret&regions=us", "apiKey=REDACTED&regions=us"},
		{"token=abc", "token=REDACTED"},
	}
	for _, tc := range cases {
		if got := RedactQuery(tc.in); got != tc.want {
			t.Fatalf("RedactQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := RedactQuery("%zz"); got != "[unparseable]" {
		t.Fatalf("expected unparseable marker, got %q", got)
	}
}
