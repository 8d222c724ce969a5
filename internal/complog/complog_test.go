package complog

import (
	"strings"
	"testing"
)

func TestReportNoneSuppressesEverything(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportNone)
	l.Info("hello\n")
	l.Error("boom\n")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestReportErrorsOnlyLogsErrors(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportErrors)
	l.Info("hello\n")
	l.Error("boom\n")
	if got := buf.String(); got != "boom\n" {
		t.Fatalf("got %q, want %q", got, "boom\n")
	}
}

func TestReportAllLogsEverything(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportAll)
	l.Info("a\n")
	l.Error("b\n")
	if got := buf.String(); got != "a\nb\n" {
		t.Fatalf("got %q, want %q", got, "a\nb\n")
	}
}

func TestIndentPrefixesEachLineOnce(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportAll)
	task := NewTask(l, "outer")
	l.Info("line one\nline two\n")
	task.Close()

	want := "Entering: outer\n" +
		"  line one\n" +
		"  line two\n" +
		"Leaving: outer\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNestedTasksDoubleIndent(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportAll)
	outer := NewTask(l, "outer")
	inner := NewTask(l, "inner")
	l.Info("deep\n")
	inner.Close()
	outer.Close()

	want := "Entering: outer\n" +
		"  Entering: inner\n" +
		"    deep\n" +
		"  Leaving: inner\n" +
		"Leaving: outer\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorLinesAreNeverIndented(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportAll)
	task := NewTask(l, "outer")
	l.Error("flush left\n")
	task.Close()

	want := "Entering: outer\n" +
		"flush left\n" +
		"Leaving: outer\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteWithoutTrailingNewlineDoesNotReindent(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, ReportAll)
	l.Info("partial ")
	l.Info("line\n")
	if got := buf.String(); got != "partial line\n" {
		t.Fatalf("got %q, want %q", got, "partial line\n")
	}
}

func TestSetAndGetVerbosity(t *testing.T) {
	l := New(&strings.Builder{}, ReportNone)
	if l.Verbosity() != ReportNone {
		t.Fatalf("expected ReportNone initially")
	}
	l.SetVerbosity(ReportAll)
	if l.Verbosity() != ReportAll {
		t.Fatalf("expected ReportAll after SetVerbosity")
	}
}
