package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  posting_id  ", Value: "  42  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "posting_id" || fields[0].String != "42" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestWithPostingFields(t *testing.T) {
	fields := WithPostingFields("42", "Graduate Analyst", zap.Int("score", 11))

	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldPostingID || fields[0].String != "42" {
		t.Fatalf("unexpected id field: %+v", fields[0])
	}
	if fields[1].Key != FieldPostingTitle || fields[1].String != "Graduate Analyst" {
		t.Fatalf("unexpected title field: %+v", fields[1])
	}
	if fields[2].Key != "score" {
		t.Fatalf("unexpected extra field: %+v", fields[2])
	}

	// Blank identification values are dropped, extras survive.
	fields = WithPostingFields("", "  ", zap.Int("score", 1))
	if len(fields) != 1 || fields[0].Key != "score" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}
