package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldPostingID is the structured log field key for the posting identifier.
	FieldPostingID = "posting_id"
	// FieldPostingTitle is the structured log field key for the posting title.
	FieldPostingTitle = "posting_title"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithPostingFields prepends the standard posting identification fields to
// the supplied extras. Empty values are ignored to keep log entries compact.
func WithPostingFields(id, title string, extra ...zap.Field) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldPostingID, Value: id},
		StringField{Key: FieldPostingTitle, Value: title},
	)
	return append(fields, extra...)
}
