package errors

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"codeberg.org/bookshelf/server/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// upper bound, in runes, on raw text passed through to privileged callers
const MaxPrivilegedLength = 200

// Classifier turns raw failures into messages that are safe to show. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	table     *MappingTable
	sensitive []SensitivePattern
	maxLength int

	// receives unmatched public errors outside production, nil otherwise
	sink func(RawError)
}

type Option func(*Classifier)

// replaces the privileged-mode leak detectors
func WithSensitivePatterns(patterns []SensitivePattern) Option {
	return func(c *Classifier) {
		c.sensitive = append([]SensitivePattern(nil), patterns...)
	}
}

// sets the privileged pass-through limit
func WithMaxLength(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// records unmatched public errors so they can be added to the table
func WithDiagnostics(sink func(RawError)) Option {
	return func(c *Classifier) {
		c.sink = sink
	}
}

// creates a classifier over table
func NewClassifier(table *MappingTable, opts ...Option) *Classifier {
	c := &Classifier{
		table:     table,
		sensitive: DefaultSensitivePatterns(),
		maxLength: MaxPrivilegedLength,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// returns a safe message for raw at the given trust level. raw may be nil, a
// string, an error, a fmt.Stringer, or anything with a Message() method.
func (c *Classifier) Classify(raw any, level TrustLevel, fallback string) string {
	return c.ClassifyResult(raw, level, fallback).Message
}

// like Classify but also reports which category produced the message
func (c *Classifier) ClassifyResult(raw any, level TrustLevel, fallback string) Result {
	rawErr := Extract(raw)
	if rawErr.Message == "" {
		return Result{Message: fallback, Category: CategoryEmpty}
	}

	msg := rawErr.Message

	if level == Privileged {
		if _, ok := matchSensitive(c.sensitive, msg); ok {
			return Result{Message: MsgInternalDatabase, Category: CategoryInternal}
		}
	}

	if res, ok := c.table.lookupExact(msg); ok {
		return res
	}

	if res, ok := c.table.lookupSubstring(msg); ok {
		return res
	}

	if level == Privileged {
		return Result{Message: truncate(msg, c.maxLength), Category: CategoryUnclassified}
	}

	if c.sink != nil {
		c.sink(rawErr)
	}

	return Result{Message: fallback, Category: CategoryUnclassified}
}

// pulls the message and code out of a failure value. never panics; a
// value whose Error or String method panics yields an empty RawError.
func Extract(raw any) (out RawError) {
	defer func() {
		if recover() != nil {
			out = RawError{}
		}
	}()

	switch v := raw.(type) {
	case nil:
		return RawError{}
	case string:
		return RawError{Message: v}
	case RawError:
		return v
	case *RawError:
		if v == nil {
			return RawError{}
		}
		return *v
	case error:
		var pgErr *pgconn.PgError
		if errors.As(v, &pgErr) && pgErr != nil {
			return RawError{Message: pgErr.Message, Code: pgErr.Code}
		}
		return RawError{Message: v.Error()}
	case messager:
		return RawError{Message: v.Message()}
	case fmt.Stringer:
		return RawError{Message: v.String()}
	}

	return RawError{}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}

var defaultClassifier atomic.Pointer[Classifier]

func init() {
	defaultClassifier.Store(newDefaultClassifier(os.Getenv("ENVIRONMENT") == "production"))
}

func newDefaultClassifier(production bool) *Classifier {
	var opts []Option
	if !production {
		opts = append(opts, WithDiagnostics(LogUnhandled))
	}

	return NewClassifier(MustMappingTable(DefaultRules()), opts...)
}

// returns the classifier built from the default table, used by requests
// that did not pass through Middleware
func Default() *Classifier {
	return defaultClassifier.Load()
}

// diagnostic sink writing unmatched errors to the debug log
func LogUnhandled(raw RawError) {
	logger.Debug("unhandled error", "error", raw.Message, "code", raw.Code)
}
