package normalize

import (
	"github.com/rs/zerolog"
)

// options configures a normalizer.
type options struct {
	lessonTypes map[string]string
	logger      *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		lessonTypes: map[string]string{},
	}
}

// Option is a function that configures a Normalizer.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns normalizer options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithLessonTypes sets the lesson-type lookup table mapping a lesson type
// code to its period bucket ("Lecture", "Tutorial", or another bucket that
// period aggregation ignores).
func WithLessonTypes(lessonTypes map[string]string) Option {
	return func(o *options) error {
		if lessonTypes != nil {
			o.lessonTypes = lessonTypes
		}
		return nil
	}
}

// WithLogger sets the logger. When unset, the logger is taken from the
// context passed to Normalize.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
