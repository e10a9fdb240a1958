package setup

import (
	"io"
	"os"
)

type Options struct {
	// LogWriter receives the database layer's logs
	LogWriter io.Writer
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		LogWriter: os.Stderr,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithLogWriter(w io.Writer) OptionFunc {
	return func(opts *Options) {
		opts.LogWriter = w
	}
}
