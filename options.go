package grib2dec

import "context"

// Logger is the minimal logging surface the decoder calls into when
// it skips or rejects a message. *glog* satisfies this via its
// package-level Infof/Warningf functions bound into a small adapter;
// nil disables logging.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
}

// DecoderOption configures a Decoder at construction time. A streaming
// single-message Decoder (spec §5) has no worker pool; it only has a
// logger and a cancellation context to configure.
type DecoderOption func(*Decoder)

// WithLogger installs a Logger the Decoder uses to report skipped and
// rejected messages as it resyncs past them. The default is glogLogger,
// which calls through to glog's package-level logger.
func WithLogger(logger Logger) DecoderOption {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithContext attaches a context the Decoder checks between messages:
// if ctx is done, the next NextMessage call returns StatusEnd rather
// than starting another message. There is no mid-message cancellation
// (spec §5: no suspension points).
func WithContext(ctx context.Context) DecoderOption {
	return func(d *Decoder) {
		d.ctx = ctx
	}
}
