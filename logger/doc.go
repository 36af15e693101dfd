// Package logger is the public API. Most programs only need this
// package and a handler from handler/sysloghandler.
//
// A Logger is immutable after construction. The fields, the level
// and the handler are set once via the Builder and never modified,
// so Logger is safe for concurrent use without locking on the read path.
//
// The package-level functions Info, Error, Debugf, etc. delegate to a
// default Logger that writes to the local syslog daemon through its
// Unix socket (InfoLevel, text layout). Replace it with SetDefault:
//
//	h := sysloghandler.New(cfg)
//	logger.SetDefault(logger.NewBuilder().WithHandler(h).Build())
//
// Errors are logged with ErrorTrace, which sends the message first and
// then one packet per line of the error's stack:
//
//	log.ErrorTrace("query failed", err, logger.String("table", "users"))
//
// Child loggers with extra fields are created via With:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
package logger
