package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on. It keeps the
// application core decoupled from the concrete logging backends.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a new logger with the fields pre-attached, used to
	// carry request and component context.
	WithFields(fields Fields) LoggerPort
}
