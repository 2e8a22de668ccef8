package rabbitmq_adapter

import (
	"fmt"

	"idx-service/internal/core/port"
	"idx-service/pkg/rabbitmq"
)

// LoggerBridge adapts port.LoggerPort to the key/value logger the rabbitmq
// package expects.
type LoggerBridge struct {
	logger port.LoggerPort
}

func NewLoggerBridge(logger port.LoggerPort) rabbitmq.Logger {
	if logger == nil {
		return rabbitmq.NewNoopLogger()
	}
	return &LoggerBridge{logger: logger}
}

func kvToFields(keysAndValues []interface{}) port.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(port.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (b *LoggerBridge) Debug(msg string, keysAndValues ...interface{}) {
	b.logger.Debug(msg, kvToFields(keysAndValues))
}

func (b *LoggerBridge) Info(msg string, keysAndValues ...interface{}) {
	b.logger.Info(msg, kvToFields(keysAndValues))
}

func (b *LoggerBridge) Warn(msg string, keysAndValues ...interface{}) {
	b.logger.Warn(msg, kvToFields(keysAndValues))
}

func (b *LoggerBridge) Error(err error, msg string, keysAndValues ...interface{}) {
	b.logger.Error(msg, err, kvToFields(keysAndValues))
}
