// export_test.go exports private functions for white-box testing.
package logger

// ErrorLines returns the formatted text Error would log for err.
func ErrorLines(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}

// NewPrettyHandlerWithOutput exposes the handler constructor taking a prepared termenv output.
var NewPrettyHandlerWithOutput = newPrettyHandler
