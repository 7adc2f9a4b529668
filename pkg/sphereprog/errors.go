package sphereprog

import "fmt"

// ConfigError reports invalid generator input. Element is the index of
// the offending triangle or vertex when one exists, -1 otherwise.
type ConfigError struct {
	Code    string
	Message string
	Element int
}

func (e *ConfigError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("%s: %s (element %d)", e.Code, e.Message, e.Element)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func configErrorf(code string, element int, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Element: element,
	}
}
