package config

// RuleOptions is the structured options payload for a single rule.
// The shape is private to each rule; these accessors only coerce the
// JSON-like values that YAML and JSON decoding produce.
type RuleOptions map[string]any

// Int returns an integer option, or the default if absent or mistyped.
func (o RuleOptions) Int(key string, defaultValue int) int {
	if o == nil {
		return defaultValue
	}
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// String returns a string option, or the default if absent or mistyped.
func (o RuleOptions) String(key string, defaultValue string) string {
	if o == nil {
		return defaultValue
	}
	if s, ok := o[key].(string); ok {
		return s
	}
	return defaultValue
}

// Bool returns a boolean option, or the default if absent or mistyped.
func (o RuleOptions) Bool(key string, defaultValue bool) bool {
	if o == nil {
		return defaultValue
	}
	if b, ok := o[key].(bool); ok {
		return b
	}
	return defaultValue
}

// StringSlice returns a string slice option, or the default.
// Handles []any elements produced by YAML/JSON decoding.
func (o RuleOptions) StringSlice(key string, defaultValue []string) []string {
	if o == nil {
		return defaultValue
	}
	switch v := o[key].(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
