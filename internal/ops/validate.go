package ops

import (
	"github.com/teemow/calagent/internal/calendar"
)

// validateArgs type-checks args against the schema and fills declared
// defaults for absent fields. The returned map contains only known fields;
// anything the schema doesn't declare (for example the transport-level
// account selector) is ignored.
func validateArgs(s *Schema, args map[string]interface{}) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, validationErrorf("%s is required", f.Name)
			}
			if f.Default != nil {
				fields[f.Name] = f.Default
			}
			continue
		}

		v, err := coerceField(f, raw)
		if err != nil {
			return nil, err
		}
		fields[f.Name] = v
	}
	return fields, nil
}

func coerceField(f FieldSpec, raw interface{}) (interface{}, error) {
	switch f.Kind {
	case KindString, KindTimeExpr:
		s, ok := raw.(string)
		if !ok {
			return nil, validationErrorf("%s must be a string", f.Name)
		}
		if f.Required && s == "" {
			return nil, validationErrorf("%s is required", f.Name)
		}
		if s != "" && len(f.Enum) > 0 && !stringInList(s, f.Enum) {
			return nil, validationErrorf("%s must be one of %v", f.Name, f.Enum)
		}
		return s, nil

	case KindInt:
		var n int64
		switch v := raw.(type) {
		case float64:
			n = int64(v)
		case int:
			n = int64(v)
		case int64:
			n = v
		default:
			return nil, validationErrorf("%s must be a number", f.Name)
		}
		// A non-positive count would disable the limit; fall back to the
		// declared default instead.
		if n <= 0 && f.Default != nil {
			return f.Default, nil
		}
		return n, nil

	case KindStringList:
		return coerceStringList(f.Name, raw)

	case KindReminders:
		return coerceReminders(raw)
	}
	return raw, nil
}

func coerceStringList(name string, raw interface{}) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, validationErrorf("%s must be a list of strings", name)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, validationErrorf("%s must be a list of strings", name)
}

// coerceReminders converts the raw reminders object into settings the
// backend understands. Method is restricted to the two kinds the remote
// accepts.
func coerceReminders(raw interface{}) (*calendar.ReminderSettings, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, validationErrorf("reminders must be an object")
	}

	settings := &calendar.ReminderSettings{}
	if v, present := obj["useDefault"]; present {
		b, ok := v.(bool)
		if !ok {
			return nil, validationErrorf("reminders.useDefault must be a boolean")
		}
		settings.UseDefault = b
	}

	overrides, present := obj["overrides"]
	if !present || overrides == nil {
		return settings, nil
	}
	list, ok := overrides.([]interface{})
	if !ok {
		return nil, validationErrorf("reminders.overrides must be a list")
	}
	for _, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, validationErrorf("reminder overrides must be objects with method and minutes")
		}
		method, _ := entry["method"].(string)
		if method != "email" && method != "popup" {
			return nil, validationErrorf("reminder method must be 'email' or 'popup'")
		}
		minutes, ok := entry["minutes"].(float64)
		if !ok {
			if n, isInt := entry["minutes"].(int); isInt {
				minutes, ok = float64(n), true
			}
		}
		if !ok || minutes < 0 {
			return nil, validationErrorf("reminder minutes must be a non-negative number")
		}
		settings.Overrides = append(settings.Overrides, calendar.ReminderOverride{
			Method:  method,
			Minutes: int64(minutes),
		})
	}
	return settings, nil
}

func stringInList(s string, list []string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
