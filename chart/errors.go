package chart

import "fmt"

// ValidationError reports settings that cannot be turned into a chart.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid chart settings: " + e.Reason
}

// CheckKeyInModel fails when any of keys is absent from model.
func CheckKeyInModel(model Record, keys ...string) error {
	for _, key := range keys {
		if _, ok := model[key]; !ok {
			return &ValidationError{Reason: fmt.Sprintf("key %q not found in model", key)}
		}
	}
	return nil
}
