package main

import (
	"fmt"

	"datepicker/internal/utils"
)

// errOutOfRange reports a value outside the allowed dates; boundsMessage is
// the picker's own warning for it.
func errOutOfRange(value, boundsMessage string) error {
	suggestion := "Run 'datepicker config show' to see the allowed dates"
	if boundsMessage != "" {
		suggestion = boundsMessage + ". " + suggestion
	}
	return utils.WrapWithSuggestion(fmt.Errorf("value %q is out of range", value), suggestion)
}

func errInvalidYear(year string) error {
	return utils.WrapWithSuggestion(
		fmt.Errorf("invalid year: %s", year),
		"Pass a four-digit year, e.g. 'datepicker quarters 2024'",
	)
}
