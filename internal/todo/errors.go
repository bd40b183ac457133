package todo

import (
	"fmt"
	"strings"
)

type unknownFilterError struct {
	name string
}

func (e unknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q (expected one of: %s)", e.name, strings.Join(FilterNames(), ", "))
}

func errUnknownFilter(name string) error {
	return unknownFilterError{name: name}
}
