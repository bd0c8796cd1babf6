package setflag

import (
	"fmt"
	"strings"
)

// New creates a flag.Value that accepts a comma-separated subset of options.
// If nothing is set, List returns defaults.
func New(options []string, defaults ...string) *SetFlag {
	sf := &SetFlag{
		options:  options,
		values:   make(map[string]struct{}, len(options)),
		defaults: defaults,
	}
	return sf
}

type SetFlag struct {
	options  []string
	values   map[string]struct{}
	defaults []string
}

// List returns the set values in the order the options were given.
func (sf *SetFlag) List() []string {
	if len(sf.values) == 0 {
		return sf.defaults
	}
	var values []string
	for _, opt := range sf.options {
		if _, ok := sf.values[opt]; ok {
			values = append(values, opt)
		}
	}
	return values
}

func (sf *SetFlag) String() string {
	if sf == nil {
		return ""
	}
	return strings.Join(sf.List(), ",")
}

func (sf *SetFlag) Set(value string) error {
	values := strings.Split(value, ",")
	for _, value := range values {
		value = strings.TrimSpace(value)
		if !sf.isOption(value) {
			return fmt.Errorf("unsupported value '%s' (options are %s)", value, strings.Join(sf.options, ", "))
		}
		sf.values[value] = struct{}{}
	}
	return nil
}

func (sf *SetFlag) isOption(value string) bool {
	for _, opt := range sf.options {
		if opt == value {
			return true
		}
	}
	return false
}
