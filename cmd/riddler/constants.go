package main

// Flag defaults for the generate command; a .riddler/config.yaml file may
// override them.
const (
	DefaultPeople    = 5
	DefaultMinLength = 2
)

// Valid output formats.
var validFormats = []string{"json", "text", "dot"}

// contains reports whether the slice holds the value.
func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
