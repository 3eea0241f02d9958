package models

import "strings"

// Code represents a RACI responsibility code.
type Code string

const (
	// CodeResponsible marks the party doing the work.
	CodeResponsible Code = "R"
	// CodeAccountable marks the party answerable for the outcome.
	CodeAccountable Code = "A"
	// CodeResponsibleAccountable marks a party holding both roles.
	CodeResponsibleAccountable Code = "R/A"
	// CodeConsulted marks a party whose input is sought.
	CodeConsulted Code = "C"
	// CodeInformed marks a party kept up to date.
	CodeInformed Code = "I"
)

// Codes returns all valid RACI codes.
func Codes() []Code {
	return []Code{
		CodeResponsible,
		CodeAccountable,
		CodeResponsibleAccountable,
		CodeConsulted,
		CodeInformed,
	}
}

// Fill returns the background color (RGB hex) used for the code.
func (c Code) Fill() string {
	switch c {
	case CodeResponsible:
		return "C6EFCE" // green
	case CodeAccountable:
		return "BDD7EE" // blue
	case CodeResponsibleAccountable:
		return "92D050" // bold green
	case CodeConsulted:
		return "FFE699" // yellow
	case CodeInformed:
		return "F2F2F2" // light gray
	}
	return ""
}

// ParseCode reports whether s, after trimming whitespace, is a valid
// RACI code.
func ParseCode(s string) (Code, bool) {
	switch c := Code(strings.TrimSpace(s)); c {
	case CodeResponsible, CodeAccountable, CodeResponsibleAccountable,
		CodeConsulted, CodeInformed:
		return c, true
	}
	return "", false
}
