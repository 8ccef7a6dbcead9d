package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Employee is a person tasks can be assigned to
type Employee struct {
	ID          string `json:"id" yaml:"id"`
	FirstName   string `json:"first_name" yaml:"first_name"`
	LastName    string `json:"last_name" yaml:"last_name"`
	Position    string `json:"position" yaml:"position"`
	Color       string `json:"color" yaml:"color"`
	Email       string `json:"email" yaml:"email"`
	IsAvailable bool   `json:"is_available" yaml:"is_available"`
}

// FullName returns "First Last"
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Initials returns the upper-cased first letter of each name
func (e Employee) Initials() string {
	var b strings.Builder
	for _, s := range []string{e.FirstName, e.LastName} {
		if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Validate checks the fields every surface relies on
func (e Employee) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("employee has no id")
	}
	return nil
}

// CountAvailability returns the number of available and busy employees
func CountAvailability(employees []Employee) (available, busy int) {
	for _, e := range employees {
		if e.IsAvailable {
			available++
		} else {
			busy++
		}
	}
	return available, busy
}
