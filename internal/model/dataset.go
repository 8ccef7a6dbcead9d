package model

import "fmt"

// Dataset is the full set of employees and tasks loaded at startup
type Dataset struct {
	Employees []Employee `json:"employees" yaml:"employees"`
	Tasks     []Task     `json:"tasks" yaml:"tasks"`
}

// Validate rejects records that would break the label lookups or identity.
// Task to employee references are deliberately not checked.
func (d Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Employees))
	for _, e := range d.Employees {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate employee id %q", e.ID)
		}
		seen[e.ID] = true
	}

	seen = make(map[string]bool, len(d.Tasks))
	for _, t := range d.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
