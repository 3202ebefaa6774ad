/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import "fmt"

// Role is the part a participant plays within a group.
type Role string

const (
	// Speaker gives the compliment.
	Speaker Role = "speaker"
	// Guesser works out what the compliment focused on.
	Guesser Role = "guesser"
)

func (r Role) Valid() bool {
	switch r {
	case Speaker, Guesser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// BehaviorCase pairs an example of the desired conduct for a role with an
// example of what to avoid.
type BehaviorCase struct {
	Positive string `json:"positive" mapstructure:"positive"`
	Negative string `json:"negative" mapstructure:"negative"`
}

// RoleCases holds the display label and the ordered cases for one role.
type RoleCases struct {
	Label string         `json:"label" mapstructure:"label"`
	Cases []BehaviorCase `json:"cases" mapstructure:"cases"`
}

// Catalog is the static case table, keyed by role.
type Catalog struct {
	Speaker RoleCases `json:"speaker" mapstructure:"speaker"`
	Guesser RoleCases `json:"guesser" mapstructure:"guesser"`
}

func (c Catalog) For(r Role) RoleCases {
	if r == Speaker {
		return c.Speaker
	}
	return c.Guesser
}

func (c Catalog) validate() error {
	for _, r := range []Role{Speaker, Guesser} {
		rc := c.For(r)
		if len(rc.Cases) == 0 {
			return fmt.Errorf("%w: no cases for role %q", ErrInvalidCatalog, r)
		}
		if rc.Label == "" {
			return fmt.Errorf("%w: no label for role %q", ErrInvalidCatalog, r)
		}
	}
	return nil
}

func (c Catalog) clone() Catalog {
	return Catalog{
		Speaker: RoleCases{Label: c.Speaker.Label, Cases: append([]BehaviorCase(nil), c.Speaker.Cases...)},
		Guesser: RoleCases{Label: c.Guesser.Label, Cases: append([]BehaviorCase(nil), c.Guesser.Cases...)},
	}
}
