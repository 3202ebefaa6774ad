/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package pairing splits a fixed roster into compliment-game groups from a
// shared seed.
//
// Every choice the engine makes is drawn from a stream derived from the
// seed, so any device holding the same roster, catalog and seed computes the
// same table without talking to anyone else.
package pairing

import (
	"fmt"
	"slices"
	"strings"
)

// Assignment is one participant's view of a round.
type Assignment struct {
	Name     string       `json:"name"`
	Partners []string     `json:"partners"`
	Role     Role         `json:"role"`
	Label    string       `json:"label"`
	Case     BehaviorCase `json:"case"`
	Group    []string     `json:"group"`
}

// Engine holds an immutable roster and case catalog. It is safe for
// concurrent use.
type Engine struct {
	roster  []string
	catalog Catalog

	names  map[string]string // normalized -> canonical
	keys   []string          // sorted normalized names
	strict bool
}

type Option func(*Engine)

// WithStrictNames disables the substring fallback in Resolve.
func WithStrictNames() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

func New(roster []string, catalog Catalog, opts ...Option) (*Engine, error) {
	if err := catalog.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		roster:  slices.Clone(roster),
		catalog: catalog.clone(),
		names:   make(map[string]string, len(roster)),
	}

	for _, name := range e.roster {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank name", ErrInvalidRoster)
		}

		n := Normalize(name)
		if prev, ok := e.names[n]; ok {
			return nil, fmt.Errorf("%w: %q and %q normalize to the same name", ErrInvalidRoster, prev, name)
		}
		e.names[n] = name
		e.keys = append(e.keys, n)
	}
	slices.Sort(e.keys)

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Roster returns a copy of the canonical names in their configured order.
func (e *Engine) Roster() []string {
	return slices.Clone(e.roster)
}

// Groups returns the seeded partition of the roster.
func (e *Engine) Groups(seed string) [][]string {
	return Partition(Shuffle(e.roster, seed))
}

// Assignments computes the full table for seed, keyed by canonical name.
func (e *Engine) Assignments(seed string) map[string]Assignment {
	out := make(map[string]Assignment, len(e.roster))

	for _, group := range e.Groups(seed) {
		speaker := e.pickSpeaker(group, seed)

		for i, name := range group {
			role := Guesser
			if i == speaker {
				role = Speaker
			}

			rc := e.catalog.For(role)
			partners := make([]string, 0, len(group)-1)
			for k, other := range group {
				if k != i {
					partners = append(partners, other)
				}
			}

			out[name] = Assignment{
				Name:     name,
				Partners: partners,
				Role:     role,
				Label:    rc.Label,
				Case:     rc.Cases[Hash(DeriveSeed(seed, name))%uint32(len(rc.Cases))],
				Group:    slices.Clone(group),
			}
		}
	}

	return out
}

// pickSpeaker returns the index of the group's speaker. A lone member is
// speaker or guesser depending on the seed, so it may return -1.
func (e *Engine) pickSpeaker(group []string, seed string) int {
	switch len(group) {
	case 1:
		if Hash(DeriveSeed(seed, group[0], "solo"))%2 == 0 {
			return 0
		}
		return -1
	case 2:
		if NewGenerator(DeriveSeed(seed, group...)).Float64() < 0.5 {
			return 0
		}
		return 1
	default:
		parts := append(slices.Clone(group), "trio")
		return int(Hash(DeriveSeed(seed, parts...)) % uint32(len(group)))
	}
}

// Assign returns the assignment for one canonical name.
func (e *Engine) Assign(name, seed string) (Assignment, error) {
	a, ok := e.Assignments(seed)[name]
	if !ok {
		return Assignment{}, fmt.Errorf("%w: %q", ErrNotAssigned, name)
	}
	return a, nil
}

// Reveal is the result of looking up a participant by free text.
type Reveal struct {
	Assignment

	Seed         string `json:"seed"`
	Synchronized bool   `json:"synchronized"`
	Warning      string `json:"warning,omitempty"`
}

// Reveal resolves text to a canonical name and computes its assignment. A
// blank seed falls back to FallbackSeed; the result is then flagged as not
// synchronized with other devices.
func (e *Engine) Reveal(text, seed string) (Reveal, error) {
	name, err := e.Resolve(text)
	if err != nil {
		return Reveal{}, err
	}

	r := Reveal{
		Seed:         strings.TrimSpace(seed),
		Synchronized: true,
	}
	if r.Seed == "" {
		r.Seed = FallbackSeed
		r.Synchronized = false
		r.Warning = "no seed given: this assignment is local to this device and will not match anyone else's"
	}

	r.Assignment, err = e.Assign(name, r.Seed)
	if err != nil {
		return Reveal{}, err
	}

	return r, nil
}
