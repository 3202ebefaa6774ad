/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testCatalog = Catalog{
	Speaker: RoleCases{
		Label: "Give a compliment",
		Cases: []BehaviorCase{
			{Positive: "Praise a concrete action.", Negative: "Comment only on looks."},
			{Positive: "Point out progress.", Negative: "Compare with others."},
			{Positive: "Tie it to a value.", Negative: "Be vague."},
		},
	},
	Guesser: RoleCases{
		Label: "Guess the compliment",
		Cases: []BehaviorCase{
			{Positive: "Listen and justify.", Negative: "Answer on impulse."},
			{Positive: "Ask for detail.", Negative: "Get defensive."},
		},
	},
}

func newTestEngine(t *testing.T, roster []string, opts ...Option) *Engine {
	t.Helper()

	e, err := New(roster, testCatalog, opts...)
	require.NoError(t, err)

	return e
}

func rosterOf(n int) []string {
	names := []string{
		"Ana", "Beto", "Carla", "Diego", "Eva", "Fabio", "Gina", "Hugo",
		"Ines", "Jorge", "Karla", "Luis", "Marta", "Nico", "Olga", "Pablo",
		"Quique", "Rosa", "Sergio", "Tania", "Ulises", "Vera",
	}
	return names[:n]
}
