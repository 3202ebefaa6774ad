/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New([]string{"Ana", "  "}, testCatalog)
	assert.ErrorIs(t, err, ErrInvalidRoster)

	_, err = New([]string{"María", "MARIA"}, testCatalog)
	assert.ErrorIs(t, err, ErrInvalidRoster)

	bad := testCatalog
	bad.Guesser = RoleCases{Label: "x"}
	_, err = New([]string{"Ana"}, bad)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	bad = testCatalog
	bad.Speaker.Label = ""
	_, err = New([]string{"Ana"}, bad)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNewCopiesInputs(t *testing.T) {
	roster := []string{"Ana", "Beto"}
	e := newTestEngine(t, roster)

	roster[0] = "Zed"
	assert.Equal(t, []string{"Ana", "Beto"}, e.Roster())

	r := e.Roster()
	r[1] = "Zed"
	assert.Equal(t, []string{"Ana", "Beto"}, e.Roster())
}

func TestAssignmentsDeterministic(t *testing.T) {
	e := newTestEngine(t, rosterOf(21))

	assert.Equal(t, e.Assignments("seed-123"), e.Assignments("seed-123"))
}

func TestAssignmentsCompleteness(t *testing.T) {
	for n := 1; n <= 22; n++ {
		roster := rosterOf(n)
		e := newTestEngine(t, roster)

		for _, seed := range []string{"seed-123", "seed-999", "", "ñandú"} {
			table := e.Assignments(seed)
			require.Len(t, table, n)

			for _, name := range roster {
				a, ok := table[name]
				require.True(t, ok, "%s missing for seed %q", name, seed)
				assert.Equal(t, name, a.Name)
				assert.Contains(t, a.Group, name)
				assert.NotContains(t, a.Partners, name)

				members := append(slices.Clone(a.Partners), name)
				assert.ElementsMatch(t, a.Group, members)

				for _, p := range a.Partners {
					assert.ElementsMatch(t, a.Group, table[p].Group)
				}
			}
		}
	}
}

func TestRoleBalance(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 20, 21} {
		e := newTestEngine(t, rosterOf(n))

		for _, seed := range []string{"a", "b", "c", "seed-123", "seed-999"} {
			for _, group := range e.Groups(seed) {
				table := e.Assignments(seed)

				speakers := 0
				for _, name := range group {
					if table[name].Role == Speaker {
						speakers++
					}
				}

				switch len(group) {
				case 1:
					assert.Empty(t, table[group[0]].Partners)
					assert.True(t, table[group[0]].Role.Valid())
				default:
					assert.Equal(t, 1, speakers, "n=%d seed=%q group=%v", n, seed, group)
				}
			}
		}
	}
}

func TestCasesComeFromRoleCatalog(t *testing.T) {
	e := newTestEngine(t, rosterOf(21))

	for _, a := range e.Assignments("catalog") {
		rc := testCatalog.For(a.Role)
		assert.Contains(t, rc.Cases, a.Case)
		assert.Equal(t, rc.Label, a.Label)
	}
}

func TestExampleScenario(t *testing.T) {
	e := newTestEngine(t, []string{"Ana", "Beto", "Carla", "Diego", "Eva"})

	groups := e.Groups("seed-123")
	require.Len(t, groups, 2)

	sizes := []int{len(groups[0]), len(groups[1])}
	slices.Sort(sizes)
	assert.Equal(t, []int{2, 3}, sizes)

	first := e.Assignments("seed-123")
	second := e.Assignments("seed-123")
	assert.Equal(t, first, second)

	for name, a := range first {
		want := slices.DeleteFunc(slices.Clone(a.Group), func(s string) bool { return s == name })
		assert.Equal(t, want, a.Partners)
	}
}

func TestSeedSensitivity(t *testing.T) {
	e := newTestEngine(t, rosterOf(21))

	pairs := [][2]string{
		{"seed-123", "seed-999"},
		{"monday", "tuesday"},
		{"a", "b"},
		{"seed-1", "seed-2"},
	}

	differs := false
	for _, p := range pairs {
		if !assert.ObjectsAreEqual(e.Groups(p[0]), e.Groups(p[1])) {
			differs = true
		}
	}

	assert.True(t, differs)
}

func TestPairSpeakerUsesGroupStream(t *testing.T) {
	e := newTestEngine(t, []string{"Ana", "Beto"})

	group := e.Groups("pair")[0]
	firstSpeaks := NewGenerator(DeriveSeed("pair", group...)).Float64() < 0.5

	table := e.Assignments("pair")
	assert.Equal(t, firstSpeaks, table[group[0]].Role == Speaker)
	assert.Equal(t, !firstSpeaks, table[group[1]].Role == Speaker)
}

func TestSoloRole(t *testing.T) {
	e := newTestEngine(t, []string{"Ana"})

	for _, seed := range []string{"a", "b", "c", "d"} {
		a := e.Assignments(seed)["Ana"]

		want := Guesser
		if Hash(DeriveSeed(seed, "Ana", "solo"))%2 == 0 {
			want = Speaker
		}
		assert.Equal(t, want, a.Role)
		assert.Equal(t, []string{"Ana"}, a.Group)
		assert.Empty(t, a.Partners)
	}
}

func TestEmptyRoster(t *testing.T) {
	e := newTestEngine(t, nil)

	assert.Empty(t, e.Groups("x"))
	assert.Empty(t, e.Assignments("x"))
}

func TestAssign(t *testing.T) {
	e := newTestEngine(t, rosterOf(5))

	a, err := e.Assign("Carla", "x")
	require.NoError(t, err)
	assert.Equal(t, "Carla", a.Name)

	_, err = e.Assign("Nobody", "x")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestConcurrentAssignments(t *testing.T) {
	e := newTestEngine(t, rosterOf(21))
	want := e.Assignments("shared")

	var wg sync.WaitGroup
	results := make([]map[string]Assignment, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.Assignments("shared")
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestReveal(t *testing.T) {
	e := newTestEngine(t, rosterOf(5))

	r, err := e.Reveal("  carla ", " seed-123 ")
	require.NoError(t, err)
	assert.Equal(t, "Carla", r.Name)
	assert.Equal(t, "seed-123", r.Seed)
	assert.True(t, r.Synchronized)
	assert.Empty(t, r.Warning)

	want, err := e.Assign("Carla", "seed-123")
	require.NoError(t, err)
	assert.Equal(t, want, r.Assignment)
}

func TestRevealFallbackSeed(t *testing.T) {
	e := newTestEngine(t, rosterOf(5))

	r, err := e.Reveal("Beto", "   ")
	require.NoError(t, err)
	assert.Equal(t, FallbackSeed, r.Seed)
	assert.False(t, r.Synchronized)
	assert.NotEmpty(t, r.Warning)

	want, err := e.Assign("Beto", FallbackSeed)
	require.NoError(t, err)
	assert.Equal(t, want, r.Assignment)
}

func TestRevealNameErrors(t *testing.T) {
	e := newTestEngine(t, rosterOf(5))

	_, err := e.Reveal("", "x")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = e.Reveal("Zacarias", "x")
	assert.ErrorIs(t, err, ErrNameNotRecognized)
}
