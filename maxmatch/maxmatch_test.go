package maxmatch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/maxmatch"
	"github.com/katalvlaran/bimatch/view"
)

// example1 is the seven-by-seven sample graph; its maximum matchings have size 6.
var example1 = [][2]string{
	{"L0", "R0"}, {"L0", "R1"}, {"L0", "R2"},
	{"L1", "R0"},
	{"L2", "R2"},
	{"L3", "R2"},
	{"L4", "R3"}, {"L4", "R5"},
	{"L5", "R2"}, {"L5", "R4"},
	{"L6", "R1"}, {"L6", "R4"}, {"L6", "R6"},
}

func compile(t *testing.T, pairs [][2]string) *view.Base {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	b, err := view.Compile(g)
	require.NoError(t, err)

	return b
}

func complete(n int) [][2]string {
	var out [][2]string
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, [2]string{fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", j)})
		}
	}

	return out
}

// ProviderSuite runs every provider over the same fixtures.
type ProviderSuite struct {
	suite.Suite
	provider maxmatch.Provider
}

func (s *ProviderSuite) run(pairs [][2]string, want int) {
	b := compile(s.T(), pairs)
	m, err := s.provider.MaxMatching(context.Background(), b)
	s.Require().NoError(err)
	s.Require().Len(m, b.LeftCount())
	s.Equal(want, m.Size())
	s.NoError(maxmatch.Verify(b, m))
}

func (s *ProviderSuite) TestEmpty()    { s.run(nil, 0) }
func (s *ProviderSuite) TestExample1() { s.run(example1, 6) }
func (s *ProviderSuite) TestComplete() { s.run(complete(5), 5) }

// TestPath checks an odd path where one Left vertex must stay free.
func (s *ProviderSuite) TestPath() {
	s.run([][2]string{{"L0", "R0"}, {"L1", "R0"}, {"L1", "R1"}, {"L2", "R1"}}, 2)
}

// TestGreedyTrap needs an augmenting path through a greedy first choice.
func (s *ProviderSuite) TestGreedyTrap() {
	s.run([][2]string{{"L0", "R0"}, {"L0", "R1"}, {"L1", "R0"}}, 2)
}

func (s *ProviderSuite) TestNilBase() {
	_, err := s.provider.MaxMatching(context.Background(), nil)
	s.ErrorIs(err, maxmatch.ErrNilBase)
}

func (s *ProviderSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.provider.MaxMatching(ctx, compile(s.T(), complete(3)))
	s.ErrorIs(err, context.Canceled)
}

func TestHopcroftKarp(t *testing.T) {
	suite.Run(t, &ProviderSuite{provider: maxmatch.ProviderFunc(maxmatch.HopcroftKarp)})
}

func TestDinic(t *testing.T) {
	suite.Run(t, &ProviderSuite{provider: maxmatch.ProviderFunc(maxmatch.Dinic)})
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"hopcroft-karp", "hk", "dinic"} {
		p, ok := maxmatch.Named(name)
		assert.True(t, ok, name)
		assert.NotNil(t, p)
	}
	_, ok := maxmatch.Named("greedy")
	assert.False(t, ok)
	assert.NotNil(t, maxmatch.Default)
}

func TestValidate(t *testing.T) {
	b := compile(t, [][2]string{{"L0", "R0"}, {"L0", "R1"}, {"L1", "R0"}})

	m, err := maxmatch.Validate(b, core.NewMatching(
		core.Pair{Left: "L0", Right: "R1"},
		core.Pair{Left: "L1", Right: "R0"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())

	// Endpoints may be given in either order.
	_, err = maxmatch.Validate(b, core.Matching{{Left: "R1", Right: "L0"}, {Left: "L1", Right: "R0"}})
	assert.NoError(t, err)

	cases := []struct {
		name string
		m    core.Matching
	}{
		{"unknown vertex", core.Matching{{Left: "L9", Right: "R0"}}},
		{"non-edge", core.Matching{{Left: "L1", Right: "R1"}}},
		{"same side", core.Matching{{Left: "L0", Right: "L1"}}},
		{"double cover", core.Matching{{Left: "L0", Right: "R0"}, {Left: "L1", Right: "R0"}}},
		{"not maximum", core.Matching{{Left: "L0", Right: "R0"}}},
		{"empty", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maxmatch.Validate(b, tc.m)
			assert.ErrorIs(t, err, maxmatch.ErrInconsistentMatching)
		})
	}

	_, err = maxmatch.Validate(nil, nil)
	assert.ErrorIs(t, err, maxmatch.ErrNilBase)
}

func TestVerify_Shape(t *testing.T) {
	b := compile(t, [][2]string{{"L0", "R0"}, {"L1", "R0"}})
	// L0=0 L1=1 R0=2
	assert.ErrorIs(t, maxmatch.Verify(b, view.Mates{2}), maxmatch.ErrInconsistentMatching)
	assert.ErrorIs(t, maxmatch.Verify(b, view.Mates{2, 2}), maxmatch.ErrInconsistentMatching)
	assert.ErrorIs(t, maxmatch.Verify(b, view.Mates{1, view.Unmatched}), maxmatch.ErrInconsistentMatching)
	assert.NoError(t, maxmatch.Verify(b, view.Mates{view.Unmatched, 2}))
	assert.ErrorIs(t, maxmatch.Verify(nil, nil), maxmatch.ErrNilBase)
}
