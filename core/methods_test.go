package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/temperament/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddNoteAndHasNote() {
	require := require.New(s.T())
	require.False(s.g.HasNote("A"), "empty graph should not have A")

	require.NoError(s.g.AddNote("A"))
	require.True(s.g.HasNote("A"))

	// Idempotence
	require.NoError(s.g.AddNote("A"))
	require.Equal(1, s.g.NoteCount())

	require.ErrorIs(s.g.AddNote(""), core.ErrEmptyNoteName)
	require.False(s.g.HasNote(""))
}

func (s *GraphSuite) TestAddDefinitionAutoAddsNotes() {
	require := require.New(s.T())
	eid, err := s.g.AddDefinition("C", "A", -900)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasNote("A") && s.g.HasNote("C"))
	require.True(s.g.HasEdge("C", "A"))
	require.False(s.g.HasEdge("A", "C"), "definitions are directed")
	require.Equal([]string{"A", "C"}, s.g.Notes())
	require.Equal([]string{"C"}, s.g.Defined())

	e, ok := s.g.Definition("C")
	require.True(ok)
	require.Equal(-900.0, e.Cents)
	_, ok = s.g.Definition("A")
	require.False(ok)
}

func (s *GraphSuite) TestAddDefinitionErrors() {
	require := require.New(s.T())
	_, err := s.g.AddDefinition("", "A", 0)
	require.ErrorIs(err, core.ErrEmptyNoteName)
	_, err = s.g.AddDefinition("A", "", 0)
	require.ErrorIs(err, core.ErrEmptyNoteName)
	_, err = s.g.AddDefinition("A", "B", math.NaN())
	require.ErrorIs(err, core.ErrNonFiniteOffset)
	_, err = s.g.AddDefinition("A", "B", math.Inf(-1))
	require.ErrorIs(err, core.ErrNonFiniteOffset)

	_, err = s.g.AddDefinition("A", "B", 100)
	require.NoError(err)
	_, err = s.g.AddDefinition("A", "C", 100)
	require.ErrorIs(err, core.ErrDuplicateDefinition)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestStepsBothDirections() {
	require := require.New(s.T())
	_, _ = s.g.AddDefinition("C", "A", -900)
	_, _ = s.g.AddDefinition("A", "G", 200)
	_, _ = s.g.AddDefinition("B", "A", 200)

	steps, err := s.g.Steps("A")
	require.NoError(err)
	require.Len(steps, 3)

	// Forward step first: A's own definition against G.
	require.True(steps[0].Forward)
	require.Equal("G", steps[0].Peer)
	require.Equal(-200.0, steps[0].Delta)

	// Backward steps in insertion order.
	require.Equal("C", steps[1].Peer)
	require.Equal(-900.0, steps[1].Delta)
	require.False(steps[1].Forward)
	require.Equal("B", steps[2].Peer)
	require.Equal(200.0, steps[2].Delta)

	peers, err := s.g.Peers("A")
	require.NoError(err)
	require.Equal([]string{"B", "C", "G"}, peers)

	_, err = s.g.Steps("missing")
	require.ErrorIs(err, core.ErrNoteNotFound)
	_, err = s.g.Steps("")
	require.ErrorIs(err, core.ErrEmptyNoteName)
}

func (s *GraphSuite) TestSelfDefinition() {
	require := require.New(s.T())
	_, err := s.g.AddDefinition("A", "A", 1200)
	require.NoError(err)

	steps, err := s.g.Steps("A")
	require.NoError(err)
	require.Len(steps, 2, "self-definition is seen forward and backward")
	require.Equal(-1200.0, steps[0].Delta)
	require.Equal(1200.0, steps[1].Delta)

	deg, err := s.g.Degree("A")
	require.NoError(err)
	require.Equal(1, deg)

	st := s.g.Stats()
	require.Equal(1, st.SelfDefinitions)
	require.Equal(0, st.BaseOnlyCount)
}

func (s *GraphSuite) TestRemoveDefinition() {
	require := require.New(s.T())
	_, _ = s.g.AddDefinition("C", "A", -900)
	require.NoError(s.g.RemoveDefinition("C"))
	require.False(s.g.HasEdge("C", "A"))
	require.ErrorIs(s.g.RemoveDefinition("C"), core.ErrEdgeNotFound)

	steps, err := s.g.Steps("A")
	require.NoError(err)
	require.Empty(steps)

	// Notes survive edge removal; a new definition is accepted.
	require.True(s.g.HasNote("C"))
	_, err = s.g.AddDefinition("C", "A", 300)
	require.NoError(err)
}

func (s *GraphSuite) TestGetEdgeAndEdgesOrder() {
	require := require.New(s.T())
	for i, name := range []string{"N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9", "N10", "N11"} {
		_, err := s.g.AddDefinition(name, "A", float64(i*100))
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 11)
	// Insertion order, not lexicographic ID order ("e10" < "e2").
	require.Equal("e2", edges[1].ID)
	require.Equal("e10", edges[9].ID)

	e, err := s.g.GetEdge("e10")
	require.NoError(err)
	require.Equal("N10", e.From)
	_, err = s.g.GetEdge("e99")
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestFromDefinitionsIsDeterministic() {
	require := require.New(s.T())
	defs := map[string]core.Definition{
		"C": {Base: "A", Cents: -900},
		"B": {Base: "A", Cents: 200},
		"D": {Base: "C", Cents: 200},
	}
	g1, err := core.FromDefinitions(defs)
	require.NoError(err)
	g2, err := core.FromDefinitions(defs)
	require.NoError(err)

	ids := func(g *core.Graph) []string {
		var out []string
		for _, e := range g.Edges() {
			out = append(out, e.ID+":"+e.From)
		}
		return out
	}
	require.Equal([]string{"e1:B", "e2:C", "e3:D"}, ids(g1))
	require.Equal(ids(g1), ids(g2))

	_, err = core.FromDefinitions(map[string]core.Definition{"X": {Base: "", Cents: 0}})
	require.ErrorIs(err, core.ErrEmptyNoteName)
	require.ErrorContains(err, `"X"`)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	_, _ = s.g.AddDefinition("C", "A", -900)
	clone := s.g.Clone()

	_, err := clone.AddDefinition("D", "C", 200)
	require.NoError(err)
	require.False(s.g.HasNote("D"), "mutating the clone must not touch the source")

	e, ok := clone.Definition("D")
	require.True(ok)
	require.Equal("e2", e.ID, "clone continues the edge ID sequence")

	s.g.Clear()
	require.Zero(s.g.NoteCount())
	require.True(clone.HasEdge("C", "A"))
}

func (s *GraphSuite) TestAdjacencyList() {
	require := require.New(s.T())
	_, _ = s.g.AddDefinition("C", "A", -900)
	_, _ = s.g.AddDefinition("E", "C", 400)
	require.Equal(map[string][]string{
		"A": {"C"},
		"C": {"A", "E"},
		"E": {"C"},
	}, s.g.AdjacencyList())
}
