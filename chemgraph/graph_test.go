package chemgraph

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/molfile"
	v3 "github.com/rmera/mlbonds/v3"
)

func molecule(Te *testing.T, symbols ...string) *chem.Molecule {
	Te.Helper()
	coords := v3.Zeros(len(symbols))
	for i := range symbols {
		coords.Set(i, 0, float64(i))
	}
	mol, err := chem.NewMolecule(symbols, coords, 0)
	require.NoError(Te, err)
	return mol
}

func TestTopology(Te *testing.T) {
	//CO2 and a lone water molecule
	mol := molecule(Te, "O", "C", "O", "O", "H", "H")
	bonds := []molfile.Bond{{From: 1, To: 2, Order: 2}, {From: 2, To: 3, Order: 2}, {From: 4, To: 5, Order: 1}, {From: 4, To: 6, Order: 1}}
	T, err := TopologyFromBonds(mol, bonds)
	require.NoError(Te, err)
	assert.Equal(Te, 6, T.Nodes().Len())
	assert.Equal(Te, 2, T.Degree(1))
	assert.Equal(Te, 4, T.Valence(1))
	assert.Equal(Te, 1, T.Valence(4))
	assert.Equal(Te, "C", T.Atom(1).Symbol)
	assert.True(Te, T.HasEdgeBetween(1, 0))
	assert.False(Te, T.HasEdgeBetween(0, 2))
	assert.Equal(Te, [][]int{{0, 1, 2}, {3, 4, 5}}, T.Fragments())

	//Atoms without bonds are fragments of their own.
	T, err = TopologyFromBonds(mol, nil)
	require.NoError(Te, err)
	assert.Len(Te, T.Fragments(), 6)
	assert.Equal(Te, 0, T.Degree(3))
}

func TestTopologyErrors(Te *testing.T) {
	mol := molecule(Te, "C", "O")
	for _, b := range []molfile.Bond{{From: 1, To: 3, Order: 1}, {From: 0, To: 1, Order: 1}, {From: 2, To: 2, Order: 1}} {
		_, err := TopologyFromBonds(mol, []molfile.Bond{b})
		assert.True(Te, errors.Is(err, molfile.ErrAtomIndex), "%v", b)
	}
}
