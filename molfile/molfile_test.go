package molfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
	v3 "github.com/rmera/mlbonds/v3"
)

const coBlock = `co
ML generated sdf

  2  1  0  0  0  0  0  0  0  0  1 V2000
    0.0000    0.0000    0.0000 C  0  0  0  0  0
    0.0000    0.0000    1.1280 O  0  0  0  0  0
  1  2  1 0  0  0  0  0
`

func co(Te *testing.T) *chem.Molecule {
	Te.Helper()
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 1.128})
	require.NoError(Te, err)
	mol, err := chem.NewMolecule([]string{"C", "O"}, coords, 0)
	require.NoError(Te, err)
	return mol.Named("co", "")
}

func predicted(Te *testing.T, mol *chem.Molecule, preds ...float64) *features.Table {
	Te.Helper()
	T, err := features.Build(mol, nil)
	require.NoError(Te, err)
	T, err = T.WithColumn(features.ColPredict, preds)
	require.NoError(Te, err)
	return T
}

func TestMolBlock(Te *testing.T) {
	mol := co(Te)
	bonds, err := BondsFromTable(predicted(Te, mol, 1), features.ColPredict)
	require.NoError(Te, err)
	assert.Equal(Te, []Bond{{From: 1, To: 2, Order: 1}}, bonds)
	block, err := MolBlock(mol, bonds)
	require.NoError(Te, err)
	assert.Equal(Te, coBlock, block)

	var buf bytes.Buffer
	require.NoError(Te, WriteSDF(&buf, mol, bonds))
	assert.Equal(Te, coBlock+"M  END\n$$$$\n", buf.String())
}

func TestBondsFromTable(Te *testing.T) {
	mol := co(Te)
	for _, c := range []struct {
		pred  float64
		order int
	}{{0.3, 1}, {1.4, 1}, {2.6, 3}, {4, 4}} {
		bonds, err := BondsFromTable(predicted(Te, mol, c.pred), features.ColPredict)
		require.NoError(Te, err)
		require.Len(Te, bonds, 1)
		assert.Equal(Te, c.order, bonds[0].Order, "prediction %g", c.pred)
	}
	for _, pred := range []float64{0, -1} {
		bonds, err := BondsFromTable(predicted(Te, mol, pred), features.ColPredict)
		require.NoError(Te, err)
		assert.Empty(Te, bonds)
		block, err := MolBlock(mol, bonds)
		require.NoError(Te, err)
		assert.Contains(Te, block, "\n  2  0  0  0")
		assert.Len(Te, strings.Split(strings.TrimSpace(block), "\n"), 6)
	}
	assert.Equal(Te, 0, PredictedOrder(0))
	assert.Equal(Te, 0, PredictedOrder(-0.7))
	assert.Equal(Te, 1, PredictedOrder(0.1))
	assert.Equal(Te, 2, PredictedOrder(1.5))
	T, err := features.Build(mol, nil)
	require.NoError(Te, err)
	_, err = BondsFromTable(T, features.ColPredict)
	assert.True(Te, errors.Is(err, ErrNoPredictions))
}

func TestWriteBadBond(Te *testing.T) {
	mol := co(Te)
	for _, b := range []Bond{{1, 3, 1}, {0, 2, 1}} {
		var buf bytes.Buffer
		err := Write(&buf, mol, []Bond{b})
		assert.True(Te, errors.Is(err, ErrAtomIndex))
		assert.Zero(Te, buf.Len())
	}
}

func TestRead(Te *testing.T) {
	R, err := Read(strings.NewReader(coBlock + "M  END\n$$$$\n"))
	require.NoError(Te, err)
	assert.Equal(Te, "co", R.Name)
	assert.Equal(Te, Comment, R.Comment)
	assert.Equal(Te, []string{"C", "O"}, R.Symbols)
	assert.InDeltaSlice(Te, []float64{0, 0, 0, 0, 0, 1.128}, R.Coords, 1e-9)
	assert.Equal(Te, []Bond{{1, 2, 1}}, R.Bonds)
	assert.Equal(Te, 1, R.Order(2, 1))
	assert.Equal(Te, 0, R.Order(1, 1))

	mol, err := R.Molecule()
	require.NoError(Te, err)
	assert.Equal(Te, 2, mol.Len())
	assert.Equal(Te, "co", mol.Name())

	//Labels for training come straight from the record.
	T, err := features.Build(mol, nil)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1}, features.Label(T, R))
}

func TestReadErrors(Te *testing.T) {
	for name, in := range map[string]string{
		"no counts":  "co\n\n\n",
		"truncated":  strings.Join(strings.Split(coBlock, "\n")[:5], "\n"),
		"bad coords": strings.Replace(coBlock, "1.1280", "1.1x80", 1),
		"bad bond":   strings.Replace(coBlock, "  1  2  1 0", "  1  7  1 0", 1),
	} {
		_, err := Read(strings.NewReader(in))
		assert.Error(Te, err, name)
		assert.True(Te, errors.Is(err, ErrFormat) || errors.Is(err, ErrAtomIndex), name)
	}
}
