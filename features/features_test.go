package features

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	chem "github.com/rmera/mlbonds"
	v3 "github.com/rmera/mlbonds/v3"
)

func molecule(Te *testing.T, symbols []string, coords ...float64) *chem.Molecule {
	Te.Helper()
	c, err := v3.NewMatrix(coords)
	require.NoError(Te, err)
	mol, err := chem.NewMolecule(symbols, c, 0)
	require.NoError(Te, err)
	return mol
}

func water(Te *testing.T) *chem.Molecule {
	return molecule(Te, []string{"O", "H", "H"},
		0, 0, 0.1173,
		0, 0.7572, -0.4692,
		0, -0.7572, -0.4692)
}

func co(Te *testing.T) *chem.Molecule {
	return molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 1.128)
}

func TestCanonicalize(Te *testing.T) {
	mol := molecule(Te, []string{"H", "C", "C", "Xx"}, 0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0)
	for _, c := range []struct {
		i, j int
		want Pair
	}{
		{0, 1, Pair{1, 0}},
		{1, 0, Pair{1, 0}},
		{1, 2, Pair{1, 2}},
		{2, 1, Pair{1, 2}},
		{3, 0, Pair{0, 3}}, //unknown elements have Z=0
	} {
		p := Canonicalize(mol, c.i, c.j)
		assert.Equal(Te, c.want, p, "pair %d %d", c.i, c.j)
		assert.Equal(Te, p, Canonicalize(mol, p.A, p.B), "canonicalization is idempotent")
	}
	id1, id2 := Pair{1, 0}.IDs()
	assert.Equal(Te, []int{2, 1}, []int{id1, id2})
	assert.Equal(Te, "2-1", Pair{1, 0}.String())
}

func TestNeighbors(Te *testing.T) {
	//A line of 6 atoms 1 A apart, so distances are integers and ties are common.
	mol := molecule(Te, []string{"C", "C", "C", "C", "C", "C"},
		0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0, 5, 0, 0)
	D := mol.Distances()
	assert.Equal(Te, []int{2, 1, 3, 0, 4, 5}, SortedNeighbors(D, 2))

	pair := Pair{2, 3}
	assert.Equal(Te, []int{1, 0, 4}, Neighbors(D, pair, 2, 3))
	assert.Equal(Te, []int{4, 1, 5}, Neighbors(D, pair, 3, 3))
	assert.Equal(Te, []int{1, 0, 4, 5}, Neighbors(D, pair, 2, 10))
	assert.Empty(Te, Neighbors(D, pair, 2, 0))

	f := NeighborFeatures(mol, D, pair, 2, 2)
	assert.InDeltaSlice(Te, []float64{6, 1, 2, 6, 2, 3}, f, 1e-12)
}

func TestBuildWater(Te *testing.T) {
	T, err := Build(water(Te), nil)
	require.NoError(Te, err)
	require.Equal(Te, 3, T.Len())
	assert.Equal(Te, 24, T.Width())
	assert.Equal(Te, T.Schema().Columns, T.Header())
	assert.Equal(Te, []Pair{{0, 1}, {0, 2}, {1, 2}}, T.Pairs())

	row := T.Row(0)
	want := []float64{1, 2, 0, 8, 1, 0.957776,
		1, 0.957776, 1.5144, 0, 0, 0, 0, 0, 0,
		1, 1.5144, 0.957776, 0, 0, 0, 0, 0, 0}
	assert.InDeltaSlice(Te, want, row, 1e-5)

	ids, err := T.Column(ColID1)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 1, 2}, ids)
	_, err = T.Column("nope")
	assert.True(Te, errors.Is(err, ErrNoColumn))

	D := T.Dense()
	r, c := D.Dims()
	assert.Equal(Te, 3, r)
	assert.Equal(Te, 24, c)
	//The matrix is a copy.
	D.Set(0, 0, 100)
	assert.Equal(Te, 1.0, T.Row(0)[0])
}

func TestBuildProperties(Te *testing.T) {
	//methanol
	mol := molecule(Te, []string{"C", "O", "H", "H", "H", "H"},
		-0.0469, 0.6630, 0.0000,
		-0.0469, -0.7570, 0.0000,
		-1.0864, 0.9753, 0.0000,
		0.4376, 1.0797, 0.8911,
		0.4376, 1.0797, -0.8911,
		0.8723, -1.0858, 0.0000)
	opts := DefaultOptions()
	T, err := Build(mol, opts)
	require.NoError(Te, err)
	D := mol.Distances()
	expected := 0
	for i := 0; i < mol.Len(); i++ {
		for j := i + 1; j < mol.Len(); j++ {
			if D.At(i, j) <= opts.Cutoff() {
				expected++
			}
		}
	}
	assert.Equal(Te, expected, T.Len())
	for i := 0; i < T.Len(); i++ {
		row := T.Row(i)
		require.Len(Te, row, T.Width())
		p := T.Pair(i)
		assert.GreaterOrEqual(Te, mol.AtomicNumber(p.A), mol.AtomicNumber(p.B))
		assert.Equal(Te, float64(mol.AtomicNumber(p.A)), row[3])
		assert.LessOrEqual(Te, row[5], opts.Cutoff())
		for _, q := range []int{p.A, p.B} {
			neighs := Neighbors(D, p, q, opts.Neighbors())
			assert.LessOrEqual(Te, len(neighs), opts.Neighbors())
			assert.NotContains(Te, neighs, p.A)
			assert.NotContains(Te, neighs, p.B)
		}
	}
	//Building twice gives the same table.
	T2, err := Build(mol, opts)
	require.NoError(Te, err)
	assert.Equal(Te, T.Dense().RawMatrix().Data, T2.Dense().RawMatrix().Data)
}

func TestBuildFarApart(Te *testing.T) {
	mol := molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 5)
	T, err := Build(mol, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, T.Len())
	assert.Equal(Te, 24, T.Width())
	assert.Nil(Te, T.Dense())
	assert.Nil(Te, Describe(T))
	err = WriteNPY(&bytes.Buffer{}, T)
	assert.True(Te, errors.Is(err, ErrEmpty))
	var buf bytes.Buffer
	require.NoError(Te, WriteCSV(&buf, T))
	assert.Equal(Te, 1, strings.Count(buf.String(), "\n"))
}

func TestBuildCutoffInclusive(Te *testing.T) {
	T, err := Build(molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 3.0), nil)
	require.NoError(Te, err)
	require.Equal(Te, 1, T.Len())
	assert.Equal(Te, 3.0, T.Row(0)[5])

	T, err = Build(molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 3.0001), nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, T.Len())

	opts := DefaultOptions()
	opts.Cutoff(2.0)
	T, err = Build(molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 2.0), opts)
	require.NoError(Te, err)
	assert.Equal(Te, 1, T.Len())
}

func TestBuildUnpadded(Te *testing.T) {
	opts := DefaultOptions()
	opts.Pad(false)
	T, err := Build(co(Te), opts)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"id1", "id2", "q", "ata", "atb", "distab"}, T.Header())
	assert.InDeltaSlice(Te, []float64{2, 1, 0, 8, 6, 1.128}, T.Row(0), 1e-12)
	assert.False(Te, T.Schema().Padded)
	assert.Error(Te, T.Schema().Check(NewSchema(3, 3.0)))

	T, err = Build(water(Te), opts)
	require.NoError(Te, err)
	assert.Equal(Te, 12, T.Width())
	assert.Equal(Te, "distb1a", T.Header()[11])

	//Without pairs, the header is the one the rows would have had.
	T, err = Build(molecule(Te, []string{"C", "O"}, 0, 0, 0, 0, 0, 5), opts)
	require.NoError(Te, err)
	assert.Equal(Te, 0, T.Len())
	assert.Equal(Te, 6, T.Width())
	assert.Equal(Te, T.Header(), T.Schema().Columns)
	T, err = Build(molecule(Te, []string{"C", "O", "N", "S"},
		0, 0, 0,
		0, 0, 5,
		0, 5, 0,
		5, 0, 0), opts)
	require.NoError(Te, err)
	assert.Equal(Te, 0, T.Len())
	assert.Equal(Te, 18, T.Width())
	assert.Equal(Te, "distb2a", T.Header()[17])

	//Padded CO
	T, err = Build(co(Te), nil)
	require.NoError(Te, err)
	assert.Equal(Te, 24, T.Width())
	assert.Equal(Te, 0.0, T.Row(0)[23])
}

func TestBuildWrongDistances(Te *testing.T) {
	_, err := BuildWithDistances(co(Te), mat.NewSymDense(3, nil), nil)
	assert.True(Te, errors.Is(err, ErrShape))
}

func TestWithColumn(Te *testing.T) {
	T, err := Build(water(Te), nil)
	require.NoError(Te, err)
	P, err := T.WithColumn(ColPredict, []float64{1, 1, 0})
	require.NoError(Te, err)
	assert.Equal(Te, 25, P.Width())
	assert.Equal(Te, 24, T.Width())
	assert.Equal(Te, T.Row(2), P.Row(2)[:24])
	preds, err := P.Column(ColPredict)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 1, 0}, preds)
	assert.Equal(Te, 24, P.Schema().Width())

	_, err = T.WithColumn(ColPredict, []float64{1})
	assert.True(Te, errors.Is(err, ErrShape))
	_, err = P.WithColumn(ColPredict, []float64{1, 1, 0})
	assert.Error(Te, err)
}

func TestExports(Te *testing.T) {
	T, err := Build(co(Te), nil)
	require.NoError(Te, err)

	var buf bytes.Buffer
	require.NoError(Te, WriteCSV(&buf, T))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(Te, lines, 2)
	assert.True(Te, strings.HasPrefix(lines[0], "id1,id2,q,ata,atb,distab,ata1,dista1,dista1b,"))
	assert.True(Te, strings.HasPrefix(lines[1], "2,1,0,8,6,1.128,0,"))

	buf.Reset()
	require.NoError(Te, WriteNPY(&buf, T))
	var m mat.Dense
	require.NoError(Te, npyio.Read(&buf, &m))
	r, c := m.Dims()
	assert.Equal(Te, []int{1, 24}, []int{r, c})
	assert.Equal(Te, 1.128, m.At(0, 5))

	buf.Reset()
	require.NoError(Te, WriteLibSVM(&buf, T, []float64{3}))
	assert.True(Te, strings.HasPrefix(buf.String(), "3 0:2 1:1 2:0 3:8 4:6 5:1.128 6:0 "))
	assert.True(Te, strings.HasSuffix(buf.String(), " 23:0\n"))
	assert.True(Te, errors.Is(WriteLibSVM(&buf, T, nil), ErrShape))
}

type bondMap map[[2]int]int

func (B bondMap) Order(id1, id2 int) int {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return B[[2]int{id1, id2}]
}

func TestLabelAndDescribe(Te *testing.T) {
	T, err := Build(water(Te), nil)
	require.NoError(Te, err)
	labels := Label(T, bondMap{{1, 2}: 1, {1, 3}: 1})
	assert.Equal(Te, []float64{1, 1, 0}, labels)

	stats := Describe(T)
	require.Len(Te, stats, T.Width())
	assert.Equal(Te, ColID1, stats[0].Name)
	assert.InDelta(Te, 4.0/3.0, stats[0].Mean, 1e-12)
	assert.Equal(Te, 1.0, stats[0].Min)
	assert.Equal(Te, 2.0, stats[0].Max)
	assert.Equal(Te, 0.0, stats[2].Std)

	T, err = Build(co(Te), nil)
	require.NoError(Te, err)
	stats = Describe(T)
	assert.Equal(Te, 1.128, stats[5].Mean)
	assert.Equal(Te, 0.0, stats[5].Std)
}

func TestSchema(Te *testing.T) {
	S := NewSchema(2, 3.0)
	assert.Equal(Te, 18, S.Width())
	assert.Equal(Te, 6, S.Index("ata1"))
	assert.Equal(Te, -1, S.Index("ata3"))
	var buf bytes.Buffer
	require.NoError(Te, WriteSchema(&buf, S))
	S2, err := ReadSchema(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, S, S2)
	assert.NoError(Te, S.Check(S2))

	assert.True(Te, errors.Is(S.Check(NewSchema(3, 3.0)), ErrSchema))
	assert.True(Te, errors.Is(S.Check(NewSchema(2, 2.5)), ErrSchema))
	assert.True(Te, errors.Is(S.Check(nil), ErrSchema))
	_, err = ReadSchema(strings.NewReader("neighbors: 3\n"))
	assert.True(Te, errors.Is(err, ErrSchema))

	name := Te.TempDir() + "/schema.yaml"
	require.NoError(Te, SaveSchema(name, S))
	S3, err := LoadSchema(name)
	require.NoError(Te, err)
	assert.Equal(Te, S, S3)
}

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.Equal(Te, 3.0, O.Cutoff(-1))
	assert.Equal(Te, 3.0, O.Cutoff(2.5))
	assert.Equal(Te, 2.5, O.Cutoff())
	assert.Equal(Te, 3, O.Neighbors(-2))
	assert.Equal(Te, 3, O.Neighbors(0))
	assert.Equal(Te, 0, O.Neighbors())
	assert.True(Te, O.Pad(false))
	assert.False(Te, O.Pad())
}

func TestConcat(Te *testing.T) {
	W, err := Build(water(Te), nil)
	require.NoError(Te, err)
	C, err := Build(co(Te), nil)
	require.NoError(Te, err)
	T, err := Concat(W, C)
	require.NoError(Te, err)
	assert.Equal(Te, 4, T.Len())
	assert.Equal(Te, W.Row(1), T.Row(1))
	assert.Equal(Te, C.Row(0), T.Row(3))
	assert.Equal(Te, Pair{1, 0}, T.Pair(3))

	opts := DefaultOptions()
	opts.Pad(false)
	U, err := Build(co(Te), opts)
	require.NoError(Te, err)
	_, err = Concat(W, U)
	assert.True(Te, errors.Is(err, ErrShape))
	_, err = Concat()
	assert.True(Te, errors.Is(err, ErrEmpty))
}
