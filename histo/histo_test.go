package histo

import (
	"encoding/json"
	"testing"

	"github.com/rmera/chemimport/chemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, rawdata[0], "raw data is not modified")
	//8, 44 and 32 are out of range
	assert.Equal(Te, 26, D.Total())
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, D.View())

	D.AddData(0.5, 7.9, 8, -1)
	assert.Equal(Te, 28, D.Total())
	assert.Equal(Te, []float64{3, 6, 2, 7, 10}, D.View())

	D.Normalize()
	assert.InDelta(Te, 1.0, D.Sum(), 1e-12)
	D.AddData(1)
	assert.True(Te, D.Normalized())
	D.UnNormalize()
	assert.InDelta(Te, 7.0, D.View()[1], 1e-9)

	j, err := json.Marshal(D)
	require.NoError(Te, err)
	assert.Contains(Te, string(j), `"total":29`)

	_, err = NewData([]float64{1}, nil)
	assert.Error(Te, err)
	_, err = NewData([]float64{2, 1}, nil)
	assert.Error(Te, err)
}

func TestDividers(Te *testing.T) {
	d := Dividers(4, 0, 2)
	require.Len(Te, d, 5)
	assert.Equal(Te, []float64{0, 0.5, 1, 1.5}, d[:4])
	assert.Greater(Te, d[4], 2.0)

	D, err := NewData(d, []float64{0, 2})
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1, 0, 0, 1}, D.View())
}

func TestCubeValues(Te *testing.T) {
	V := &chemjson.VolumeCube{
		StepsNumber: []int{1, 2, 2},
		CubeData:    [][][]float64{{{0.0, 1.0}, {1.0, 4.0}}},
	}
	D, err := CubeValues(V, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{3, 1}, D.View())

	_, err = CubeValues(&chemjson.VolumeCube{}, 2)
	assert.Error(Te, err)
}

func TestPairDistances(Te *testing.T) {
	C := chemjson.NewAtomicCoordinates(3)
	C.Append(8, 0, 0, 0)
	C.Append(1, 0, 0, 1)
	C.Append(1, 0, 0, 3)
	D, err := PairDistances(C, 3, 0)
	require.NoError(Te, err)
	//distances 1, 2 and 3. 3 is the largest, so it goes in the last bin.
	assert.Equal(Te, []float64{0, 1, 2}, D.View())

	D, err = PairDistances(C, 2, 2.5)
	require.NoError(Te, err)
	assert.Equal(Te, 2, D.Total())

	one := chemjson.NewAtomicCoordinates(1)
	one.Append(1, 0, 0, 0)
	_, err = PairDistances(one, 2, 0)
	assert.Error(Te, err)
}
