package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/chemimport/histo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(Te *testing.T) {
	D, err := histo.NewData(histo.Dividers(5, 0, 1), []float64{0.1, 0.2, 0.25, 0.5, 0.9, 1})
	require.NoError(Te, err)
	dir := Te.TempDir()
	for _, name := range []string{"values.png", "values.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, Histogram(D, "Cube values", "Value", path))
		info, err := os.Stat(path)
		require.NoError(Te, err)
		assert.NotZero(Te, info.Size())
	}
	D.Normalize()
	p, err := HistogramPlot(D, "Cube values", "Value")
	require.NoError(Te, err)
	assert.Equal(Te, "Frequency", p.Y.Label.Text)

	assert.Error(Te, Histogram(D, "Cube values", "Value", filepath.Join(dir, "values.nope")))
}
