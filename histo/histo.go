//Package histo builds histograms of the values carried by imported trees:
//the grid values of volume cubes and the interatomic distances of
//coordinate sets.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rmera/chemimport/chemjson"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//A histogram. dividers has one element more than histo.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case an empty histogram is created. Values
//outside the range of dividers are omitted. rawdata is not modified.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo: at least 2 dividers needed, %d given", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo: dividers must be sorted")
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		raw := make([]float64, len(rawdata))
		copy(raw, rawdata)
		d.rehisto(raw)
	}
	return d, nil
}

//Dividers returns bins+1 evenly spaced dividers from min to max.
//The last divider is nudged up so max itself falls in the last bin.
func Dividers(bins int, min, max float64) []float64 {
	if bins < 1 {
		bins = 1
	}
	if max <= min {
		max = min + 1
	}
	d := floats.Span(make([]float64, bins+1), min, max)
	d[bins] = math.Nextafter(max, math.Inf(1))
	return d
}

//rehisto fills the histogram with raw, which is sorted in the process.
func (D *Data) rehisto(raw []float64) {
	sort.Float64s(raw)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(raw, D.dividers[len(D.dividers)-1])
	raw = raw[:maxi]
	mini := sort.SearchFloat64s(raw, D.dividers[0])
	raw = raw[mini:]
	D.total = len(raw)
	D.histo = stat.Histogram(nil, D.dividers, raw, nil)
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		//Values outside the dividers are just omitted.
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		j := sort.SearchFloat64s(D.dividers, v)
		if j == len(D.dividers) || D.dividers[j] != v {
			j--
		}
		D.histo[j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Total returns the number of data points in the histogram.
func (D *Data) Total() int {
	return D.total
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the histogram itself, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//String prints a -hopefully- pretty string representation of
//the histogram, one bin per line.
func (D *Data) String() string {
	lines := make([]string, 0, len(D.histo)+1)
	lines = append(lines, fmt.Sprintf("Normalized: %v, TotalData: %d", D.normalized, D.total))
	for i, v := range D.histo {
		lines = append(lines, fmt.Sprintf("%12.4g - %-12.4g %9.3f", D.dividers[i], D.dividers[i+1], v))
	}
	return strings.Join(lines, "\n")
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

//CubeValues returns a histogram, with bins bins, of all the grid
//values of V.
func CubeValues(V *chemjson.VolumeCube, bins int) (*Data, error) {
	min, max, err := V.Range()
	if err != nil {
		return nil, err
	}
	return NewData(Dividers(bins, min, max), V.Flat())
}

//PairDistances returns a histogram, with bins bins, of the distances
//between each pair of atoms in C. Only distances up to cutoff are counted.
//A cutoff <= 0 means no cutoff.
func PairDistances(C *chemjson.AtomicCoordinates, bins int, cutoff float64) (*Data, error) {
	if err := C.Check(); err != nil {
		return nil, err
	}
	n := C.Len()
	if n < 2 {
		return nil, fmt.Errorf("histo: at least 2 atoms needed for distances, %d given", n)
	}
	dists := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx, dy, dz := C.X[i]-C.X[j], C.Y[i]-C.Y[j], C.Z[i]-C.Z[j]
			dists = append(dists, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
	}
	max := floats.Max(dists)
	if cutoff > 0 {
		max = cutoff
	}
	return NewData(Dividers(bins, 0, max), dists)
}
