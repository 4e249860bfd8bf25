package funclist

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// VarMap selects the registry positions of one function's variables, in
// the function's own declared order. It is a tagged variant:
//
//   - a contiguous half-open range [start, stop) when the located
//     positions form a strictly increasing run of consecutive integers,
//   - an explicit ordered position list otherwise,
//   - empty when the function declares no variables of the namespace.
//
// Range maps apply to vectors and matrices as views (no copy); list maps
// gather copies. Either form, applied to the registry-ordered value
// array, reproduces exactly the function's local variable order.
type VarMap struct {
	start, stop int
	list        []int
}

// newVarMap locates each name's first occurrence in the registry and
// collapses the positions to a range when they are consecutive. Every
// name is guaranteed present: the registry is built from the same lists.
func newVarMap(registry, names []string) VarMap {
	if len(names) == 0 {
		return VarMap{}
	}

	pos := make([]int, len(names))
	for i, n := range names {
		pos[i] = slices.Index(registry, n)
	}
	for i := 1; i < len(pos); i++ {
		if pos[i] != pos[i-1]+1 {
			return VarMap{list: pos}
		}
	}

	return VarMap{start: pos[0], stop: pos[len(pos)-1] + 1}
}

// IsEmpty reports whether the map selects no positions.
func (m VarMap) IsEmpty() bool { return m.list == nil && m.stop == m.start }

// IsRange reports whether the map is the compact contiguous-range form.
func (m VarMap) IsRange() bool { return m.list == nil && m.stop > m.start }

// Len returns the number of selected positions.
func (m VarMap) Len() int {
	if m.list != nil {
		return len(m.list)
	}

	return m.stop - m.start
}

// Positions materializes the selected registry positions in local order.
// The returned slice is freshly allocated.
func (m VarMap) Positions() []int {
	if m.list != nil {
		return append([]int(nil), m.list...)
	}

	pos := make([]int, 0, m.stop-m.start)
	for p := m.start; p < m.stop; p++ {
		pos = append(pos, p)
	}

	return pos
}

// rank returns the local index of registry position pos, or -1 when the
// map does not contain it.
func (m VarMap) rank(pos int) int {
	if m.list != nil {
		return slices.Index(m.list, pos)
	}
	if pos >= m.start && pos < m.stop {
		return pos - m.start
	}

	return -1
}

// pickFloat applies the map to a registry-ordered float vector. Range
// maps return a view into src; list maps return a gathered copy.
func (m VarMap) pickFloat(src []float64) []float64 {
	if m.IsEmpty() {
		return nil
	}
	if m.list == nil {
		return src[m.start:m.stop]
	}

	out := make([]float64, len(m.list))
	for i, p := range m.list {
		out[i] = src[p]
	}

	return out
}

// pickInt applies the map to a registry-ordered integer vector.
func (m VarMap) pickInt(src []int) []int {
	if m.IsEmpty() {
		return nil
	}
	if m.list == nil {
		return src[m.start:m.stop]
	}

	out := make([]int, len(m.list))
	for i, p := range m.list {
		out[i] = src[p]
	}

	return out
}

// pickRows applies the map to the trailing axis of integer population
// data (row = individual). Range maps keep per-row views.
func (m VarMap) pickRows(src [][]int) [][]int {
	if m.IsEmpty() {
		return nil
	}

	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = m.pickInt(row)
	}

	return out
}

// pickCols applies the map to the column axis of float population data.
// Range maps return a Dense view via Slice; list maps gather the columns
// into a fresh matrix. An empty map returns nil.
func (m VarMap) pickCols(src *mat.Dense, nPop int) *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	if m.list == nil {
		return src.Slice(0, nPop, m.start, m.stop).(*mat.Dense)
	}

	out := mat.NewDense(nPop, len(m.list), nil)
	for j, p := range m.list {
		for i := 0; i < nPop; i++ {
			out.Set(i, j, src.At(i, p))
		}
	}

	return out
}
