package occupations

// Index is a Dataset with code and parent-code lookups built once. A child
// level referencing an unknown parent is an orphan; orphans never appear in
// any child list but stay reachable by code.
type Index struct {
	dataset Dataset

	majors    map[string]MajorGroup
	subMajors map[string]SubMajorGroup
	minors    map[string]MinorGroup
	units     map[string]UnitGroup

	subMajorsByMajor map[string][]SubMajorGroup
	minorsBySubMajor map[string][]MinorGroup
	unitsByMinor     map[string][]UnitGroup
}

// NewIndex builds the lookup maps for a dataset.
func NewIndex(d Dataset) *Index {
	idx := &Index{
		dataset:          d,
		majors:           make(map[string]MajorGroup, len(d.MajorGroups)),
		subMajors:        make(map[string]SubMajorGroup, len(d.SubMajorGroups)),
		minors:           make(map[string]MinorGroup, len(d.MinorGroups)),
		units:            make(map[string]UnitGroup, len(d.UnitGroups)),
		subMajorsByMajor: make(map[string][]SubMajorGroup),
		minorsBySubMajor: make(map[string][]MinorGroup),
		unitsByMinor:     make(map[string][]UnitGroup),
	}
	for _, g := range d.MajorGroups {
		idx.majors[g.Code] = g
	}
	for _, g := range d.SubMajorGroups {
		idx.subMajors[g.Code] = g
		if _, ok := idx.majors[g.MajorGroupCode]; ok {
			idx.subMajorsByMajor[g.MajorGroupCode] = append(idx.subMajorsByMajor[g.MajorGroupCode], g)
		}
	}
	for _, g := range d.MinorGroups {
		idx.minors[g.Code] = g
		if _, ok := idx.subMajors[g.SubMajorGroupCode]; ok {
			idx.minorsBySubMajor[g.SubMajorGroupCode] = append(idx.minorsBySubMajor[g.SubMajorGroupCode], g)
		}
	}
	for _, g := range d.UnitGroups {
		idx.units[g.Code] = g
		if _, ok := idx.minors[g.MinorGroupCode]; ok {
			idx.unitsByMinor[g.MinorGroupCode] = append(idx.unitsByMinor[g.MinorGroupCode], g)
		}
	}
	return idx
}

// Dataset returns the underlying flat dataset.
func (idx *Index) Dataset() Dataset {
	return idx.dataset
}

// Majors returns all major groups in ingest order.
func (idx *Index) Majors() []MajorGroup {
	return idx.dataset.MajorGroups
}

// Units returns all unit groups in ingest order.
func (idx *Index) Units() []UnitGroup {
	return idx.dataset.UnitGroups
}

func (idx *Index) Major(code string) (MajorGroup, bool) {
	g, ok := idx.majors[code]
	return g, ok
}

func (idx *Index) SubMajor(code string) (SubMajorGroup, bool) {
	g, ok := idx.subMajors[code]
	return g, ok
}

func (idx *Index) Minor(code string) (MinorGroup, bool) {
	g, ok := idx.minors[code]
	return g, ok
}

func (idx *Index) Unit(code string) (UnitGroup, bool) {
	g, ok := idx.units[code]
	return g, ok
}

// SubMajorsOf returns the sub-major groups under a major group. Unknown
// codes yield an empty, non-nil slice.
func (idx *Index) SubMajorsOf(majorCode string) []SubMajorGroup {
	if groups, ok := idx.subMajorsByMajor[majorCode]; ok {
		return groups
	}
	return []SubMajorGroup{}
}

// MinorsOf returns the minor groups under a sub-major group.
func (idx *Index) MinorsOf(subMajorCode string) []MinorGroup {
	if groups, ok := idx.minorsBySubMajor[subMajorCode]; ok {
		return groups
	}
	return []MinorGroup{}
}

// UnitsOf returns the unit groups under a minor group.
func (idx *Index) UnitsOf(minorCode string) []UnitGroup {
	if groups, ok := idx.unitsByMinor[minorCode]; ok {
		return groups
	}
	return []UnitGroup{}
}
