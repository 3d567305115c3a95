// Package occupations serves the ISCO-08 occupation hierarchy: ingest of
// the published classification table, a code-indexed dataset, and the
// explorer navigation over its four levels.
package occupations

// MajorGroup is a 1-digit ISCO-08 major group.
type MajorGroup struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// SubMajorGroup is a 2-digit group under a major group.
type SubMajorGroup struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	MajorGroupCode string `json:"majorGroupCode"`
}

// MinorGroup is a 3-digit group under a sub-major group.
type MinorGroup struct {
	Code              string `json:"code"`
	Title             string `json:"title"`
	SubMajorGroupCode string `json:"subMajorGroupCode"`
}

// UnitGroup is a 4-digit leaf occupation group.
type UnitGroup struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	MinorGroupCode string `json:"minorGroupCode"`
}

// Dataset is the parsed classification as four flat levels linked by parent
// code. It is the cacheable wire form of the hierarchy.
type Dataset struct {
	MajorGroups    []MajorGroup    `json:"majorGroups"`
	SubMajorGroups []SubMajorGroup `json:"subMajorGroups"`
	MinorGroups    []MinorGroup    `json:"minorGroups"`
	UnitGroups     []UnitGroup     `json:"unitGroups"`
}

// Empty reports whether the dataset holds no groups at any level.
func (d Dataset) Empty() bool {
	return len(d.MajorGroups) == 0 && len(d.SubMajorGroups) == 0 &&
		len(d.MinorGroups) == 0 && len(d.UnitGroups) == 0
}
