package occupations

import "fmt"

// Selection is the explorer's current drill-down path, deepest level last.
// Empty codes mean the level is not selected; a selected level implies all
// shallower levels are selected too.
type Selection struct {
	Major    string `json:"major,omitempty"`
	SubMajor string `json:"subMajor,omitempty"`
	Minor    string `json:"minor,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// Breadcrumb is one step of the selection path for display.
type Breadcrumb struct {
	Level string `json:"level"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Children are the candidate sets the explorer shows for a selection: the
// next level down for each selected level, starting from all major groups.
type Children struct {
	MajorGroups    []MajorGroup    `json:"majorGroups"`
	SubMajorGroups []SubMajorGroup `json:"subMajorGroups,omitempty"`
	MinorGroups    []MinorGroup    `json:"minorGroups,omitempty"`
	UnitGroups     []UnitGroup     `json:"unitGroups,omitempty"`
}

// Navigator validates selections against an index and answers navigation
// queries for them.
type Navigator struct {
	idx *Index
}

// NewNavigator creates a navigator over an index.
func NewNavigator(idx *Index) *Navigator {
	return &Navigator{idx: idx}
}

// Normalize validates a selection against the hierarchy: every selected
// code must exist and be a child of the selected parent. Selecting a level
// clears everything deeper than the deepest valid level.
func (n *Navigator) Normalize(sel Selection) (Selection, error) {
	out := Selection{}
	if sel.Major == "" {
		return out, nil
	}
	if _, ok := n.idx.Major(sel.Major); !ok {
		return out, fmt.Errorf("unknown major group %q", sel.Major)
	}
	out.Major = sel.Major

	if sel.SubMajor == "" {
		return out, nil
	}
	sub, ok := n.idx.SubMajor(sel.SubMajor)
	if !ok || sub.MajorGroupCode != sel.Major {
		return out, fmt.Errorf("sub-major group %q is not under major group %q", sel.SubMajor, sel.Major)
	}
	out.SubMajor = sel.SubMajor

	if sel.Minor == "" {
		return out, nil
	}
	minor, ok := n.idx.Minor(sel.Minor)
	if !ok || minor.SubMajorGroupCode != sel.SubMajor {
		return out, fmt.Errorf("minor group %q is not under sub-major group %q", sel.Minor, sel.SubMajor)
	}
	out.Minor = sel.Minor

	if sel.Unit == "" {
		return out, nil
	}
	unit, ok := n.idx.Unit(sel.Unit)
	if !ok || unit.MinorGroupCode != sel.Minor {
		return out, fmt.Errorf("unit group %q is not under minor group %q", sel.Unit, sel.Minor)
	}
	out.Unit = sel.Unit
	return out, nil
}

// Children returns the candidate sets for a normalized selection.
func (n *Navigator) Children(sel Selection) Children {
	c := Children{MajorGroups: n.idx.Majors()}
	if sel.Major != "" {
		c.SubMajorGroups = n.idx.SubMajorsOf(sel.Major)
	}
	if sel.SubMajor != "" {
		c.MinorGroups = n.idx.MinorsOf(sel.SubMajor)
	}
	if sel.Minor != "" {
		c.UnitGroups = n.idx.UnitsOf(sel.Minor)
	}
	return c
}

// Breadcrumbs renders the selection path, deepest level last.
func (n *Navigator) Breadcrumbs(sel Selection) []Breadcrumb {
	crumbs := []Breadcrumb{}
	if g, ok := n.idx.Major(sel.Major); ok {
		crumbs = append(crumbs, Breadcrumb{Level: "major", Code: g.Code, Title: g.Title})
	}
	if g, ok := n.idx.SubMajor(sel.SubMajor); ok {
		crumbs = append(crumbs, Breadcrumb{Level: "subMajor", Code: g.Code, Title: g.Title})
	}
	if g, ok := n.idx.Minor(sel.Minor); ok {
		crumbs = append(crumbs, Breadcrumb{Level: "minor", Code: g.Code, Title: g.Title})
	}
	if g, ok := n.idx.Unit(sel.Unit); ok {
		crumbs = append(crumbs, Breadcrumb{Level: "unit", Code: g.Code, Title: g.Title})
	}
	return crumbs
}

// ResolveUnit reconstructs the selection path for a unit group picked out
// of search results. Missing ancestors stop the walk at the deepest
// resolvable level, leaving the unit itself selected.
func (n *Navigator) ResolveUnit(code string) (Selection, error) {
	unit, ok := n.idx.Unit(code)
	if !ok {
		return Selection{}, fmt.Errorf("unknown unit group %q", code)
	}

	sel := Selection{Unit: unit.Code}
	minor, ok := n.idx.Minor(unit.MinorGroupCode)
	if !ok {
		return sel, nil
	}
	sel.Minor = minor.Code

	sub, ok := n.idx.SubMajor(minor.SubMajorGroupCode)
	if !ok {
		return sel, nil
	}
	sel.SubMajor = sub.Code

	if _, ok := n.idx.Major(sub.MajorGroupCode); ok {
		sel.Major = sub.MajorGroupCode
	}
	return sel, nil
}
