package education

import "fmt"

// Selection identifies a path through the education hierarchy. Deeper
// levels are only meaningful when every shallower level is selected.
type Selection struct {
	Curriculum string `json:"curriculum,omitempty"`
	Stream     string `json:"stream,omitempty"`
	UgOption   string `json:"ugOption,omitempty"`
	PgOption   string `json:"pgOption,omitempty"`
	PhdOption  string `json:"phdOption,omitempty"`
}

// Breadcrumb is one step on the path from curriculum to the selected node.
type Breadcrumb struct {
	Level string `json:"level"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

// Children holds the options available one level below a selection.
// Exactly one slice is populated, or none when the selection is a leaf.
type Children struct {
	Curricula  []Curriculum     `json:"curricula,omitempty"`
	Streams    []Stream         `json:"streams,omitempty"`
	UgOptions  []UgDegreeOption `json:"ugOptions,omitempty"`
	PgOptions  []PgDegreeOption `json:"pgOptions,omitempty"`
	PhdOptions []PhdOption      `json:"phdOptions,omitempty"`
}

type streamNode struct {
	stream     Stream
	curriculum string
}

type ugNode struct {
	ug     UgDegreeOption
	stream string
}

type pgNode struct {
	pg PgDegreeOption
	ug string
}

type phdNode struct {
	phd PhdOption
	pg  string
}

// Navigator answers hierarchy queries over the loaded education system.
type Navigator struct {
	loader  *Loader
	streams map[string]streamNode
	ugs     map[string]ugNode
	pgs     map[string]pgNode
	phds    map[string]phdNode
}

// NewNavigator indexes the loader's curricula for selection lookups.
func NewNavigator(loader *Loader) *Navigator {
	n := &Navigator{
		loader:  loader,
		streams: make(map[string]streamNode),
		ugs:     make(map[string]ugNode),
		pgs:     make(map[string]pgNode),
		phds:    make(map[string]phdNode),
	}

	for _, c := range loader.curricula {
		for _, s := range c.StreamsAfter10th {
			n.streams[s.ID] = streamNode{stream: s, curriculum: c.ID}
			for _, u := range s.UgOptions {
				n.ugs[u.ID] = ugNode{ug: u, stream: s.ID}
				for _, p := range u.PgOptions {
					n.pgs[p.ID] = pgNode{pg: p, ug: u.ID}
					for _, d := range p.PhdOptions {
						n.phds[d.ID] = phdNode{phd: d, pg: p.ID}
					}
				}
			}
		}
	}
	return n
}

// Normalize validates a selection against the hierarchy. Levels below an
// unselected level are dropped; a selected ID that does not exist or does
// not belong to its selected parent is an error.
func (n *Navigator) Normalize(sel Selection) (Selection, error) {
	if sel.Curriculum == "" {
		return Selection{}, nil
	}
	if _, ok := n.loader.Curriculum(sel.Curriculum); !ok {
		return Selection{}, fmt.Errorf("unknown curriculum %q", sel.Curriculum)
	}
	if sel.Stream == "" {
		return Selection{Curriculum: sel.Curriculum}, nil
	}
	sn, ok := n.streams[sel.Stream]
	if !ok || sn.curriculum != sel.Curriculum {
		return Selection{}, fmt.Errorf("stream %q does not belong to curriculum %q", sel.Stream, sel.Curriculum)
	}
	if sel.UgOption == "" {
		return Selection{Curriculum: sel.Curriculum, Stream: sel.Stream}, nil
	}
	un, ok := n.ugs[sel.UgOption]
	if !ok || un.stream != sel.Stream {
		return Selection{}, fmt.Errorf("ug option %q does not belong to stream %q", sel.UgOption, sel.Stream)
	}
	if sel.PgOption == "" {
		return Selection{Curriculum: sel.Curriculum, Stream: sel.Stream, UgOption: sel.UgOption}, nil
	}
	pn, ok := n.pgs[sel.PgOption]
	if !ok || pn.ug != sel.UgOption {
		return Selection{}, fmt.Errorf("pg option %q does not belong to ug option %q", sel.PgOption, sel.UgOption)
	}
	if sel.PhdOption == "" {
		return Selection{Curriculum: sel.Curriculum, Stream: sel.Stream, UgOption: sel.UgOption, PgOption: sel.PgOption}, nil
	}
	dn, ok := n.phds[sel.PhdOption]
	if !ok || dn.pg != sel.PgOption {
		return Selection{}, fmt.Errorf("phd option %q does not belong to pg option %q", sel.PhdOption, sel.PgOption)
	}
	return sel, nil
}

// Children returns the options one level below the selection. The
// selection must already be normalized.
func (n *Navigator) Children(sel Selection) Children {
	switch {
	case sel.Curriculum == "":
		return Children{Curricula: n.loader.Curricula()}
	case sel.Stream == "":
		c, _ := n.loader.Curriculum(sel.Curriculum)
		return Children{Streams: append([]Stream{}, c.StreamsAfter10th...)}
	case sel.UgOption == "":
		sn := n.streams[sel.Stream]
		return Children{UgOptions: append([]UgDegreeOption{}, sn.stream.UgOptions...)}
	case sel.PgOption == "":
		un := n.ugs[sel.UgOption]
		return Children{PgOptions: append([]PgDegreeOption{}, un.ug.PgOptions...)}
	case sel.PhdOption == "":
		pn := n.pgs[sel.PgOption]
		return Children{PhdOptions: append([]PhdOption{}, pn.pg.PhdOptions...)}
	}
	return Children{}
}

// Breadcrumbs returns the named path from the curriculum down to the
// deepest selected node. The selection must already be normalized.
func (n *Navigator) Breadcrumbs(sel Selection) []Breadcrumb {
	var crumbs []Breadcrumb
	if sel.Curriculum == "" {
		return crumbs
	}
	c, _ := n.loader.Curriculum(sel.Curriculum)
	crumbs = append(crumbs, Breadcrumb{Level: "curriculum", ID: c.ID, Name: c.Name})
	if sel.Stream == "" {
		return crumbs
	}
	sn := n.streams[sel.Stream]
	crumbs = append(crumbs, Breadcrumb{Level: "stream", ID: sn.stream.ID, Name: sn.stream.Name})
	if sel.UgOption == "" {
		return crumbs
	}
	un := n.ugs[sel.UgOption]
	crumbs = append(crumbs, Breadcrumb{Level: "ug", ID: un.ug.ID, Name: un.ug.Name})
	if sel.PgOption == "" {
		return crumbs
	}
	pn := n.pgs[sel.PgOption]
	crumbs = append(crumbs, Breadcrumb{Level: "pg", ID: pn.pg.ID, Name: pn.pg.Name})
	if sel.PhdOption == "" {
		return crumbs
	}
	dn := n.phds[sel.PhdOption]
	crumbs = append(crumbs, Breadcrumb{Level: "phd", ID: dn.phd.ID, Name: dn.phd.Name})
	return crumbs
}
