// Package diagram decodes the mxGraph-style XML interchange format into
// raw cell/object records, and builds a sim/network.Network from them.
// Parsing is best-effort on numeric fields: a Resource's count defaults
// to 1 when missing or unparseable, and similar fallbacks apply throughout.
package diagram

import "encoding/xml"

// mxGraphModel is the XML document root. XMLName carries no explicit tag
// name so that Unmarshal accepts any root element instead of erroring
// before Build gets a chance to report the expected-<mxGraphModel>
// BuildError itself.
type mxGraphModel struct {
	XMLName xml.Name
	Root    mxRoot `xml:"root"`
}

type mxRoot struct {
	Cells   []mxCell   `xml:"mxCell"`
	Objects []mxObject `xml:"object"`
}

// mxCell is a bare vertex or edge cell. A cell is a vertex when its
// Style contains a `shape=<kind>;` token; any other cell with a
// non-empty Style is an edge, and Build rejects it unless it carries both
// Source and Target attributes. Cells with no Style are ignored.
type mxCell struct {
	ID     string `xml:"id,attr"`
	Style  string `xml:"style,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// mxObject is a wrapped cell: an <object> element carrying simulation
// metadata, with its shape-bearing <mxCell> nested inside. The wrapper's
// id, not the inner cell's, is the vertex id.
type mxObject struct {
	ID        string `xml:"id,attr"`
	Type      string `xml:"type,attr"`
	DelayType string `xml:"delayType,attr"`
	Min       string `xml:"min,attr"`
	Mid       string `xml:"mid,attr"`
	Max       string `xml:"max,attr"`
	Val       string `xml:"val,attr"`
	Decision  string `xml:"decision,attr"`
	NodeType  string `xml:"nodeType,attr"`
	Resource  string `xml:"resource,attr"`
	Name      string `xml:"Name,attr"`
	Count     string `xml:"Count,attr"`
	Cell      mxCell `xml:"mxCell"`
}
