package diagram

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/flowsim/flowsim/sim/network"
)

// BuildError reports a malformed diagram: bad XML, wrong root element, an
// edge missing source/target, or an unrecognized vertex shape. It is
// always fatal for the run.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string { return e.Message }

func buildErrorf(format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...)}
}

var shapePattern = regexp.MustCompile(`shape=(\w+);`)

var recognizedKinds = map[network.Kind]bool{
	network.KindSource:   true,
	network.KindProcess:  true,
	network.KindDecision: true,
	network.KindExit:     true,
}

// Build parses a diagram document and returns the typed Network it
// describes. It does not validate structural invariants — call
// network.Validate on the result for that; build and validation errors
// are reported as distinct types on purpose.
func Build(xmlBytes []byte) (*network.Network, error) {
	var doc mxGraphModel
	if err := xml.Unmarshal(xmlBytes, &doc); err != nil {
		return nil, buildErrorf("Failed to parse XML into simulation.")
	}
	if doc.XMLName.Local != "mxGraphModel" {
		return nil, buildErrorf("Root must be <mxGraphModel>.")
	}

	net := network.NewNetwork()
	var edgeCells []mxCell

	for _, cell := range doc.Root.Cells {
		if cell.Style == "" {
			continue // mxGraph decoration cells unrelated to the simulation
		}
		if m := shapePattern.FindStringSubmatch(cell.Style); m != nil {
			node, err := vertexFromShape(cell.ID, m[1])
			if err != nil {
				return nil, err
			}
			net.AddNode(node)
			continue
		}
		edgeCells = append(edgeCells, cell)
	}

	for _, obj := range doc.Root.Objects {
		if strings.EqualFold(obj.NodeType, "resource") {
			net.AddResource(&network.Resource{
				ID:       obj.ID,
				Name:     obj.Name,
				Capacity: parseCapacity(obj.Count),
			})
			continue
		}

		m := shapePattern.FindStringSubmatch(obj.Cell.Style)
		if m == nil {
			continue // wrapper without a shape-bearing inner cell carries no vertex
		}
		node, err := vertexFromShape(obj.ID, m[1])
		if err != nil {
			return nil, err
		}
		applyMetadata(node, obj)
		net.AddNode(node)
	}

	for _, cell := range edgeCells {
		if cell.Source == "" || cell.Target == "" {
			return nil, buildErrorf("All edges must have a source node/target node.")
		}
		net.AddEdge(&network.Edge{ID: cell.ID, From: cell.Source, To: cell.Target})
	}

	return net, nil
}

func vertexFromShape(id, shape string) (*network.Node, error) {
	kind := network.Kind(strings.ToLower(shape))
	if !recognizedKinds[kind] {
		return nil, buildErrorf("Unrecognized shape %q for vertex %s.", shape, id)
	}
	return &network.Node{ID: id, Kind: kind}, nil
}

func parseCapacity(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// applyMetadata fills in the Delay/ProcessType/Probability fields a
// wrapped cell carries. Process nodes key their configuration off the
// wrapper's Type attribute (e.g. "delay"); Source nodes take their delay
// spec from the delay attributes whatever Type says; Decision nodes key
// off the Decision attribute.
func applyMetadata(node *network.Node, obj mxObject) {
	switch node.Kind {
	case network.KindDecision:
		node.Probability = parseProbability(obj.Decision)
	case network.KindSource:
		node.Delay = delaySpecFromObject(obj)
	case network.KindProcess:
		applyProcessMetadata(node, obj)
	}
}

func parseProbability(raw string) float64 {
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || p < 0 || p > 1 {
		return 0.5
	}
	return p
}

func delaySpecFromObject(obj mxObject) *network.DelaySpec {
	return &network.DelaySpec{
		Type: obj.DelayType,
		Args: map[string]string{
			"min": obj.Min,
			"mid": obj.Mid,
			"max": obj.Max,
			"val": obj.Val,
		},
	}
}

// normalizeProcessToken folds the diagram format's commonly misspelled
// "sieze" token onto "seize" so both spellings build the same process
// metadata; see DESIGN.md for the reasoning.
func normalizeProcessToken(raw string) string {
	return strings.ReplaceAll(strings.ToLower(raw), "sieze", "seize")
}

func applyProcessMetadata(node *network.Node, obj mxObject) {
	token := normalizeProcessToken(obj.Type)
	switch token {
	case "delay":
		node.ProcessType = network.ProcessDelayOnly
		node.WillDelay = true
		node.Delay = delaySpecFromObject(obj)
	case "seize":
		node.ProcessType = network.ProcessSeizeOnly
		node.WillSeize = true
		node.SeizeResource = obj.Resource
	case "release":
		node.ProcessType = network.ProcessReleaseOnly
		node.WillRelease = true
		node.ReleaseResource = obj.Resource
	case "seize_delay":
		node.ProcessType = network.ProcessSeizeThenDelay
		node.WillSeize = true
		node.WillDelay = true
		node.SeizeResource = obj.Resource
		node.Delay = delaySpecFromObject(obj)
	case "seize_delay_release":
		node.ProcessType = network.ProcessSeizeDelayRelease
		node.WillSeize = true
		node.WillDelay = true
		node.WillRelease = true
		node.SeizeResource = obj.Resource
		node.ReleaseResource = obj.Resource
		node.Delay = delaySpecFromObject(obj)
	}
}
