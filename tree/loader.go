// File: loader.go
// Role: Load parses the JSON-equivalent tree data blob (spec §4.1 "Loading")
// into an immutable Graph: a nodes map plus a groups array for node
// coordinates, exactly the shape the game engine's own tree.json uses
// (grounded on original_source/src/calculator/passive_tree.py's
// load_passive_tree). Connections are symmetrized so both adjacency
// directions always coexist (spec §3 "undirected; ... guaranteed
// symmetric").

package tree

import (
	"encoding/json"
	"fmt"
)

type rawGroup struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rawConnection struct {
	ID int `json:"id"`
}

type rawNode struct {
	Name        string          `json:"name"`
	Stats       []string        `json:"stats"`
	IsKeystone  bool            `json:"isKeystone"`
	IsNotable   bool            `json:"isNotable"`
	IsMastery   bool            `json:"isMastery"`
	Group       *int            `json:"group"`
	Orbit       int             `json:"orbit"`
	OrbitIndex  int             `json:"orbitIndex"`
	Connections []rawConnection `json:"connections"`
}

type rawBlob struct {
	Nodes  map[string]rawNode `json:"nodes"`
	Groups []rawGroup         `json:"groups"`
}

// Load parses data (a JSON document shaped like the game engine's
// tree.json: a "nodes" map keyed by stringified node ID plus a "groups"
// array) and classStarts (a static per-class anchor table, spec §4.1) into
// an immutable Graph tagged with treeVersion.
//
// Returns ErrDataUnavailable if data is unparsable, lacks "nodes" or
// "groups", has a connection to a node absent from "nodes", or if any
// entry of classStarts names a node absent from the parsed node table.
func Load(data []byte, treeVersion string, classStarts map[string]int) (*Graph, error) {
	var blob rawBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if blob.Nodes == nil {
		return nil, fmt.Errorf("%w: missing \"nodes\" field", ErrDataUnavailable)
	}
	if blob.Groups == nil {
		return nil, fmt.Errorf("%w: missing \"groups\" field", ErrDataUnavailable)
	}

	g := NewGraph(treeVersion)

	for idStr, rn := range blob.Nodes {
		id, err := parseNodeID(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		pos := Position{}
		if rn.Group != nil && *rn.Group >= 0 && *rn.Group < len(blob.Groups) {
			grp := blob.Groups[*rn.Group]
			pos = Position{X: grp.X, Y: grp.Y}
		}
		groupID := -1
		if rn.Group != nil {
			groupID = *rn.Group
		}
		g.AddNode(&PassiveNode{
			ID:         id,
			Name:       rn.Name,
			Stats:      rn.Stats,
			IsKeystone: rn.IsKeystone,
			IsNotable:  rn.IsNotable,
			IsMastery:  rn.IsMastery,
			Orbit:      rn.Orbit,
			OrbitIndex: rn.OrbitIndex,
			GroupID:    groupID,
			Position:   pos,
		})
	}

	for idStr, rn := range blob.Nodes {
		id, _ := parseNodeID(idStr)
		for _, conn := range rn.Connections {
			if !g.HasNode(conn.ID) {
				return nil, fmt.Errorf("%w: node %d connects to unknown node %d", ErrDataUnavailable, id, conn.ID)
			}
			g.AddEdge(id, conn.ID)
		}
	}

	for className, anchor := range classStarts {
		if !g.HasNode(anchor) {
			return nil, fmt.Errorf("%w: class %q anchor node %d not present in tree", ErrDataUnavailable, className, anchor)
		}
		g.SetClassStart(className, anchor)
	}

	return g, nil
}

func parseNodeID(s string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid node id %q: %w", s, err)
	}
	return id, nil
}
