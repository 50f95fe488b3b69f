package graphprep

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DecodeGraph reads a {"nodes":[...],"links":[...]} JSON document from r.
// A document that fails to parse is rejected as ErrBadPayload; missing
// "nodes" or "links" arrays simply decode as empty lists.
//
// Complexity: O(V + E).
func DecodeGraph(r io.Reader) (RawGraph, error) {
	var doc RawGraph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return RawGraph{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return doc, nil
}

// EncodeGraph writes g to w as an indented JSON graph document,
// the same shape DecodeGraph reads.
func EncodeGraph(w io.Writer, g RawGraph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(g)
}

// DecodeEdgeList reads a whitespace-separated "source target" edge list
// (the SNAP dataset format) from r and synthesizes a RawGraph: one
// RawNode per distinct endpoint id, sorted ascending for deterministic
// output, plus one RawLink per well-formed line. Lines that do not
// contain exactly two fields are skipped, not an error.
//
// Complexity: O(E·log V).
func DecodeEdgeList(r io.Reader) (RawGraph, error) {
	ids := make(map[string]struct{})
	var links []RawLink

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		u, v := fields[0], fields[1]
		ids[u] = struct{}{}
		ids[v] = struct{}{}
		links = append(links, RawLink{Source: u, Target: v})
	}
	if err := sc.Err(); err != nil {
		return RawGraph{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	nodes := make([]RawNode, 0, len(sorted))
	for _, id := range sorted {
		nodes = append(nodes, RawNode{ID: id})
	}

	return RawGraph{Nodes: nodes, Links: links}, nil
}
