package graphprep_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/forceviz/graphprep"
)

func TestDecodeGraph_OK(t *testing.T) {
	doc := `{
	  "nodes": [{"id": "a"}, {"id": "b", "group": 3}],
	  "links": [{"source": "a", "target": "b", "value": 2.5}]
	}`

	raw, err := graphprep.DecodeGraph(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeGraph failed: %v", err)
	}
	if len(raw.Nodes) != 2 || len(raw.Links) != 1 {
		t.Fatalf("got %d nodes / %d links; want 2 / 1", len(raw.Nodes), len(raw.Links))
	}
	if raw.Nodes[1].Group != 3 {
		t.Errorf("group = %d; want 3", raw.Nodes[1].Group)
	}
	if raw.Links[0].Value != 2.5 {
		t.Errorf("value = %g; want 2.5", raw.Links[0].Value)
	}
}

func TestDecodeGraph_Malformed(t *testing.T) {
	_, err := graphprep.DecodeGraph(strings.NewReader(`{"nodes": [`))
	if !errors.Is(err, graphprep.ErrBadPayload) {
		t.Errorf("got %v; want ErrBadPayload", err)
	}
}

// TestDecodeEdgeList_SkipsMalformed feeds a SNAP-style edge list with
// noise lines; well-formed pairs become links, endpoints become nodes
// sorted ascending, malformed lines are skipped without error.
func TestDecodeEdgeList_SkipsMalformed(t *testing.T) {
	in := "3 1\n\nnot-an-edge\n1 2\ntoo many fields here\n2 3\n"

	raw, err := graphprep.DecodeEdgeList(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeEdgeList failed: %v", err)
	}
	if len(raw.Links) != 3 {
		t.Fatalf("got %d links; want 3", len(raw.Links))
	}
	if len(raw.Nodes) != 3 {
		t.Fatalf("got %d nodes; want 3", len(raw.Nodes))
	}
	for i, want := range []string{"1", "2", "3"} {
		if raw.Nodes[i].ID != want {
			t.Errorf("node[%d] = %q; want %q (sorted)", i, raw.Nodes[i].ID, want)
		}
	}
}

func TestEncodeGraph_RoundTrip(t *testing.T) {
	in := graphprep.RawGraph{
		Nodes: []graphprep.RawNode{{ID: "a"}, {ID: "b"}},
		Links: []graphprep.RawLink{{Source: "a", Target: "b"}},
	}

	var buf bytes.Buffer
	if err := graphprep.EncodeGraph(&buf, in); err != nil {
		t.Fatalf("EncodeGraph failed: %v", err)
	}
	out, err := graphprep.DecodeGraph(&buf)
	if err != nil {
		t.Fatalf("DecodeGraph failed: %v", err)
	}
	if len(out.Nodes) != 2 || len(out.Links) != 1 {
		t.Errorf("round trip lost data: %d nodes / %d links", len(out.Nodes), len(out.Links))
	}
}
