package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/iconkit/internal/icons/node"
)

const sampleCatalog = `{
  "arrow-down": [
    ["path", {"d": "M12 5v14", "key": "s699le"}],
    ["path", {"d": "m19 12-7 7-7-7", "key": "1idqje"}]
  ],
  "CircleDot": [
    ["circle", {"cx": 12, "cy": 12, "r": 10}],
    ["g", {"opacity": 0.5}, [["circle", {"cx": 12, "cy": 12, "r": 1}]]]
  ]
}`

func TestDecodeCanonicalizesNamesAndKeepsOrder(t *testing.T) {
	got, err := Decode(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}

	want := Catalog{
		"ArrowDown": {
			node.New("path", "d", "M12 5v14", "key", "s699le"),
			node.New("path", "d", "m19 12-7 7-7-7", "key", "1idqje"),
		},
		"CircleDot": {
			node.New("circle", "cx", "12", "cy", "12", "r", "10"),
			node.New("g", "opacity", "0.5").WithChildren(
				node.New("circle", "cx", "12", "cy", "12", "r", "1"),
			),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsDuplicateCanonicalNames(t *testing.T) {
	input := `{"arrow-down": [["path", {"d": "M0 0"}]], "ArrowDown": [["path", {"d": "M1 1"}]]}`
	_, err := Decode(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateIcon) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrDuplicateIcon)
	}
}

func TestDecodeRejectsMalformedTuples(t *testing.T) {
	tests := map[string]struct {
		input string
		want  error
	}{
		"single element":    {`{"X": [["path"]]}`, ErrTupleShape},
		"four elements":     {`{"X": [["path", {}, [], 1]]}`, ErrTupleShape},
		"attrs not object":  {`{"X": [["path", "d"]]}`, ErrTupleShape},
		"boolean attribute": {`{"X": [["path", {"hidden": true}]]}`, ErrAttrValue},
		"empty name":        {`{"--": [["path", {}]]}`, ErrEmptyIconName},
	}
	for label, tt := range tests {
		t.Run(label, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeRejectsEmptyTag(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"X": [[" ", {}]]}`)); err == nil {
		t.Fatal("expected error for empty tag")
	}
}

func TestEncodeDecodeKeepsCatalog(t *testing.T) {
	original, err := Decode(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, original); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if !strings.Contains(buf.String(), `["circle",{"cx":"12","cy":"12","r":"1"}]`) {
		t.Fatalf("expected nested tuple in output, got %s", buf.String())
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode()) = %v", err)
	}
	if diff := cmp.Diff(original, again); diff != "" {
		t.Fatalf("catalog changed after encode (-want +got):\n%s", diff)
	}
}

func TestNodesCodec(t *testing.T) {
	data, err := EncodeNodes([]node.Node{node.New("rect", "width", "4")})
	if err != nil {
		t.Fatalf("EncodeNodes() = %v", err)
	}
	if got, want := string(data), `[["rect",{"width":"4"}]]`; got != want {
		t.Fatalf("EncodeNodes() = %s, want %s", got, want)
	}
	nodes, err := DecodeNodes([]byte(`[["line", {"x1": 1, "y1": 2.5}]]`))
	if err != nil {
		t.Fatalf("DecodeNodes() = %v", err)
	}
	if got := nodes[0].Attrs["y1"]; got != "2.5" {
		t.Fatalf("y1 = %q, want 2.5", got)
	}
}

func TestNamesSorted(t *testing.T) {
	got := Names(Catalog{"Zap": nil, "Anchor": nil, "Bell": nil})
	want := []string{"Anchor", "Bell", "Zap"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}
