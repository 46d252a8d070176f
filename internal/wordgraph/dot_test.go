package wordgraph

import (
	"strings"
	"testing"
)

func TestWriteDOT(t *testing.T) {
	g := buildCluster(t, 4)

	var buf strings.Builder
	if err := g.WriteDOT(&buf); err != nil {
		t.Fatalf("WriteDOT() unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "digraph") {
		t.Errorf("output is not a digraph:\n%s", out)
	}
	for _, want := range []string{
		`china` + Sep + `NNP:0`,
		`-start-`,
		`-end-`,
		"weight=",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
