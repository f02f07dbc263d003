package panel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/view"
)

func texts(n view.Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Text)
	}
	return out
}

func TestBlocksPreserveInputOrder(t *testing.T) {
	in := []string{"a", "b", "c"}
	for _, n := range []view.Node{
		List("l", in, view.Style{}),
		ChipRow("g", in, 2, view.Style{}),
		CodeBlock("c", in, view.Style{}),
	} {
		if diff := cmp.Diff(in, texts(n)); diff != "" {
			t.Fatalf("%s order mismatch (-want +got):\n%s", n.Kind, diff)
		}
		if diff := cmp.Diff([]string{n.ID + ".0", n.ID + ".1", n.ID + ".2"}, n.ChildIDs()); diff != "" {
			t.Fatalf("%s ids mismatch (-want +got):\n%s", n.Kind, diff)
		}
	}
}

func TestEmptyCollectionsRenderEmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		node view.Node
		kind view.Kind
	}{
		{"list", List("l", nil, view.Style{}), view.KindList},
		{"chips", Features("f", []content.FeatureItem{}, 2, view.Style{}), view.KindGrid},
		{"status", StatusList("s", nil, view.Style{}), view.KindStatusList},
		{"code", CodeBlock("c", nil, view.Style{}), view.KindCode},
		{"steps", Steps("p", nil, view.Style{}), view.KindSteps},
		{"buttons", Buttons("b", nil, view.Style{}), view.KindButtons},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", tt.node.Kind, tt.kind)
			}
			if len(tt.node.Children) != 0 {
				t.Fatalf("children = %d, want 0", len(tt.node.Children))
			}
		})
	}
}

func TestFeatureChipRowExample(t *testing.T) {
	features := []content.FeatureItem{"🧾 Complete POS System", "📦 Product Management"}
	got := Features("features", features, 2, view.Style{ItemBackground: "#f5f5f5"})

	want := view.Node{
		Kind:    view.KindGrid,
		ID:      "features",
		Columns: 2,
		Style:   view.Style{ItemBackground: "#f5f5f5"},
		Children: []view.Node{
			{Kind: view.KindChip, ID: "features.0", Text: "🧾 Complete POS System", Style: view.Style{Background: "#f5f5f5"}},
			{Kind: view.KindChip, ID: "features.1", Text: "📦 Product Management", Style: view.Style{Background: "#f5f5f5"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("feature panel mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusListSingleResultExample(t *testing.T) {
	got := StatusList("results", []content.TestResult{
		{Name: "Dependencies Check", Status: content.StatusPass, Description: "All dependencies verified"},
	}, view.Style{})
	if len(got.Children) != 1 {
		t.Fatalf("rows = %d, want 1", len(got.Children))
	}
	row := got.Children[0]
	if row.Icon != view.IconCheck || row.Style.Tone != view.ToneSuccess {
		t.Fatalf("row mark = %s/%s, want affirmative", row.Icon, row.Style.Tone)
	}
	if row.Title != "Dependencies Check" || row.Text != "All dependencies verified" {
		t.Fatalf("row = %+v", row)
	}
}

func TestStatusListMarksEveryDefaultResult(t *testing.T) {
	results := content.DefaultReport().Results.Items
	results = append(results, content.TestResult{Name: "Broken", Status: content.StatusFail, Description: "fails"})

	n := StatusList("results", results, view.Style{})
	if len(n.Children) != len(results) {
		t.Fatalf("rows = %d, want %d", len(n.Children), len(results))
	}
	for i, r := range results {
		row := n.Children[i]
		want := PassMark
		if r.Status == content.StatusFail {
			want = FailMark
		}
		if row.Icon != want.Icon || row.Style.Tone != want.Tone {
			t.Fatalf("row %d (%s) = %s/%s, want %s/%s", i, r.Status, row.Icon, row.Style.Tone, want.Icon, want.Tone)
		}
		if row.Title != r.Name {
			t.Fatalf("row %d title = %q, want %q", i, row.Title, r.Name)
		}
	}
}

func TestStepsCarryFragments(t *testing.T) {
	steps := content.DefaultReport().Instructions.Cloud.Items
	n := Steps("cloud", steps, view.Style{})
	if len(n.Children) != 4 {
		t.Fatalf("steps = %d, want 4", len(n.Children))
	}

	first := n.Children[0]
	if first.Index != 1 {
		t.Fatalf("first index = %d", first.Index)
	}
	if len(first.Children) != 2 || first.Children[1].Kind != view.KindCodeSpan {
		t.Fatalf("first step runs = %+v", first.Children)
	}

	link := n.Children[1].Children[1]
	if link.Kind != view.KindLink || link.Href != "https://share.streamlit.io" {
		t.Fatalf("second step link = %+v", link)
	}

	plain := n.Children[3]
	if len(plain.Children) != 1 || plain.Children[0].Kind != view.KindText {
		t.Fatalf("plain step runs = %+v", plain.Children)
	}
}

func TestButtonsAreStatic(t *testing.T) {
	n := Buttons("actions", content.DefaultReport().Instructions.Actions, view.Style{Tone: view.ToneBrand})
	if len(n.Children) != 3 {
		t.Fatalf("buttons = %d, want 3", len(n.Children))
	}
	if !n.Children[0].Style.Emphasis || n.Children[1].Style.Emphasis {
		t.Fatalf("only the primary action should be emphasized")
	}
	if n.Children[0].Icon != view.IconPlay {
		t.Fatalf("primary icon = %q", n.Children[0].Icon)
	}
	for _, b := range n.Children {
		if len(b.Children) != 0 || b.Href != "" {
			t.Fatalf("button %q carries behavior: %+v", b.Text, b)
		}
	}
}
