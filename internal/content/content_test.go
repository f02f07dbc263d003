package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultReportResultsAllPass(t *testing.T) {
	r := DefaultReport()
	if got := len(r.Results.Items); got != 6 {
		t.Fatalf("result count = %d, want 6", got)
	}
	for i, res := range r.Results.Items {
		if res.Status != StatusPass {
			t.Fatalf("results[%d] %q status = %s, want pass", i, res.Name, res.Status)
		}
	}
	if got := Passing(r.Results.Items); got != 6 {
		t.Fatalf("passing = %d, want 6", got)
	}
}

func TestDefaultStepsAreNumberedInOrder(t *testing.T) {
	r := DefaultReport()
	for _, col := range []Collection[InstructionStep]{r.Instructions.Cloud, r.NextSteps} {
		for i, step := range col.Items {
			if step.Index != i+1 {
				t.Fatalf("%s step %d has index %d", col.Title, i, step.Index)
			}
		}
	}
}

func TestDefaultsReturnFreshCopies(t *testing.T) {
	a := DefaultReport()
	a.Features.Items[0] = "mutated"
	a.Results.Items[0].Status = StatusFail

	b := DefaultReport()
	if b.Features.Items[0] != "🧾 Complete POS System" {
		t.Fatalf("feature leaked between copies: %q", b.Features.Items[0])
	}
	if b.Results.Items[0].Status != StatusPass {
		t.Fatalf("status leaked between copies")
	}
}

func TestDefaultPreviewSections(t *testing.T) {
	p := DefaultPreview()
	if got := len(p.Sections.Items); got != 7 {
		t.Fatalf("section count = %d, want 7", got)
	}
	if p.Sections.Items[1] != "🧾 بيع جديد (POS)" {
		t.Fatalf("sections[1] = %q", p.Sections.Items[1])
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pass", StatusPass, false},
		{" PASS ", StatusPass, false},
		{"fail", StatusFail, false},
		{"Fail", StatusFail, false},
		{"skipped", StatusFail, true},
		{"", StatusFail, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Fatalf("ParseStatus(%q) err = %v, want ErrUnknownStatus", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected err: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatusTextRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPass, StatusFail} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", s, err)
		}
		var back Status
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if back != s {
			t.Fatalf("round trip %s -> %s", s, back)
		}
	}
	if _, err := Status(9).MarshalText(); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("out-of-range marshal err = %v", err)
	}
	if Status(9).Valid() {
		t.Fatalf("Status(9) should not be valid")
	}
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		text     string
		kind     FragmentKind
		fragText string
		href     string
		tail     string
	}{
		{name: "plain", src: "Configure secrets (SPREADSHEET_ID, service account)", text: "Configure secrets (SPREADSHEET_ID, service account)"},
		{name: "code", src: "Set main file path: `app.py`", text: "Set main file path:", kind: FragmentCode, fragText: "app.py"},
		{name: "link", src: "Deploy on [share.streamlit.io](https://share.streamlit.io)", text: "Deploy on", kind: FragmentLink, fragText: "share.streamlit.io", href: "https://share.streamlit.io"},
		{name: "autolink", src: "Open <https://example.com> now", text: "Open", kind: FragmentLink, fragText: "https://example.com", href: "https://example.com", tail: "now"},
		{name: "second fragment flattened", src: "Run `a` then `b`", text: "Run", kind: FragmentCode, fragText: "a", tail: "then b"},
		{name: "backslash escape", src: `Use 2\*3 here`, text: "Use 2*3 here"},
		{name: "entity", src: "Tom &amp; Jerry", text: "Tom & Jerry"},
		{name: "numeric reference", src: "Caf&#233; open", text: "Café open"},
		{name: "code span stays literal", src: "Escape with `\\*` and `&amp;`", text: "Escape with", kind: FragmentCode, fragText: `\*`, tail: "and &amp;"},
		{name: "escaped link label", src: `See [a\_b](https://example.com)`, text: "See", kind: FragmentLink, fragText: "a_b", href: "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.src)
			if strings.TrimSpace(got.Text) != tt.text {
				t.Fatalf("text = %q, want %q", got.Text, tt.text)
			}
			if strings.TrimSpace(got.Tail) != tt.tail {
				t.Fatalf("tail = %q, want %q", got.Tail, tt.tail)
			}
			if tt.kind == 0 {
				if got.Fragment != nil {
					t.Fatalf("unexpected fragment %+v", got.Fragment)
				}
				return
			}
			if got.Fragment == nil {
				t.Fatalf("missing fragment")
			}
			if got.Fragment.Kind != tt.kind || got.Fragment.Text != tt.fragText || got.Fragment.Href != tt.href {
				t.Fatalf("fragment = %+v, want %s %q %q", *got.Fragment, tt.kind, tt.fragText, tt.href)
			}
		})
	}
}

const sampleYAML = `
report:
  banner:
    title: Almost there
    body: One check left
  results:
    - name: Dependencies Check
      status: pass
      description: All dependencies verified
    - name: Import Tests
      status: fail
      description: gspread missing
  features: []
  steps:
    - "Upload to GitHub: ` + "`repo.git`" + `"
    - Deploy on [cloud](https://cloud.example)
preview:
  sections:
    - One
    - Two
`

func TestDecodeYAMLOverridesDefaults(t *testing.T) {
	b, err := Decode([]byte(sampleYAML), "yaml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r := b.Report
	if r.Banner.Title != "Almost there" {
		t.Fatalf("banner title = %q", r.Banner.Title)
	}
	if len(r.Results.Items) != 2 || r.Results.Items[1].Status != StatusFail {
		t.Fatalf("results = %+v", r.Results.Items)
	}
	if r.Features.Items == nil || len(r.Features.Items) != 0 {
		t.Fatalf("features should be explicitly empty, got %#v", r.Features.Items)
	}
	if r.Features.Title != DefaultReport().Features.Title {
		t.Fatalf("feature title should keep default, got %q", r.Features.Title)
	}
	cloud := r.Instructions.Cloud.Items
	if len(cloud) != 2 || cloud[1].Index != 2 {
		t.Fatalf("cloud steps = %+v", cloud)
	}
	if cloud[0].Fragment == nil || cloud[0].Fragment.Text != "repo.git" {
		t.Fatalf("step 1 fragment = %+v", cloud[0].Fragment)
	}
	if cloud[1].Fragment == nil || cloud[1].Fragment.Href != "https://cloud.example" {
		t.Fatalf("step 2 fragment = %+v", cloud[1].Fragment)
	}
	if got := len(r.Requirements.Items); got != 4 {
		t.Fatalf("requirements should keep defaults, got %d", got)
	}
	if got := b.Preview.Sections.Items; len(got) != 2 || got[0] != "One" || got[1] != "Two" {
		t.Fatalf("sections = %v", got)
	}
}

func TestDecodeRejectsUnknownStatus(t *testing.T) {
	src := "report:\n  results:\n    - name: Lint\n      status: skipped\n"
	_, err := Decode([]byte(src), ".yml")
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
	if !strings.Contains(err.Error(), "Lint") {
		t.Fatalf("error should name the record: %v", err)
	}
}

func TestDecodeTOML(t *testing.T) {
	src := `
[report]
requirements = ["Go 1.24"]
next_steps = ["Run ` + "`pospreview render`" + `"]

[preview.branding]
initials = "AB"
name = "Alpha Beta"
`
	b, err := Decode([]byte(src), "toml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := b.Report.Requirements.Items; len(got) != 1 || got[0] != "Go 1.24" {
		t.Fatalf("requirements = %v", got)
	}
	steps := b.Report.NextSteps.Items
	if len(steps) != 1 || steps[0].Fragment == nil || steps[0].Fragment.Text != "pospreview render" {
		t.Fatalf("next steps = %+v", steps)
	}
	if b.Preview.Branding.Initials != "AB" || b.Preview.Branding.Name != "Alpha Beta" {
		t.Fatalf("branding = %+v", b.Preview.Branding)
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte("{}"), ".json")
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("err = %v, want ErrUnsupportedContent", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Report.Banner.Body != "One check left" {
		t.Fatalf("banner body = %q", b.Report.Banner.Body)
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
