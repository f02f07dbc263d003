// Package content holds the literal records shown by the preview views:
// branding, features, test outcomes, deployment steps and section labels.
//
// Records are plain values. The Default* accessors build a fresh copy on
// every call so no caller can alias another caller's slices.
package content

// FeatureItem is one display string, usually an emoji followed by a label.
type FeatureItem string

// Section is a category label rendered as a chip.
type Section string

// TestResult is the outcome of one readiness check.
type TestResult struct {
	Name        string
	Status      Status
	Description string
}

// FragmentKind tells how an embedded fragment is drawn.
type FragmentKind uint8

const (
	FragmentCode FragmentKind = iota + 1
	FragmentLink
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentCode:
		return "code"
	case FragmentLink:
		return "link"
	default:
		return "unknown"
	}
}

// Fragment is a code span or link embedded in a line of text.
type Fragment struct {
	Kind FragmentKind
	Text string
	Href string
}

// Inline is a line of text with at most one embedded fragment.
// Text comes before the fragment and Tail after it.
type Inline struct {
	Text     string
	Fragment *Fragment
	Tail     string
}

// Plain returns the line with the fragment flattened to its text.
func (l Inline) Plain() string {
	if l.Fragment == nil {
		return l.Text + l.Tail
	}
	return l.Text + l.Fragment.Text + l.Tail
}

// InstructionStep is one numbered step. Index is 1-based.
type InstructionStep struct {
	Index int
	Inline
}

// Collection is a titled, ordered run of records.
type Collection[T any] struct {
	Title string
	Items []T
}

// Header is the gradient heading of the report view.
type Header struct {
	Title    string `yaml:"title" toml:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	Credits  string `yaml:"credits" toml:"credits"`
}

// Banner is the text of the status banner when every check passes.
type Banner struct {
	Title string `yaml:"title" toml:"title"`
	Body  string `yaml:"body" toml:"body"`
}

// Footer is the closing block of a view.
type Footer struct {
	Title string `yaml:"title" toml:"title"`
	Body  string `yaml:"body" toml:"body"`
}

// Command is a titled block of shell lines.
type Command struct {
	Title string
	Lines []string
}

// ActionIcon names the icon drawn on a static button.
type ActionIcon string

const (
	ActionRun  ActionIcon = "run"
	ActionRepo ActionIcon = "repo"
	ActionDocs ActionIcon = "docs"
)

// Action is a button with no attached behavior.
type Action struct {
	Label   string
	Icon    ActionIcon
	Primary bool
}

// Note is a labelled informational callout.
type Note struct {
	Label string
	Inline
}

// Instructions is the "how to run" card of the report view.
type Instructions struct {
	Title   string
	Local   Command
	Cloud   Collection[InstructionStep]
	Login   Note
	Actions []Action
}

// Report is the deployment-readiness view.
type Report struct {
	Header       Header
	Banner       Banner
	Results      Collection[TestResult]
	Features     Collection[FeatureItem]
	Instructions Instructions
	Requirements Collection[string]
	NextSteps    Collection[InstructionStep]
	Footer       Footer
}

// Branding is the logo block of the branding preview.
type Branding struct {
	Initials string `yaml:"initials" toml:"initials"`
	Name     string `yaml:"name" toml:"name"`
	Owner    string `yaml:"owner" toml:"owner"`
	Designer string `yaml:"designer" toml:"designer"`
}

// Preview is the branding preview view.
type Preview struct {
	Branding Branding
	Title    string
	Intro    string
	Features Collection[FeatureItem]
	Sections Collection[Section]
	Logo     LogoIntegration
	Footer   Footer
}

// LogoIntegration lists where the logo appears.
type LogoIntegration struct {
	Title  string
	Intro  string
	Places []string
}

// Bundle holds the records of both views.
type Bundle struct {
	Report  Report
	Preview Preview
}

// Passing reports how many results passed.
func Passing(results []TestResult) int {
	n := 0
	for _, r := range results {
		if r.Status == StatusPass {
			n++
		}
	}
	return n
}
