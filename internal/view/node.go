// Package view defines the framework-independent visual tree produced by the
// page composer and drawn by the render backends.
package view

// Kind names what a node is.
type Kind string

const (
	KindPage    Kind = "page"
	KindHeader  Kind = "header"
	KindLogo    Kind = "logo"
	KindBanner  Kind = "banner"
	KindRow     Kind = "row"
	KindCard    Kind = "card"
	KindBox     Kind = "box"
	KindHeading Kind = "heading"
	KindText    Kind = "text"
	KindFooter  Kind = "footer"

	// Containers produced by the panel renderer, one per mode.
	KindList       Kind = "list"
	KindStatusList Kind = "status_list"
	KindGrid       Kind = "grid"
	KindCode       Kind = "code"
	KindSteps      Kind = "steps"
	KindButtons    Kind = "buttons"

	// Items inside containers.
	KindItem   Kind = "item"
	KindStatus Kind = "status"
	KindChip   Kind = "chip"
	KindLine   Kind = "line"
	KindStep   Kind = "step"
	KindButton Kind = "button"
	KindNote   Kind = "note"

	// Inline runs inside steps and notes.
	KindCodeSpan Kind = "code_span"
	KindLink     Kind = "link"
)

// Tone is the semantic color of a node.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneBrand   Tone = "brand"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneInfo    Tone = "info"
	ToneMuted   Tone = "muted"
	ToneInverse Tone = "inverse"
)

// Icon is a glyph drawn before a node's text.
type Icon string

const (
	IconNone  Icon = ""
	IconCheck Icon = "✔"
	IconCross Icon = "✘"
	IconInfo  Icon = "ℹ"
	IconPlay  Icon = "▶"
	IconRepo  Icon = "⎇"
	IconDocs  Icon = "☰"
)

// Style is the style metadata carried by a node. Colors are "#rrggbb";
// BackgroundEnd, when set, turns Background into a gradient. Accent, set on
// the page, is the color brand-toned nodes use on the web.
type Style struct {
	Tone           Tone   `json:"tone,omitempty"`
	Accent         string `json:"accent,omitempty"`
	Background     string `json:"background,omitempty"`
	BackgroundEnd  string `json:"background_end,omitempty"`
	ItemBackground string `json:"item_background,omitempty"`
	Emphasis       bool   `json:"emphasis,omitempty"`
	Centered       bool   `json:"centered,omitempty"`
}

// Node is one element of the visual tree.
type Node struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Href     string `json:"href,omitempty"`
	Icon     Icon   `json:"icon,omitempty"`
	Index    int    `json:"index,omitempty"`
	Columns  int    `json:"columns,omitempty"`
	Style    Style  `json:"style,omitzero"`
	Children []Node `json:"children,omitempty"`
}

// ChildIDs returns the IDs of the direct children in order.
func (n Node) ChildIDs() []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}

// Find returns the first node in depth-first order with the given ID.
func (n Node) Find(id string) (Node, bool) {
	var found Node
	ok := false
	Walk(n, func(c Node) bool {
		if c.ID == id {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Count returns how many nodes of the given kind are in the tree.
func (n Node) Count(kind Kind) int {
	count := 0
	Walk(n, func(c Node) bool {
		if c.Kind == kind {
			count++
		}
		return true
	})
	return count
}

// Walk visits n and its descendants depth-first until fn returns false.
func Walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
