// Package panel turns one typed record collection into a view subtree.
//
// Each block function renders in one mode: List (list), StatusList
// (status-list), CodeBlock (code-block), ChipRow (chip-row) and Steps.
// Output order always equals input order, and an empty collection yields
// an empty container rather than an error or placeholder.
package panel

import (
	"strconv"

	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/view"
)

// ItemID returns the ID of the i-th item inside the container parent.
func ItemID(parent string, i int) string {
	return parent + "." + strconv.Itoa(i)
}

func itemStyle(st view.Style) view.Style {
	return view.Style{Tone: st.Tone, Background: st.ItemBackground}
}

// List renders one item per string.
func List(id string, items []string, st view.Style) view.Node {
	n := view.Node{Kind: view.KindList, ID: id, Style: st, Children: make([]view.Node, 0, len(items))}
	for i, text := range items {
		n.Children = append(n.Children, view.Node{Kind: view.KindItem, ID: ItemID(id, i), Text: text, Style: itemStyle(st)})
	}
	return n
}

// ChipRow renders labels as chips inside a grid. columns is a hint for
// backends that lay out a grid; zero means one column per chip.
func ChipRow(id string, labels []string, columns int, st view.Style) view.Node {
	n := view.Node{Kind: view.KindGrid, ID: id, Columns: columns, Style: st, Children: make([]view.Node, 0, len(labels))}
	for i, label := range labels {
		n.Children = append(n.Children, view.Node{Kind: view.KindChip, ID: ItemID(id, i), Text: label, Style: itemStyle(st)})
	}
	return n
}

// Features renders feature strings as a chip row.
func Features(id string, items []content.FeatureItem, columns int, st view.Style) view.Node {
	labels := make([]string, len(items))
	for i, f := range items {
		labels[i] = string(f)
	}
	return ChipRow(id, labels, columns, st)
}

// Sections renders section labels as a single-line chip row.
func Sections(id string, items []content.Section, st view.Style) view.Node {
	labels := make([]string, len(items))
	for i, s := range items {
		labels[i] = string(s)
	}
	return ChipRow(id, labels, 0, st)
}

// StatusList renders one row per result. The row's icon and tone come from
// MarkFor(result.Status).
func StatusList(id string, results []content.TestResult, st view.Style) view.Node {
	n := view.Node{Kind: view.KindStatusList, ID: id, Style: st, Children: make([]view.Node, 0, len(results))}
	for i, r := range results {
		mark := MarkFor(r.Status)
		n.Children = append(n.Children, view.Node{
			Kind:  view.KindStatus,
			ID:    ItemID(id, i),
			Title: r.Name,
			Text:  r.Description,
			Icon:  mark.Icon,
			Style: view.Style{Tone: mark.Tone},
		})
	}
	return n
}

// CodeBlock renders command lines verbatim, blank lines included.
func CodeBlock(id string, lines []string, st view.Style) view.Node {
	n := view.Node{Kind: view.KindCode, ID: id, Style: st, Children: make([]view.Node, 0, len(lines))}
	for i, line := range lines {
		n.Children = append(n.Children, view.Node{Kind: view.KindLine, ID: ItemID(id, i), Text: line})
	}
	return n
}

// Steps renders numbered steps with their embedded fragment.
func Steps(id string, steps []content.InstructionStep, st view.Style) view.Node {
	n := view.Node{Kind: view.KindSteps, ID: id, Style: st, Children: make([]view.Node, 0, len(steps))}
	for i, s := range steps {
		sid := ItemID(id, i)
		n.Children = append(n.Children, view.Node{
			Kind:     view.KindStep,
			ID:       sid,
			Index:    s.Index,
			Text:     s.Plain(),
			Children: Inline(sid, s.Inline),
		})
	}
	return n
}

// Inline splits a line into text, code span and link runs. Empty runs are
// dropped.
func Inline(id string, l content.Inline) []view.Node {
	runs := make([]view.Node, 0, 3)
	add := func(n view.Node) {
		n.ID = ItemID(id, len(runs))
		runs = append(runs, n)
	}
	if l.Text != "" {
		add(view.Node{Kind: view.KindText, Text: l.Text})
	}
	if f := l.Fragment; f != nil {
		switch f.Kind {
		case content.FragmentLink:
			add(view.Node{Kind: view.KindLink, Text: f.Text, Href: f.Href})
		default:
			add(view.Node{Kind: view.KindCodeSpan, Text: f.Text})
		}
	}
	if l.Tail != "" {
		add(view.Node{Kind: view.KindText, Text: l.Tail})
	}
	return runs
}

// Note renders a labelled callout.
func Note(id string, note content.Note, st view.Style) view.Node {
	return view.Node{
		Kind:     view.KindNote,
		ID:       id,
		Title:    note.Label,
		Text:     note.Plain(),
		Icon:     view.IconInfo,
		Style:    st,
		Children: Inline(id, note.Inline),
	}
}

// Buttons renders static action buttons. They carry no behavior.
func Buttons(id string, actions []content.Action, st view.Style) view.Node {
	n := view.Node{Kind: view.KindButtons, ID: id, Style: st, Children: make([]view.Node, 0, len(actions))}
	for i, a := range actions {
		n.Children = append(n.Children, view.Node{
			Kind:  view.KindButton,
			ID:    ItemID(id, i),
			Text:  a.Label,
			Icon:  actionIcon(a.Icon),
			Style: view.Style{Tone: st.Tone, Emphasis: a.Primary},
		})
	}
	return n
}

func actionIcon(icon content.ActionIcon) view.Icon {
	switch icon {
	case content.ActionRun:
		return view.IconPlay
	case content.ActionRepo:
		return view.IconRepo
	case content.ActionDocs:
		return view.IconDocs
	default:
		return view.IconNone
	}
}

// Card wraps blocks in a titled panel.
func Card(id, title string, st view.Style, blocks ...view.Node) view.Node {
	return view.Node{Kind: view.KindCard, ID: id, Title: title, Style: st, Children: blocks}
}

// Box is a titled panel nested inside a card.
func Box(id, title string, st view.Style, blocks ...view.Node) view.Node {
	return view.Node{Kind: view.KindBox, ID: id, Title: title, Style: st, Children: blocks}
}

// Heading is a sub-heading inside a card.
func Heading(id, text string) view.Node {
	return view.Node{Kind: view.KindHeading, ID: id, Text: text}
}

// Text is a paragraph.
func Text(id, text string, st view.Style) view.Node {
	return view.Node{Kind: view.KindText, ID: id, Text: text, Style: st}
}
