package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdown = goldmark.New()

// ParseInline reads one line of inline Markdown and lifts the first code
// span or link into the returned Fragment. Later code spans and links are
// flattened into the tail as plain text.
func ParseInline(src string) Inline {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var head, tail bytes.Buffer
	var frag *Fragment
	out := &head

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			out.Write(decode(node.Segment.Value(source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				out.WriteByte(' ')
			}
		case *ast.String:
			out.Write(node.Value)
		case *ast.CodeSpan:
			label := inlineText(node, source, false)
			if frag == nil {
				frag = &Fragment{Kind: FragmentCode, Text: label}
				out = &tail
			} else {
				out.WriteString(label)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			label := inlineText(node, source, true)
			if frag == nil {
				frag = &Fragment{Kind: FragmentLink, Text: label, Href: string(node.Destination)}
				out = &tail
			} else {
				out.WriteString(label)
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			label := string(node.Label(source))
			if frag == nil {
				frag = &Fragment{Kind: FragmentLink, Text: label, Href: string(node.URL(source))}
				out = &tail
			} else {
				out.WriteString(label)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return Inline{Text: head.String(), Fragment: frag, Tail: tail.String()}
}

// inlineText flattens the children of n. Code span content is literal, so
// escapes and entities are only resolved when resolve is set.
func inlineText(n ast.Node, source []byte, resolve bool) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			v := node.Segment.Value(source)
			if resolve {
				v = decode(v)
			}
			buf.Write(v)
		case *ast.String:
			buf.Write(node.Value)
		case *ast.CodeSpan:
			buf.WriteString(inlineText(c, source, false))
		default:
			buf.WriteString(inlineText(c, source, resolve))
		}
	}
	return buf.String()
}

// decode resolves backslash escapes and character references in raw text.
func decode(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
