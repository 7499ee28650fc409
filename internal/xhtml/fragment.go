package xhtml

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Prefix is the namespace prefix used for rendered elements.
const Prefix = "xhtml"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Wrap puts s in the container element every XHTML value is rooted at.
func Wrap(s string) string {
	return "<div>" + s + "</div>"
}

// Convert sanitizes s, wraps it and renders the XML fragment.
func Convert(s string) (string, error) {
	return Fragment(Wrap(Sanitize(s)))
}

// Fragment parses an HTML fragment and renders it as namespaced XML.
// Elements without children are self-closed; comments are dropped.
func Fragment(s string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse rich text")
	}

	var sb strings.Builder
	for _, n := range nodes {
		render(&sb, n)
	}

	return sb.String(), nil
}

// isName reports whether s is an XML name without a prefix.
func isName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}

	return true
}

// xmlChars replaces runes XML 1.0 does not allow with U+FFFD.
func xmlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r',
			r >= 0x20 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= unicode.MaxRune:
			return r
		default:
			return '\uFFFD'
		}
	}, s)
}

func render(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(textEscaper.Replace(xmlChars(n.Data)))
	case html.ElementNode:
		if !isName(n.Data) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				render(sb, c)
			}

			return
		}

		sb.WriteString("<" + Prefix + ":" + n.Data)

		for _, a := range n.Attr {
			if a.Namespace != "" || !isName(a.Key) {
				continue
			}

			sb.WriteString(" " + a.Key + `="` + attrEscaper.Replace(xmlChars(a.Val)) + `"`)
		}

		if n.FirstChild == nil {
			sb.WriteString("/>")
			return
		}

		sb.WriteString(">")

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(sb, c)
		}

		sb.WriteString("</" + Prefix + ":" + n.Data + ">")
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(sb, c)
		}
	}
}
