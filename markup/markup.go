// Package markup loads element subtrees from markup text using
// golang.org/x/net/html as the underlying parser, and serializes subtrees
// back to markup. Selector matching and stylesheet handling stay outside;
// only the inline style attribute is interpreted here.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/AYColumbia/quill/scene"
)

// Parse parses markup text and returns the instantiated element subtrees of
// the body, detached and ready to attach to a document.
func Parse(content string) ([]*scene.Element, error) {
	return ParseReader(strings.NewReader(content))
}

// ParseReader parses markup from an io.Reader.
func ParseReader(r io.Reader) ([]*scene.Element, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	body := findBody(root)
	if body == nil {
		return nil, nil
	}
	var elements []*scene.Element
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if e := convertNode(n); e != nil {
			elements = append(elements, e)
		}
	}
	return elements, nil
}

// LoadDocument parses markup text and attaches the resulting subtrees under
// the document's root.
func LoadDocument(doc *scene.Document, content string) error {
	elements, err := Parse(content)
	if err != nil {
		return err
	}
	for _, e := range elements {
		doc.Root().AppendChild(e)
	}
	return nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// convertNode converts one parsed element node. Text and comment nodes have
// no scene representation and convert to nil; non-blank text becomes a "#text"
// element carrying the text in its "text" attribute, matching how the tree
// stores content it does not lay out itself.
func convertNode(n *html.Node) *scene.Element {
	switch n.Type {
	case html.ElementNode:
		e := scene.NewElement(n.Data)
		attributes := make(map[string]string, len(n.Attr))
		for _, attr := range n.Attr {
			if attr.Key == "style" {
				applyInlineStyle(e, attr.Val)
				continue
			}
			attributes[attr.Key] = attr.Val
		}
		if len(attributes) > 0 {
			e.SetAttributes(attributes)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				e.AppendChild(child)
			}
		}
		return e
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}
		e := scene.NewElement("#text")
		e.SetAttribute("text", text)
		return e
	}
	return nil
}

// applyInlineStyle applies "name: value; ..." declarations as local
// properties. Unknown names are reported through the element's document and
// skipped.
func applyInlineStyle(e *scene.Element, styleText string) {
	for _, decl := range strings.Split(styleText, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		e.SetProperty(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

// InnerMarkup serializes the children of e back to markup text.
func InnerMarkup(e *scene.Element) string {
	var sb strings.Builder
	for i := 0; i < e.NumChildren(); i++ {
		writeMarkup(&sb, e.Child(i))
	}
	return sb.String()
}

// OuterMarkup serializes e itself, children included.
func OuterMarkup(e *scene.Element) string {
	var sb strings.Builder
	writeMarkup(&sb, e)
	return sb.String()
}

func writeMarkup(sb *strings.Builder, e *scene.Element) {
	if e.Tag() == "#text" {
		text, _ := e.Attribute("text")
		sb.WriteString(html.EscapeString(text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(e.Tag())
	if id := e.Id(); id != "" {
		fmt.Fprintf(sb, ` id="%s"`, html.EscapeString(id))
	}
	if classes := e.ClassNames(); classes != "" {
		fmt.Fprintf(sb, ` class="%s"`, html.EscapeString(classes))
	}
	for _, name := range e.AttributeNames() {
		if name == "id" || name == "class" {
			continue
		}
		value, _ := e.Attribute(name)
		fmt.Fprintf(sb, ` %s="%s"`, name, html.EscapeString(value))
	}
	sb.WriteByte('>')
	for i := 0; i < e.NumChildren(); i++ {
		writeMarkup(sb, e.Child(i))
	}
	fmt.Fprintf(sb, "</%s>", e.Tag())
}
