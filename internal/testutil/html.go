// Package testutil holds helpers shared by package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// Render renders n to a string, failing the test on error.
func Render(t testing.TB, n g.Node) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

// ParseHTML parses a full document.
func ParseHTML(t testing.TB, doc string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

// FindAll returns every element named tag below n, in document order.
func FindAll(n *html.Node, tag string) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			results = append(results, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return results
}

// FindFirst returns the first element named tag, or nil.
func FindFirst(n *html.Node, tag string) *html.Node {
	if all := FindAll(n, tag); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Elements returns the element children of n.
func Elements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of key on n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text concatenates all text below n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// MetaContent returns the content of <meta name=name>, or "".
func MetaContent(root *html.Node, name string) string {
	for _, m := range FindAll(root, "meta") {
		if Attr(m, "name") == name {
			return Attr(m, "content")
		}
	}
	return ""
}

// ElementsWithText returns every element whose own text equals text.
func ElementsWithText(root *html.Node, text string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			var own strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					own.WriteString(c.Data)
				}
			}
			if own.String() == text {
				out = append(out, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}
