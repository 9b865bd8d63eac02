package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/atlasbanco/website/internal/testutil"
)

func TestLayout_DocumentShell(t *testing.T) {
	doc := testutil.Render(t, Layout(PageConfig{}))
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))

	root := testutil.ParseHTML(t, doc)

	htmlEl := testutil.FindFirst(root, "html")
	require.NotNil(t, htmlEl)
	assert.Equal(t, "pt-BR", testutil.Attr(htmlEl, "lang"))

	var charset string
	for _, m := range testutil.FindAll(root, "meta") {
		if v := testutil.Attr(m, "charset"); v != "" {
			charset = v
		}
	}
	assert.Equal(t, "utf-8", charset)
	assert.Equal(t, "width=device-width, initial-scale=1", testutil.MetaContent(root, "viewport"))

	body := testutil.FindFirst(root, "body")
	require.NotNil(t, body)
	assert.Equal(t, "margin: 0; padding: 0; font-family: system-ui, -apple-system, sans-serif", testutil.Attr(body, "style"))
}

func TestLayout_Metadata(t *testing.T) {
	tests := []struct {
		name            string
		config          PageConfig
		wantTitle       string
		wantDescription string
	}{
		{"defaults", PageConfig{}, SiteTitle, SiteDescription},
		{"custom title", PageConfig{Title: "Contas"}, "Contas", SiteDescription},
		{"custom both", PageConfig{Title: "Cartões", Description: "Cartões sem anuidade"}, "Cartões", "Cartões sem anuidade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.ParseHTML(t, testutil.Render(t, Layout(tt.config)))

			titles := testutil.FindAll(root, "title")
			require.Len(t, titles, 1)
			assert.Equal(t, tt.wantTitle, testutil.Text(titles[0]))
			assert.Equal(t, tt.wantDescription, testutil.MetaContent(root, "description"))
		})
	}
}

func TestLayout_ContentPlacedUnmodified(t *testing.T) {
	children := []g.Node{
		g.Raw(`<section id="raw"><b>conteúdo</b></section>`),
		g.Text("saldo < limite & juros"),
		Span(ID("x"), g.Text("fim")),
	}

	want := testutil.Render(t, g.Group(children))
	doc := testutil.Render(t, Layout(PageConfig{}, children...))

	openBody := `<body style="margin: 0; padding: 0; font-family: system-ui, -apple-system, sans-serif">`
	assert.Contains(t, doc, openBody+want+"</body>")
}

func TestLayout_NoContent(t *testing.T) {
	doc := testutil.Render(t, Layout(PageConfig{}))
	assert.Contains(t, doc, `sans-serif"></body>`)
}
