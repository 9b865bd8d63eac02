package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	SiteLang        = "pt-BR"
	SiteTitle       = "Atlas Banco Digital"
	SiteDescription = "Banco digital com full-stack moderno"
)

type PageConfig struct {
	Title       string
	Description string
}

var bodyStyle = CSS{
	{"margin", "0"},
	{"padding", "0"},
	{"font-family", "system-ui, -apple-system, sans-serif"},
}

// Layout renders the document shell and places content, untouched, inside
// the body.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = SiteTitle
	}

	if config.Description == "" {
		config.Description = SiteDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(SiteLang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
			),
			Body(
				bodyStyle.Attr(),
				g.Group(content),
			),
		),
	})
}
