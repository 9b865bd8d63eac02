package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	NotFoundTitle     = "Página não encontrada | " + SiteTitle
	NotFoundHeading   = "Página não encontrada"
	NotFoundBackLabel = "Voltar para o início"
)

var backLinkStyle = CSS{
	{"margin-top", "2rem"},
	{"color", "#666"},
}

// NotFound is the body shown for unknown paths, rendered in the same hero
// container as the home page.
func NotFound() g.Node {
	return Div(
		heroContainer.Attr(),
		H1(headingStyle.Attr(), g.Text(NotFoundHeading)),
		A(Href("/"), backLinkStyle.Attr(), g.Text(NotFoundBackLabel)),
	)
}
