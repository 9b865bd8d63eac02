package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	HomeHeading     = SiteTitle
	HomeSubtitle    = "Bem-vindo ao Atlas Banco Digital"
	HomeDescription = "Projeto completo de um banco digital inspirado no Bank of America. Site responsivo com frontend, backend, autenticação admin, captura de leads e dashboard administrativo."
)

// heroContainer centres its children on both axes across the full viewport.
var heroContainer = CSS{
	{"display", "flex"},
	{"flex-direction", "column"},
	{"align-items", "center"},
	{"justify-content", "center"},
	{"min-height", "100vh"},
	{"background-color", "#f5f5f5"},
}

var (
	headingStyle = CSS{
		{"font-size", "3rem"},
		{"font-weight", "bold"},
		{"margin-bottom", "1rem"},
	}
	subtitleStyle = CSS{
		{"font-size", "1.2rem"},
		{"color", "#666"},
	}
	descriptionStyle = CSS{
		{"margin-top", "2rem"},
		{"color", "#999"},
		{"text-align", "center"},
		{"max-width", "600px"},
	}
)

func Home() g.Node {
	return Div(
		heroContainer.Attr(),
		H1(headingStyle.Attr(), g.Text(HomeHeading)),
		P(subtitleStyle.Attr(), g.Text(HomeSubtitle)),
		P(descriptionStyle.Attr(), g.Text(HomeDescription)),
	)
}
