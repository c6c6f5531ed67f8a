// Package view renders the pages of the site with gomponents.
package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"daysoflight/internal/content"
)

// Page wraps body in the document shell shared by every page.
func Page(c *content.Content, title, description string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(description)),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(
				siteHeader(c),
				h.Main(body...),
				siteFooter(c),
			),
		),
	)
}

func siteHeader(c *content.Content) g.Node {
	return h.Header(
		h.Class("site-header"),
		h.A(h.Class("brand"), h.Href("/"), g.Text(c.Site.Name)),
		h.Nav(
			h.Class("site-nav"),
			h.A(h.Href("/#home"), g.Text("Home")),
			h.A(h.Href("/#about"), g.Text("About")),
			h.A(h.Href("/#houses"), g.Text("Houses")),
			h.A(h.Href("/#contact"), g.Text("Contact")),
			h.A(h.Class("nav-give"), h.Href("/give"), g.Text("Give")),
		),
	)
}

func siteFooter(c *content.Content) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.P(g.Textf("%s · %s", c.Site.Name, c.Site.Tagline)),
	)
}

func sectionHeading(title, intro string) g.Node {
	return h.Div(
		h.Class("section-heading"),
		h.H2(g.Text(title)),
		h.Div(h.Class("divider")),
		g.If(intro != "", h.P(h.Class("lead"), g.Text(intro))),
	)
}

func externalLink(href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Group(children))
}
