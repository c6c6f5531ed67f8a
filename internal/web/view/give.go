package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"daysoflight/internal/content"
)

// Give renders the donation page.
func Give(c *content.Content) g.Node {
	give := c.Give
	return Page(c, "Give | "+c.Site.ShortName, "Support "+c.Site.ShortName+" through donations or by becoming a partner",
		h.Section(
			h.ID("give"),
			h.Class("give-hero"),
			h.H1(g.Text(give.Title)),
			h.P(g.Text(give.Intro)),
		),
		h.Div(
			h.Class("grid two give-options"),
			h.Div(
				h.Class("card giving"),
				h.H2(g.Text("Giving")),
				h.Div(
					h.Class("till"),
					h.H3(g.Text(give.Till.Label)),
					h.P(h.Class("till-number"), g.Text(give.Till.Number)),
					h.P(h.Class("till-recipient"), g.Text(give.Till.Recipient)),
				),
				g.Map(give.Till.Instructions, func(s string) g.Node {
					return h.P(g.Text(s))
				}),
			),
			h.Div(
				h.Class("card partner"),
				h.H2(g.Text(give.Partner.Title)),
				g.Map(give.Partner.Paragraphs, func(s string) g.Node {
					return h.P(g.Text(s))
				}),
				externalLink(give.Partner.FormURL, h.Class("button primary wide"), g.Text(give.Partner.Label)),
			),
		),
		h.Div(
			h.Class("other-ways"),
			h.H2(g.Text(give.Other.Title)),
			h.P(
				g.Text(give.Other.Text+" "),
				h.A(h.Href("mailto:"+c.Contact.Email), g.Text(c.Contact.Email)),
				g.Text("."),
			),
			h.P(h.Class("footnote"), g.Text(give.Other.Footnote)),
		),
	)
}
