package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"daysoflight/internal/content"
	"daysoflight/internal/houses"
)

// Home renders the single-page layout.
func Home(c *content.Content, v houses.View) g.Node {
	return Page(c, c.Site.Name+" | "+c.Site.Tagline, c.Site.Description,
		Hero(c),
		About(c),
		Houses(c, v),
		Contact(c),
	)
}

func Hero(c *content.Content) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("hero"),
		h.H1(g.Text("Days of "), h.Span(h.Class("highlight"), g.Text("Light"))),
		h.P(h.Class("tagline"), g.Text(c.Site.Tagline)),
		h.P(h.Class("mission"), g.Text(c.Site.Description)),
		h.Div(
			h.Class("verse"),
			h.P(h.Class("verse-text"), g.Text(c.Hero.Verse.Text)),
			h.P(h.Class("verse-ref"), g.Text("- "+c.Hero.Verse.Reference)),
		),
		h.Div(
			h.Class("actions"),
			h.A(h.Class("button primary"), h.Href(c.Hero.PrimaryAction.Href), g.Text(c.Hero.PrimaryAction.Label)),
			h.A(h.Class("button outline"), h.Href(c.Hero.SecondaryAction.Href), g.Text(c.Hero.SecondaryAction.Label)),
		),
	)
}

func About(c *content.Content) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("about"),
		sectionHeading(c.About.Title, ""),
		h.P(h.Class("summary"), g.Text(c.About.Summary)),
		h.Div(
			h.Class("grid three"),
			g.Map(c.About.Pillars, func(p content.Pillar) g.Node {
				return h.Div(
					h.Class("card pillar"),
					h.H3(g.Text(p.Title)),
					h.P(g.Text(p.Text)),
				)
			}),
		),
		h.Div(
			h.Class("card verses"),
			h.H3(g.Text("Ministry Verses")),
			g.Map(c.About.Verses.Lines, func(l content.VerseLine) g.Node {
				return h.P(
					h.Class("verse-line"),
					h.Span(h.Class("verse-number"), g.Textf("%d", l.Number)),
					g.Text(l.Text),
				)
			}),
			h.P(h.Class("verse-ref"), g.Text("- "+c.About.Verses.Reference)),
		),
	)
}

func Contact(c *content.Content) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("contact"),
		sectionHeading(c.Contact.Title, c.Contact.Intro),
		h.Div(
			h.Class("card get-in-touch"),
			h.H3(g.Text("Get In Touch")),
			h.P(g.Text("Email us at:")),
			h.A(h.Class("email"), h.Href("mailto:"+c.Contact.Email), g.Text(c.Contact.Email)),
			h.P(h.Class("note"), g.Text(c.Contact.Note)),
		),
		h.Div(
			h.Class("grid three social"),
			g.Map(c.Contact.Social, func(s content.SocialLink) g.Node {
				return h.Div(
					h.Class("card social-link"),
					h.H4(g.Text(s.Name)),
					h.P(g.Text(s.Description)),
					externalLink(s.URL, h.Class("button outline small"), g.Text("Connect")),
				)
			}),
		),
		h.Div(
			h.Class("card leader"),
			h.H3(g.Text(c.Contact.Leader.Title)),
			h.H4(g.Text(c.Contact.Leader.Name)),
			h.P(g.Text(c.Contact.Leader.Bio)),
		),
	)
}
