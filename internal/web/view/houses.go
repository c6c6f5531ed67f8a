package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"daysoflight/internal/content"
	"daysoflight/internal/houses"
	"daysoflight/internal/model"
)

// Houses renders the houses section for v. The loading indicator is shown
// alongside the list, never instead of it.
func Houses(c *content.Content, v houses.View) g.Node {
	cta := c.Houses.CallToAction
	return h.Section(
		h.ID("houses"),
		h.Class("houses"),
		g.Attr("data-source", source(v)),
		sectionHeading(c.Houses.Title, c.Houses.Intro),
		g.If(v.Loading,
			h.Div(
				h.Class("status loading"),
				g.Attr("role", "status"),
				h.Span(h.Class("spinner"), g.Attr("aria-hidden", "true")),
				h.Span(h.Class("status-label"), g.Text(houses.LoadingLabel)),
			),
		),
		g.If(v.Notice != "",
			h.Div(
				h.Class("status notice"),
				g.Attr("role", "alert"),
				h.P(g.Text(v.Notice)),
			),
		),
		h.Div(
			h.Class("grid three house-grid"),
			g.Map(v.Houses, HouseCard),
		),
		h.Div(
			h.Class("card call-to-action"),
			h.H3(g.Text(cta.Title)),
			h.P(g.Text(cta.Text)),
			h.A(h.Href(cta.Href), g.Text(cta.Label)),
		),
	)
}

// HouseCard renders one house.
func HouseCard(m model.House) g.Node {
	footerClass := "house-footer welcome"
	if !m.IsActive {
		footerClass = "house-footer coming-soon"
	}
	return h.Div(
		h.Class("card house"),
		g.Attr("data-active", boolAttr(m.IsActive)),
		h.H3(h.Class("house-name"), g.Text(m.Name)),
		h.P(h.Class("house-day"), g.Text(m.Day)),
		h.P(h.Class("house-time"), g.Text(m.Time)),
		h.P(h.Class("house-location"), g.Text(m.Location)),
		g.If(m.Description != "", h.P(h.Class("house-description"), g.Text(m.Description))),
		h.P(h.Class(footerClass), g.Text(houses.Invitation(m))),
	)
}

func source(v houses.View) string {
	if v.Live {
		return "live"
	}
	return "fallback"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
