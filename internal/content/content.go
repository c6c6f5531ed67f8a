// Package content holds the static copy of the site: texts, links and
// donation details. It is compiled into the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

type Action struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Verse struct {
	Text      string `yaml:"text"`
	Reference string `yaml:"reference"`
}

type VerseLine struct {
	Number int    `yaml:"number"`
	Text   string `yaml:"text"`
}

type Pillar struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type SocialLink struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type Content struct {
	Site struct {
		Name        string `yaml:"name"`
		ShortName   string `yaml:"short_name"`
		Tagline     string `yaml:"tagline"`
		Description string `yaml:"description"`
	} `yaml:"site"`

	Hero struct {
		Verse           Verse  `yaml:"verse"`
		PrimaryAction   Action `yaml:"primary_action"`
		SecondaryAction Action `yaml:"secondary_action"`
	} `yaml:"hero"`

	About struct {
		Title   string   `yaml:"title"`
		Summary string   `yaml:"summary"`
		Pillars []Pillar `yaml:"pillars"`
		Verses  struct {
			Reference string      `yaml:"reference"`
			Lines     []VerseLine `yaml:"lines"`
		} `yaml:"verses"`
	} `yaml:"about"`

	Houses struct {
		Title        string `yaml:"title"`
		Intro        string `yaml:"intro"`
		CallToAction struct {
			Title string `yaml:"title"`
			Text  string `yaml:"text"`
			Label string `yaml:"label"`
			Href  string `yaml:"href"`
		} `yaml:"call_to_action"`
	} `yaml:"houses"`

	Contact struct {
		Title  string       `yaml:"title"`
		Intro  string       `yaml:"intro"`
		Email  string       `yaml:"email"`
		Note   string       `yaml:"note"`
		Social []SocialLink `yaml:"social"`
		Leader struct {
			Title string `yaml:"title"`
			Name  string `yaml:"name"`
			Bio   string `yaml:"bio"`
		} `yaml:"leader"`
	} `yaml:"contact"`

	Give struct {
		Title string `yaml:"title"`
		Intro string `yaml:"intro"`
		Till  struct {
			Label        string   `yaml:"label"`
			Number       string   `yaml:"number"`
			Recipient    string   `yaml:"recipient"`
			Instructions []string `yaml:"instructions"`
		} `yaml:"till"`
		Partner struct {
			Title      string   `yaml:"title"`
			Paragraphs []string `yaml:"paragraphs"`
			Label      string   `yaml:"label"`
			FormURL    string   `yaml:"form_url"`
		} `yaml:"partner"`
		Other struct {
			Title    string `yaml:"title"`
			Text     string `yaml:"text"`
			Footnote string `yaml:"footnote"`
		} `yaml:"other"`
	} `yaml:"give"`
}

// Default returns the compiled-in site content.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// MustDefault is like Default but panics on error.
func MustDefault() *Content {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates site content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

func (c *Content) Validate() error {
	if c.Site.Name == "" {
		return errors.New("site name is required")
	}
	if c.Contact.Email == "" {
		return errors.New("contact email is required")
	}
	if c.Give.Till.Number == "" {
		return errors.New("till number is required")
	}
	for _, s := range c.Contact.Social {
		if err := checkURL(s.URL); err != nil {
			return fmt.Errorf("social link %q: %w", s.Name, err)
		}
	}
	if err := checkURL(c.Give.Partner.FormURL); err != nil {
		return fmt.Errorf("partner form: %w", err)
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	return nil
}
