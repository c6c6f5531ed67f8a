package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daysoflight/internal/content"
	"daysoflight/internal/houses"
	"daysoflight/internal/model"
	"daysoflight/internal/sitecheck"
)

type fetcherFunc func(ctx context.Context) ([]model.House, error)

func (f fetcherFunc) Fetch(ctx context.Context) ([]model.House, error) { return f(ctx) }

var defaultNames = []string{
	"House of Thika",
	"House of Rongai",
	"House of Murang'a",
	"House of KU",
	"House of Kitengela",
	"House of AIU",
}

func newServer(t *testing.T, f houses.Fetcher, wait time.Duration) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	New(f, content.MustDefault(), wait).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func parseSection(t *testing.T, body string) *sitecheck.Section {
	t.Helper()
	s, err := sitecheck.ParseHouses(strings.NewReader(body))
	require.NoError(t, err)
	require.NoError(t, s.Check(houses.WelcomeText, houses.ComingSoonText))
	return s
}

func cardNames(s *sitecheck.Section) []string {
	var out []string
	for _, c := range s.Cards {
		out = append(out, c.Name)
	}
	return out
}

func TestIndexRendersLiveHouses(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return []model.House{
			{ID: 7, Name: "House of Ruiru", Day: "Friday", Time: "6:00pm - 8:00pm", Location: "Ruiru", IsActive: true},
			{ID: 8, Name: "House of Juja", Day: "Coming Soon", Time: "TBA", Location: "Juja", IsActive: false},
		}, nil
	}), time.Second)

	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-store")

	s := parseSection(t, body)
	assert.Equal(t, "live", s.Source)
	assert.Equal(t, []string{"House of Ruiru", "House of Juja"}, cardNames(s))
	assert.Empty(t, s.Notice)
	assert.Empty(t, s.Loading)
	assert.NotContains(t, body, "House of Thika")

	assert.Equal(t, "Friday", s.Cards[0].Day)
	assert.Equal(t, houses.WelcomeText, s.Cards[0].Footer)
	assert.Equal(t, houses.ComingSoonText, s.Cards[1].Footer)
}

func TestIndexFallsBackOnError(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return nil, errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")
	}), time.Second)

	_, body := get(t, srv.URL+"/")
	s := parseSection(t, body)

	assert.Equal(t, "fallback", s.Source)
	assert.Equal(t, houses.FallbackNotice, s.Notice)
	assert.Empty(t, s.Loading)
	assert.Equal(t, defaultNames, cardNames(s))

	last := s.Cards[len(s.Cards)-1]
	assert.False(t, last.Active)
	assert.Equal(t, houses.ComingSoonText, last.Footer)
}

func TestIndexFallsBackOnEmptySuccess(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return []model.House{}, nil
	}), time.Second)

	_, body := get(t, srv.URL+"/")
	s := parseSection(t, body)

	assert.Equal(t, "fallback", s.Source)
	assert.Empty(t, s.Notice)
	assert.Equal(t, defaultNames, cardNames(s))
}

func TestIndexShowsLoadingWithDefaults(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		<-release
		return nil, nil
	}), 10*time.Millisecond)

	_, body := get(t, srv.URL+"/")
	s := parseSection(t, body)

	assert.Equal(t, houses.LoadingLabel, s.Loading)
	assert.Empty(t, s.Notice)
	assert.Equal(t, defaultNames, cardNames(s))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("#houses .spinner").Length())
}

func TestIndexSections(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return nil, houses.ErrNetworkOrServer
	}), time.Second)

	_, body := get(t, srv.URL+"/")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)

	for _, id := range []string{"home", "about", "houses", "contact"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), id)
	}
	assert.Equal(t, "Days of Light | Full of Glory", doc.Find("title").Text())
	assert.Equal(t, 6, doc.Find("#contact .social-link").Length())
	assert.Equal(t, "mailto:daysoflightfullofglory@gmail.com", doc.Find("#contact a.email").AttrOr("href", ""))
	assert.Equal(t, 4, doc.Find("#about .verse-line").Length())

	telegram := doc.Find("#contact .social-link a").First()
	assert.Equal(t, "https://t.me/daysoflightfullofglory", telegram.AttrOr("href", ""))
	assert.Equal(t, "_blank", telegram.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", telegram.AttrOr("rel", ""))
}

func TestHousesFragment(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return nil, houses.ErrNetworkOrServer
	}), time.Second)

	_, body := get(t, srv.URL+"/houses")
	assert.NotContains(t, body, "<html")
	s := parseSection(t, body)
	assert.Len(t, s.Cards, 6)
}

func TestGive(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		t.Error("give page must not fetch houses")
		return nil, nil
	}), time.Second)

	resp, body := get(t, srv.URL+"/give")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "Give | D.O.L", doc.Find("title").Text())
	assert.Equal(t, "9350131", doc.Find(".till-number").Text())
	assert.Equal(t, "Purity Buyanzi Mukhwana", doc.Find(".till-recipient").Text())
	assert.Equal(t, "https://forms.gle/your-google-form-id", doc.Find(".partner a").AttrOr("href", ""))
}

func TestHealthStaticAndNotFound(t *testing.T) {
	srv := newServer(t, fetcherFunc(func(ctx context.Context) ([]model.House, error) {
		return nil, nil
	}), time.Second)

	resp, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, body = get(t, srv.URL+"/static/site.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, ".house-footer")

	resp, _ = get(t, srv.URL+"/sermons")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
