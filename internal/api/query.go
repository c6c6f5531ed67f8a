package api

import (
	"cmp"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"daysoflight/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	lastPage        = -1
)

var errInvalidPage = errors.New("invalid page")

type orderField struct {
	name string
	desc bool
}

var defaultOrdering = []orderField{{name: "order"}, {name: "name"}}

// listQuery holds the filters, ordering and pagination of a listing request.
type listQuery struct {
	day      string
	search   string
	ordering []orderField
	page     int // 0 marks an unparsable page
	pageSize int
}

// orderingFields maps accepted ordering names to the house field they sort by.
var orderingFields = map[string]string{
	"order":       "order",
	"name":        "name",
	"meeting_day": "day",
	"day":         "day",
}

// parseQuery never rejects a request: unknown ordering fields are dropped and
// an unparsable page is reported by apply.
func parseQuery(v url.Values) listQuery {
	day := v.Get("meeting_day")
	if day == "" {
		day = v.Get("day")
	}
	q := listQuery{
		day:      strings.TrimSpace(day),
		search:   strings.ToLower(strings.TrimSpace(v.Get("search"))),
		ordering: defaultOrdering,
		page:     1,
		pageSize: defaultPageSize,
	}

	if raw := v.Get("ordering"); raw != "" {
		q.ordering = nil
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			field, ok := orderingFields[strings.TrimPrefix(part, "-")]
			if !ok {
				continue
			}
			q.ordering = append(q.ordering, orderField{name: field, desc: strings.HasPrefix(part, "-")})
		}
		if len(q.ordering) == 0 {
			q.ordering = defaultOrdering
		}
	}

	switch raw := v.Get("page"); raw {
	case "":
	case "last":
		q.page = lastPage
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			n = 0
		}
		q.page = n
	}

	if raw := v.Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.pageSize = min(n, maxPageSize)
		}
	}

	return q
}

func (q listQuery) matches(h model.House) bool {
	if !h.IsActive {
		return false
	}
	if q.day != "" && !strings.EqualFold(h.Day, q.day) {
		return false
	}
	if q.search != "" {
		haystack := strings.ToLower(h.Name + "\n" + h.Location + "\n" + h.Description)
		if !strings.Contains(haystack, q.search) {
			return false
		}
	}
	return true
}

func (q listQuery) less(a, b model.House) bool {
	for _, f := range q.ordering {
		var c int
		switch f.name {
		case "order":
			c = cmp.Compare(a.Order, b.Order)
		case "name":
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case "day":
			c = strings.Compare(strings.ToLower(a.Day), strings.ToLower(b.Day))
		}
		if c == 0 {
			continue
		}
		if f.desc {
			return c > 0
		}
		return c < 0
	}
	return model.Less(a, b)
}

// apply filters, orders and paginates all. base is the request URL used to
// build next/previous links.
func (q listQuery) apply(all []model.House, base *url.URL) (model.HousePage, error) {
	matched := make([]model.House, 0, len(all))
	for _, h := range all {
		if q.matches(h) {
			matched = append(matched, h)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return q.less(matched[i], matched[j]) })

	numPages := max(1, (len(matched)+q.pageSize-1)/q.pageSize)
	page := q.page
	if page == lastPage {
		page = numPages
	}
	if page < 1 || page > numPages {
		return model.HousePage{}, errInvalidPage
	}

	start := (page - 1) * q.pageSize
	end := min(start+q.pageSize, len(matched))

	result := model.HousePage{
		Count:   len(matched),
		Results: matched[start:end],
	}
	if page < numPages {
		result.Next = pageURL(base, page+1)
	}
	if page > 1 {
		result.Previous = pageURL(base, page-1)
	}
	return result, nil
}

func pageURL(base *url.URL, page int) *string {
	u := *base
	values := u.Query()
	if page == 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = values.Encode()
	s := u.String()
	return &s
}

// requestURL reconstructs the absolute URL the client used.
func requestURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}
