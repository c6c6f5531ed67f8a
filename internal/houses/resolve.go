package houses

import "daysoflight/internal/model"

const (
	// LoadingLabel is shown next to the spinner while a fetch is pending.
	LoadingLabel = "Loading houses..."
	// FallbackNotice is shown when the fetch failed and defaults are rendered.
	FallbackNotice = "Unable to load houses from server. Showing cached data."
)

// View is what the houses section renders for a given Result.
type View struct {
	Houses  []model.House
	Loading bool
	Notice  string
	// Live is true when Houses came from the server rather than the defaults.
	Live bool
}

// Resolve maps a fetch Result to a renderable View. The returned list is
// never empty.
func Resolve(r Result) View {
	switch r.State() {
	case StateSuccess:
		if len(r.Items()) == 0 {
			return View{Houses: DefaultHouses()}
		}
		return View{Houses: r.Items(), Live: true}
	case StateError:
		return View{Houses: DefaultHouses(), Notice: FallbackNotice}
	case StateLoading:
		return View{Houses: DefaultHouses(), Loading: true}
	default:
		return View{Houses: DefaultHouses()}
	}
}

const (
	WelcomeText    = "All are welcome to join us!"
	ComingSoonText = "Details coming soon"
)

// Invitation returns the closing line of a house card.
func Invitation(h model.House) string {
	if !h.IsActive {
		return ComingSoonText
	}
	return WelcomeText
}
