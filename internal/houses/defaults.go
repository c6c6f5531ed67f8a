package houses

import "daysoflight/internal/model"

// defaultHouses backs DefaultHouses. It must never be handed out directly.
var defaultHouses = [...]model.House{
	{
		ID:       1,
		Name:     "House of Thika",
		Day:      "Monday",
		Time:     "5:00pm - 8:00pm",
		Location: "CCI Arise and Shine, next to Eton Hotel",
		IsActive: true,
		Order:    1,
	},
	{
		ID:       2,
		Name:     "House of Rongai",
		Day:      "Monday",
		Time:     "5:30pm - 8:00pm",
		Location: "Maasai Lodge Opposite Think twice",
		IsActive: true,
		Order:    2,
	},
	{
		ID:       3,
		Name:     "House of Murang'a",
		Day:      "Tuesday",
		Time:     "6:30pm - 8:30pm",
		Location: "Cool Palace, B7",
		IsActive: true,
		Order:    3,
	},
	{
		ID:       4,
		Name:     "House of KU",
		Day:      "Monday",
		Time:     "5:00pm - 8:00pm",
		Location: "Kahawa Sukari near Suburbs",
		IsActive: true,
		Order:    4,
	},
	{
		ID:       5,
		Name:     "House of Kitengela",
		Day:      "Wednesday",
		Time:     "6:00pm - 8:00pm",
		Location: "Balozi road (immediately after Imani apartments) House 001",
		IsActive: true,
		Order:    5,
	},
	{
		ID:       6,
		Name:     "House of AIU",
		Day:      "Coming Soon",
		Time:     "TBA",
		Location: "Location to be announced",
		IsActive: false,
		Order:    6,
	},
}

// DefaultHouses returns the built-in house list shown whenever live data is
// unavailable. Each call returns a fresh copy.
func DefaultHouses() []model.House {
	out := make([]model.House, len(defaultHouses))
	copy(out, defaultHouses[:])
	return out
}
