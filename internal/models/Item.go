package models

// Category identifies which weather attribute a forecast record describes.
type Category string

const (
	CategoryTemperature   Category = "TMP"
	CategorySky           Category = "SKY"
	CategoryPrecipitation Category = "PTY"
	CategoryProbability   Category = "POP"
)

// DisplayOrder is the order in which known categories are reported.
var DisplayOrder = []Category{
	CategoryTemperature,
	CategorySky,
	CategoryPrecipitation,
	CategoryProbability,
}

// Item is a single forecast record as returned by the village forecast API.
type Item struct {
	BaseDate  string   `json:"baseDate" example:"20250725"`
	BaseTime  string   `json:"baseTime" example:"0500"`
	Category  Category `json:"category" example:"TMP"`
	FcstDate  string   `json:"fcstDate" example:"20250725"`
	FcstTime  string   `json:"fcstTime" example:"0800"`
	FcstValue string   `json:"fcstValue" example:"24"`
	NX        int      `json:"nx" example:"62"`
	NY        int      `json:"ny" example:"128"`
}

// FilterByTarget returns the items forecast for exactly the given date and time, keeping their order.
func FilterByTarget(items []Item, fcstDate, fcstTime string) []Item {
	matched := make([]Item, 0, len(DisplayOrder))
	for _, item := range items {
		if item.FcstDate == fcstDate && item.FcstTime == fcstTime {
			matched = append(matched, item)
		}
	}
	return matched
}
