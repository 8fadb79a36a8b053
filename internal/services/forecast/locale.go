package forecast

import (
	"fmt"

	"kma-forecast/internal/models"
)

// precipitationNone is the PTY code for "no precipitation"; it produces no field.
const precipitationNone = "0"

// Locale holds the display strings of one language.
type Locale struct {
	Name          string
	Labels        map[models.Category]string
	Sky           map[string]string
	Precipitation map[string]string
	Unknown       string
	header        string
	NoInformation string
	temperature   string
	probability   string
}

var Korean = Locale{
	Name: "ko",
	Labels: map[models.Category]string{
		models.CategoryTemperature:   "기온",
		models.CategorySky:           "하늘",
		models.CategoryPrecipitation: "강수",
		models.CategoryProbability:   "강수확률",
	},
	Sky: map[string]string{
		"1": "맑음 ☀️",
		"3": "구름많음 🌥️",
		"4": "흐림 ☁️",
	},
	Precipitation: map[string]string{
		"0": "없음",
		"1": "비 💧",
		"2": "비/눈",
		"3": "눈 ❄️",
		"4": "소나기",
	},
	Unknown:       "알 수 없음",
	header:        "%s %s시 날씨 예보",
	NoInformation: "해당 시간의 정보가 없습니다.",
	temperature:   "%s°C",
	probability:   "%s%%",
}

var English = Locale{
	Name: "en",
	Labels: map[models.Category]string{
		models.CategoryTemperature:   "Temperature",
		models.CategorySky:           "Sky",
		models.CategoryPrecipitation: "Precipitation",
		models.CategoryProbability:   "Chance of precipitation",
	},
	Sky: map[string]string{
		"1": "Clear ☀️",
		"3": "Mostly cloudy 🌥️",
		"4": "Overcast ☁️",
	},
	Precipitation: map[string]string{
		"0": "None",
		"1": "Rain 💧",
		"2": "Rain/snow",
		"3": "Snow ❄️",
		"4": "Shower",
	},
	Unknown:       "Unknown",
	header:        "%s weather forecast for %s:00",
	NoInformation: "No forecast information for that hour.",
	temperature:   "%s°C",
	probability:   "%s%%",
}

var locales = map[string]Locale{
	Korean.Name:  Korean,
	English.Name: English,
}

func LookupLocale(name string) (Locale, error) {
	locale, ok := locales[name]
	if !ok {
		return Locale{}, fmt.Errorf("unsupported locale %q", name)
	}
	return locale, nil
}

// Header is the first line of a rendered report.
func (l Locale) Header(location, hour string) string {
	return fmt.Sprintf(l.header, location, hour)
}

// Translate maps one record to a display field. The second result is false for categories
// that are not reported and for PTY "0".
func (l Locale) Translate(item models.Item) (models.Field, bool) {
	value := item.FcstValue

	switch item.Category {
	case models.CategoryTemperature:
		value = fmt.Sprintf(l.temperature, value)
	case models.CategorySky:
		value = l.lookup(l.Sky, value)
	case models.CategoryPrecipitation:
		if value == precipitationNone {
			return models.Field{}, false
		}
		value = l.lookup(l.Precipitation, value)
	case models.CategoryProbability:
		value = fmt.Sprintf(l.probability, value)
	default:
		return models.Field{}, false
	}

	return models.Field{
		Category: item.Category,
		Label:    l.Labels[item.Category],
		Value:    value,
	}, true
}

func (l Locale) lookup(table map[string]string, code string) string {
	if s, ok := table[code]; ok {
		return s
	}
	return l.Unknown
}
