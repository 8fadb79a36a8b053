package models

// Field is one localized line of a report.
type Field struct {
	Category Category `json:"category" example:"SKY"`
	Label    string   `json:"label" example:"하늘"`
	Value    string   `json:"value" example:"맑음 ☀️"`
}

// Report is the forecast for one grid cell at the target slot. No fields means no information.
type Report struct {
	Location   string   `json:"location" example:"양주시"`
	NX         int      `json:"nx" example:"62"`
	NY         int      `json:"ny" example:"128"`
	Bulletin   Bulletin `json:"bulletin"`
	TargetDate string   `json:"target_date" example:"20250725"`
	TargetTime string   `json:"target_time" example:"0800"`
	Fields     []Field  `json:"fields"`
}

func (r *Report) Available() bool {
	return len(r.Fields) > 0
}
