package models

import "fmt"

// Bulletin identifies one forecast release.
type Bulletin struct {
	BaseDate string `json:"base_date" example:"20250725"`
	BaseTime string `json:"base_time" example:"0500"`
}

func (b Bulletin) String() string {
	return fmt.Sprintf("%s %s", b.BaseDate, b.BaseTime)
}

// Window is the bulletin to query together with the forecast slot to report.
type Window struct {
	Bulletin   Bulletin
	TargetDate string
	TargetTime string
}
