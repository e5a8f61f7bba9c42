package model

import (
	"database/sql/driver"
	"encoding/json"
)

// TurnLog is one processed turn as written to the transcript log
type TurnLog struct {
	SessionID      string
	Category       Category
	Language       Language
	UserText       string
	ResponseText   string
	Signals        SignalSet
	CandidateIDs   []string
	ResponseTimeMs int
}

// Value implements driver.Valuer so signals are stored as JSONB
func (s SignalSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}
