package request_models

import (
	"encoding/json"
	"time"

	"healthcard/pkg/utils"
)

// Date is a JSON date accepting "YYYY-MM-DD" or an RFC 3339 timestamp.
// Bare dates are resolved in the program time zone by the service.
type Date struct {
	Raw string
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if _, err := utils.ParseDate(s, time.UTC); err != nil {
		return err
	}
	d.Raw = s
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}

// In resolves the date in loc. Bare calendar dates are midnight in loc.
func (d Date) In(loc *time.Location) time.Time {
	t, _ := utils.ParseDate(d.Raw, loc)
	return t
}
