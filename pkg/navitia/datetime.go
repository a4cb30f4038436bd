package navitia

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the basic ISO 8601 form used by Navitia, eg. 20240115T083000
const DateTimeLayout = "20060102T150405"

// DateTime is a wall-clock timestamp as returned by the API. It is kept in the
// exact layout it was received in and never converted between time zones.
type DateTime struct {
	time.Time
}

func ParseDateTime(value string) (DateTime, error) {
	if value == "" {
		return DateTime{}, nil
	}

	parsed, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid navitia datetime %q: %w", value, err)
	}

	return DateTime{Time: parsed}, nil
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DateTime{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseDateTime(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
