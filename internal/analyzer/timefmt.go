package analyzer

import (
	"fmt"
	"strconv"
)

// EndOfDay is the 24-hour spelling of the next midnight.
const EndOfDay = "2400"

// InvalidTimeError reports a time that is not four digits.
type InvalidTimeError struct {
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %q: want four digits HHMM", e.Value)
}

// Clock is a parsed 24-hour time of day. Hour may be 24 for EndOfDay.
type Clock struct {
	Hour   int
	Minute int
}

// ParseTime parses a four digit 24-hour time such as "0915".
func ParseTime(t string) (Clock, error) {
	if len(t) != 4 {
		return Clock{}, &InvalidTimeError{Value: t}
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return Clock{}, &InvalidTimeError{Value: t}
		}
	}
	h, _ := strconv.Atoi(t[:2])
	m, _ := strconv.Atoi(t[2:])
	return Clock{Hour: h, Minute: m}, nil
}

// FormatTime converts "HHMM" to a 12-hour display string like "9:15am".
// "0000" stays "0:00am" while "2400" becomes "12:00am". Input that is not
// four characters with a numeric hour is returned unchanged.
func FormatTime(t string) string {
	if len(t) != 4 {
		return t
	}
	hh, mm := t[:2], t[2:]
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return t
	}

	meridiem := "am"
	if hour >= 12 {
		if t != EndOfDay {
			meridiem = "pm"
		}
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}
	return strconv.Itoa(hour) + ":" + mm + meridiem
}
