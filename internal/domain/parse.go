package domain

import (
	"fmt"
	"regexp"
)

var reNumeric = regexp.MustCompile(`^(\d\d|\d{4})$`)

// ParseNumeric reads the numeric shorthand typed on the command line, using
// traditional file/rank digits:
//   - "55"   => "focus" on square 55
//   - "7776" => "move" from 77 to 76
func ParseNumeric(s string) (tag string, from *Square, to Square, err error) {
	if !reNumeric.MatchString(s) {
		return "", nil, Square{}, fmt.Errorf("numeric input must be 2 or 4 digits")
	}

	sq := func(i int) (Square, error) {
		return FromKIF(int(s[i]-'0'), int(s[i+1]-'0'))
	}

	switch len(s) {
	case 2:
		t, err := sq(0)
		if err != nil {
			return "", nil, Square{}, err
		}
		return "focus", nil, t, nil
	case 4:
		f, err := sq(0)
		if err != nil {
			return "", nil, Square{}, err
		}
		t, err := sq(2)
		if err != nil {
			return "", nil, Square{}, err
		}
		return "move", &f, t, nil
	default:
		return "", nil, Square{}, fmt.Errorf("unexpected length")
	}
}
