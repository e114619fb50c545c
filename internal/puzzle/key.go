package puzzle

import (
	"fmt"
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Key identifies one puzzle instance. It is validated once by NewKey and then
// only used as a lookup and cache key.
type Key struct {
	Year int
	Day  int
}

func NewKey(year int, day int) (Key, error) {
	if year < 1 {
		return Key{}, fmt.Errorf("year must be greater than 0, got %d", year)
	}
	if day < FirstDay || day > LastDay {
		return Key{}, fmt.Errorf("day must be from %d to %d included, got %d", FirstDay, LastDay, day)
	}

	return Key{Year: year, Day: day}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.Year, k.Day)
}

// CacheName is the file name of the cached input for this key.
func (k Key) CacheName() string {
	return fmt.Sprintf("%d_%d.txt", k.Year, k.Day)
}

func (k Key) Less(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Day < other.Day
}
