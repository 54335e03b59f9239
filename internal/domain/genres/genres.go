package genres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// List is an ordered set of genre names stored as a JSON text column. It
// round-trips an empty list rather than NULL so callers never see a nil
// genres value on a loaded record.
type List []string

func (l List) Value() (driver.Value, error) {
	if l == nil {
		l = List{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *List) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = List{}
		return nil
	case []byte:
		return l.decode(v)
	case string:
		return l.decode([]byte(v))
	default:
		return fmt.Errorf("genres: cannot scan %T into List", src)
	}
}

func (l *List) decode(b []byte) error {
	if len(b) == 0 {
		*l = List{}
		return nil
	}
	if err := json.Unmarshal(b, l); err != nil {
		return err
	}
	if *l == nil {
		*l = List{}
	}
	return nil
}

func (List) GormDataType() string {
	return "text"
}

// Choices are the genre options offered by the venue and artist forms.
var Choices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}
