package sysloghandler

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Facility is a syslog facility, already shifted into the priority
// position so that Priority = Facility | severity.
type Facility int

const (
	Kern     Facility = 0 << 3
	User     Facility = 1 << 3
	Mail     Facility = 2 << 3
	Daemon   Facility = 3 << 3
	Auth     Facility = 4 << 3
	Syslog   Facility = 5 << 3
	LPR      Facility = 6 << 3
	News     Facility = 7 << 3
	UUCP     Facility = 8 << 3
	Cron     Facility = 9 << 3
	AuthPriv Facility = 10 << 3
	FTP      Facility = 11 << 3
	Local0   Facility = 16 << 3
	Local1   Facility = 17 << 3
	Local2   Facility = 18 << 3
	Local3   Facility = 19 << 3
	Local4   Facility = 20 << 3
	Local5   Facility = 21 << 3
	Local6   Facility = 22 << 3
	Local7   Facility = 23 << 3
)

var facilityNames = map[Facility]string{
	Kern:     "kern",
	User:     "user",
	Mail:     "mail",
	Daemon:   "daemon",
	Auth:     "auth",
	Syslog:   "syslog",
	LPR:      "lpr",
	News:     "news",
	UUCP:     "uucp",
	Cron:     "cron",
	AuthPriv: "authpriv",
	FTP:      "ftp",
	Local0:   "local0",
	Local1:   "local1",
	Local2:   "local2",
	Local3:   "local3",
	Local4:   "local4",
	Local5:   "local5",
	Local6:   "local6",
	Local7:   "local7",
}

var facilityByName = func() map[string]Facility {
	m := make(map[string]Facility, len(facilityNames))
	for f, name := range facilityNames {
		m[name] = f
	}
	return m
}()

// FacilityName returns the lowercase name of f, e.g. "kern" or "local3".
// It returns false for values that are not a defined facility.
func FacilityName(f Facility) (string, bool) {
	name, ok := facilityNames[f]
	return name, ok
}

// String returns the facility name, or Facility(n) for unknown values.
func (f Facility) String() string {
	if name, ok := facilityNames[f]; ok {
		return name
	}
	return "Facility(" + strconv.Itoa(int(f)) + ")"
}

// Valid reports whether f is a defined facility.
func (f Facility) Valid() bool {
	_, ok := facilityNames[f]
	return ok
}

// ParseFacility looks up a facility by name, ignoring case.
func ParseFacility(name string) (Facility, error) {
	f, ok := facilityByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown syslog facility %q", name)
	}
	return f, nil
}

// facilityTag resolves the configured facility once. An unknown value is
// reported and replaced by User.
func facilityTag(f Facility, report func(string)) (Facility, string) {
	name, ok := FacilityName(f)
	if !ok {
		report(`"` + strconv.Itoa(int(f)) + `" is an unknown syslog facility. Defaulting to "USER".`)
		return User, "user:"
	}
	return f, name + ":"
}
