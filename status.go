package macperms

// AuthorizationStatus is the detailed state of a media capture permission,
// mirroring AVAuthorizationStatus.
type AuthorizationStatus int

const (
	NotDetermined AuthorizationStatus = iota // user has not been asked
	Restricted                               // blocked by policy, user cannot change it
	Denied                                   // user said no
	Authorized                               // user said yes
)

func (s AuthorizationStatus) String() string {
	switch s {
	case NotDetermined:
		return "not-determined"
	case Restricted:
		return "restricted"
	case Denied:
		return "denied"
	case Authorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Granted collapses the status to the boolean reported by checks. Only
// Authorized counts as granted.
func (s AuthorizationStatus) Granted() bool {
	return s == Authorized
}

// MarshalText implements encoding.TextMarshaler.
func (s AuthorizationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
