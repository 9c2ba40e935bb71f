package event

// Severity tags a log entry for display styling
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityDamage
	SeverityHeal
	SeverityScore
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityDamage:
		return "damage"
	case SeverityHeal:
		return "heal"
	case SeverityScore:
		return "score"
	}
	return "unknown"
}
