package homework

// Status is the review state of a homework as reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
	StatusPending   Status = "pending"
)

// Known reports whether the status is part of the documented enumeration.
func (s Status) Known() bool {
	switch s {
	case StatusApproved, StatusReviewing, StatusRejected, StatusPending:
		return true
	}
	return false
}

// Verdicts maps a review status to its human-readable verdict text.
// StatusPending is documented but deliberately has no entry: a pending
// homework produces a verdict-less notification (see ParseStatus).
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}
