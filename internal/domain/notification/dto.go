package notification

// Payload describes a change worth announcing: a new visit, event or
// message. Payloads arrive pre-built from the triggering handler; the
// engine never constructs them itself.
type Payload struct {
	ActorID     string `json:"actor_id"`
	Message     string `json:"message"`
	Category    string `json:"category"`
	ReferenceID string `json:"reference_id"`
}

// Known payload categories.
const (
	CategoryVisit   = "VISIT"
	CategoryEvent   = "EVENT"
	CategoryMessage = "MESSAGE"
)
