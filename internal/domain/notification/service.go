package notification

import "context"

// Sink accepts notification payloads for delivery. Delivery itself
// (push, email, whatever) lives outside this repository.
type Sink interface {
	Notify(ctx context.Context, payload Payload) error
}
