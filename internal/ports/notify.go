package ports

import "context"

// Message is one outbound notification email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers notification emails. Delivery internals (providers,
// retries, templating) are outside the access-control core; this port is
// the whole contract.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
