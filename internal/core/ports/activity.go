package ports

import (
	"context"
	"time"
)

// Review activity actions.
const (
	ActivityCreated  = "created"
	ActivityModified = "modified"
	ActivityDeleted  = "deleted"
)

// ReviewActivity is one entry in the asynchronous review audit trail.
type ReviewActivity struct {
	ISBN     string
	Username string
	Action   string
	At       time.Time
}

// ActivitySink consumes review activity entries. Processing happens off
// the request path; per-book ordering is the dispatcher's concern.
type ActivitySink interface {
	Process(ctx context.Context, activity ReviewActivity) error
}

// ActivityPublisher is the producer side used by the review manager.
type ActivityPublisher interface {
	Publish(activity ReviewActivity)
}
