package ports

import "context"

// Requester is the authenticated request pipeline: the single choke point
// for all backend calls. Implementations attach credentials, normalize
// bodies, and classify responses; out, when non-nil, receives the decoded
// 2xx response body.
//
// Authenticated calls made with an absent or expired token, or answered
// with a 401, tear the session down and fail with
// domain.ErrSessionInvalidated. Other non-2xx responses fail with a
// *domain.RequestError carrying the backend message. One attempt per call;
// no retries.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error

	// PostAnonymous dispatches without pre-flight or credential attachment.
	// Used only by the auth endpoints; a 401 here is an ordinary request
	// error, not a session invalidation.
	PostAnonymous(ctx context.Context, path string, body, out any) error
}
