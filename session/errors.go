package session

import "errors"

// errClosed is returned by Read/Write once a session has been shut down
// and has no more buffered data to deliver.
var errClosed = errors.New("session: closed")
