package realtime

import "errors"

// ErrFeedClosed is reported when the change feed ends while the session is open.
var ErrFeedClosed = errors.New("change feed closed")
