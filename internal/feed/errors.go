package feed

import "errors"

// ErrFeedUnavailable reports that a mandatory source (carpark info or
// vacancy) could not be retrieved. The traffic source failing on its own
// never produces this error.
var ErrFeedUnavailable = errors.New("unable to reach Transport Department parking feeds")
