package obs

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration and outcome of a named operation. Use it as
//
//	defer obs.Time(ctx, "places.SearchNearby")(&err)
//
// so the deferred call observes the function's final error value.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		fields := log.Fields{
			"req_id": reqID,
			"op":     name,
			"dur_ms": dur.Milliseconds(),
		}
		if errp != nil && *errp != nil {
			log.WithFields(fields).WithError(*errp).Warn("operation failed")
			return
		}
		log.WithFields(fields).Debug("operation completed")
	}
}
