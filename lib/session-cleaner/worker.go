package sessioncleaner

import (
	"context"
	"time"

	"talent-screen-backend/config"
	"talent-screen-backend/db"
	interviewstore "talent-screen-backend/lib/interview/store"
	baseworker "talent-screen-backend/lib/utils/base-worker"
	"talent-screen-backend/lib/utils/helpers"
)

// StartWorker closes interview sessions with no candidate activity past the
// configured idle timeout.
func StartWorker(ctx context.Context) {
	worker := baseworker.NewInstance("session-cleaner", time.Minute, 10*time.Minute)
	sessions := interviewstore.NewInstance(db.DB)
	worker.Run(ctx, func(ctx context.Context) {
		if helpers.IsContextDone(ctx) {
			return
		}
		deadline := time.Now().Add(-time.Duration(config.Conf.Session.IdleTimeoutMin) * time.Minute)
		expired, err := sessions.ExpireIdle(deadline)
		if err != nil {
			worker.GetLogger().WithError(err).Error("failed to expire idle sessions")
			return
		}
		if expired > 0 {
			worker.GetLogger().Infof("expired idle sessions: %v", expired)
		}
	})
}
