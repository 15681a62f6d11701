package utils

import (
	"time"

	"certify/database"
	"certify/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartSessionCleanupScheduler purges expired admin sessions every hour.
// Expired tokens are already rejected at the middleware, the job just
// keeps the table from growing.
func StartSessionCleanupScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		res := database.Database.Db.
			Where("expires_at < ?", time.Now()).
			Delete(&models.AdminSession{})
		if res.Error != nil {
			logrus.Errorf("[SESSION-SCHEDULER] cleanup failed: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			logrus.Infof("[SESSION-SCHEDULER] purged %d expired admin sessions", res.RowsAffected)
		}
	})
	if err != nil {
		logrus.Errorf("[SESSION-SCHEDULER] failed to register job: %v", err)
		return c
	}

	c.Start()
	logrus.Info("[SESSION-SCHEDULER] started")
	return c
}
