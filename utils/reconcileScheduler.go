package utils

import (
	"log"

	"edumaster/config"
	"edumaster/store"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler sets up the periodic enrollment counter check.
// The counter is maintained imperatively on enroll; this job recomputes it
// from the confirmed enrollment records and logs any drift.
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing reconciliation scheduler...")

	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReconcileCron, func() {
		drift := store.Data.Reconcile()
		if len(drift) == 0 {
			log.Println("[RECONCILE-SCHEDULER] All session counters match confirmed enrollments")
			return
		}
		for _, d := range drift {
			log.Printf("[RECONCILE-SCHEDULER] Session %s counter=%d confirmed=%d", d.SessionID, d.Counter, d.Confirmed)
		}
	})
	if err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Invalid cron spec %q: %v", config.AppConfig.ReconcileCron, err)
		return
	}

	c.Start()
	log.Printf("[RECONCILE-SCHEDULER] Reconciliation scheduler started (%s)", config.AppConfig.ReconcileCron)
}
