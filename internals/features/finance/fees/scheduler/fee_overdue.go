package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
)

// StartFeeOverdueScheduler sweeps pending fees whose due date has
// passed and marks them overdue. Runs at startup, then every 12 hours.
func StartFeeOverdueScheduler(db *gorm.DB) {
	go func() {
		for {
			res := db.Model(&model.FeeModel{}).
				Where("fee_status = ? AND fee_due_date < CURRENT_DATE", model.FeeStatusPending).
				Update("fee_status", model.FeeStatusOverdue)
			if res.Error != nil {
				log.Println("[ERROR] fee overdue sweep:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Marked %d fee(s) overdue", res.RowsAffected)
			}
			time.Sleep(12 * time.Hour)
		}
	}()
}
