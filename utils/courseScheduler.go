package utils

import (
	"log"
	"strconv"
	"time"

	"lms/database"
	"lms/models"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[COURSE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// AdvanceCourseStatuses moves courses along their lifecycle from dates:
// "not started" -> "in progress" once start_date is reached and
// "in progress" -> "finished" once end_date has passed.
func AdvanceCourseStatuses() {
	db := database.Database.Db
	today := time.Now().Truncate(24 * time.Hour)

	started := db.Model(&models.Course{}).
		Where("status = ? AND start_date <= ?", models.CourseNotStarted, today).
		Update("status", models.CourseInProgress)
	if started.Error != nil {
		logScheduler("Error starting courses: " + started.Error.Error())
	} else if started.RowsAffected > 0 {
		logScheduler("Courses moved to in progress: " + strconv.FormatInt(started.RowsAffected, 10))
	}

	finished := db.Model(&models.Course{}).
		Where("status = ? AND end_date < ?", models.CourseInProgress, today).
		Update("status", models.CourseFinished)
	if finished.Error != nil {
		logScheduler("Error finishing courses: " + finished.Error.Error())
	} else if finished.RowsAffected > 0 {
		logScheduler("Courses moved to finished: " + strconv.FormatInt(finished.RowsAffected, 10))
	}
}

// StartCourseScheduler runs the status advance once at boot and then every
// day shortly after midnight.
func StartCourseScheduler() *cron.Cron {
	AdvanceCourseStatuses()

	c := cron.New()
	if _, err := c.AddFunc("5 0 * * *", AdvanceCourseStatuses); err != nil {
		log.Fatalf("Failed to schedule course status job: %v", err)
	}
	c.Start()

	logScheduler("Course status scheduler started.")
	return c
}
