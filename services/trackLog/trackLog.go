package trackLog

import (
	"fmt"

	"mealtrack-go-api/services/log"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("api")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "scope": "api"})
}

func Info(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Info(message)
	}
	fmt.Println(message)
}

func Warning(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Warning(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Error(message)
	}
	fmt.Println(message)
}
