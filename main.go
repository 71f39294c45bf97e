package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"mealtrack-go-api/database"
	"mealtrack-go-api/enums"
	"mealtrack-go-api/models"
	"mealtrack-go-api/router"
	"mealtrack-go-api/services"
	"mealtrack-go-api/services/export"
	logLib "mealtrack-go-api/services/log"
	"mealtrack-go-api/services/rabbitmq"
	"mealtrack-go-api/services/trackLog"
	"mealtrack-go-api/structs"
	"mealtrack-go-api/utils"

	"log"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("參數初始化成功...")

	database.InitDatabasePool()
	if err := database.Migrate(database.DB()); err != nil {
		panic(err)
	}
	insertActivityLog("api.go.job.init", "mealtrack-api 初始化")
	trackLog.LogTrackInit()

	defer func() {
		var logService logLib.LogService
		logwr := logService.LoggerInit("main")
		logwr.WithFields(logrus.Fields{"task": "main"}).Error("api shutdown")
		fmt.Println("api shutdown")
	}()

	route := router.Router()

	var wg sync.WaitGroup
	wg.Add(1)
	go route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port))

	wg.Add(1)
	go ExportQueueConsumer()

	wg.Wait()
}

func ExportQueueConsumer() {
	conn := rabbitmq.NewConnection(enums.ExportQueue, []string{enums.ExportQueue})

	if err := conn.Connect(); err != nil {
		panic(err)
	}
	if err := conn.BindQueue(); err != nil {
		panic(err)
	}
	deliveries, err := conn.Consume()
	if err != nil {
		panic(err)
	}

	for q, d := range deliveries {
		go conn.HandleConsumedDeliveries(q, d, ExportHandler)
	}
	log.Printf(" [ mealtrack ] [ export ] Waiting for messages. To exit press CTRL+C")
}

func ExportHandler(c rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {

		trackLog.Info(fmt.Sprintf("Queue[%s] 接受資料: %s\n", q, string(d.Body)), true)

		var exportQueueParam structs.ExportQueueParam
		if err := json.Unmarshal(d.Body, &exportQueueParam); err != nil {
			fmt.Println(err.Error())
			continue
		}
		// 檢查queue是否正確
		if q != exportQueueParam.QueueType {
			notifyMismatchQueueApi(exportQueueParam.TaskID, q, exportQueueParam.QueueType)
			continue
		}

		var exportService export.ExportService
		_ = insertActivityLog("api.go.job.received", fmt.Sprintf("(%d), queue name: %s, start...", exportQueueParam.TaskID, q))
		if exportService.Start(exportQueueParam); len(exportService.Errors) != 0 {
			trackLog.Error(fmt.Sprintf("export task %d finished with %d errors", exportQueueParam.TaskID, len(exportService.Errors)), true)
		}
	}
}

// 塞入執行紀錄的 log table
func insertActivityLog(jobname string, data interface{}) error {

	activityLogJSON, _ := json.Marshal(data)

	insertTime := time.Now()
	var activityLogEntity models.ActivityLog
	activityLogEntity.CreatedAt = &insertTime
	activityLogEntity.UpdatedAt = &insertTime
	activityLogEntity.LogName = jobname
	activityLogEntity.Description = "mealtrack-api log"
	activityLogEntity.Properties = string(activityLogJSON)

	if err := database.DB().Create(&activityLogEntity).Error; err != nil {
		return err
	}

	return nil
}

func notifyMismatchQueueApi(taskId uint, queue, queueType string) {
	endpoint := utils.EnvConfig.Server.AppAPI + "/api/v1/workerCallback/mismatchQueue"
	fmt.Println("callback url", endpoint, "task_id", taskId, "queue", queue)
	body := structs.MismatchQueueResponse{
		TaskId: taskId,
		Queue:  queue,
	}
	trackLog.Info(fmt.Sprintf("[MismatchQueue]queue發生錯誤, task_id: %d, mismatch queue: %s, queue_type: %s, callback url: %s", taskId, queue, queueType, endpoint), true)
	_, err := services.HttpRequest(http.MethodPost, endpoint, nil, body)
	if err != nil {
		trackLog.Error(err.Error(), true)
	}
}
