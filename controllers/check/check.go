package check

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"mealtrack-go-api/database"
	"mealtrack-go-api/enums"
	"mealtrack-go-api/services/rabbitmq"
	"mealtrack-go-api/services/trackLog"

	"github.com/gin-gonic/gin"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   bool     `json:"database"`
	Queues     []string `json:"queue"`
	RoutineNum int      `json:"routine_num"`
}

func CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	checkInfo := CheckInfo{}

	// 檢查資料庫連線
	if db := database.DB(); db != nil {
		if err := db.DB().Ping(); err != nil {
			resMsg = "Api detect database lost, Reconnecting.."
			trackLog.Error(resMsg, false)
			if err := database.Reconnect(); err != nil {
				resMsg = fmt.Sprintf("reconnect database fail: %s", err.Error())
				trackLog.Error(resMsg, false)
			}
		} else {
			checkInfo.Database = true
		}
	}

	rabbitConn := rabbitmq.GetConnection(enums.ExportQueue)
	if rabbitConn != nil {
		if rabbitConn.Conn == nil {
			resMsg = "Api detect Connection lost, Reconnecting.."
			trackLog.Error(resMsg, false)
			if err := rabbitConn.Reconnect(); err != nil {
				resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
				trackLog.Error(resMsg, false)
			}
		}
		if rabbitConn.Channel != nil {
			for _, q := range rabbitConn.Queues {
				queue, queueErr := rabbitConn.Channel.QueueInspect(q)
				if queueErr != nil {
					resMsg = fmt.Sprintf("Queue[%s] error: %s\n", q, queueErr.Error())
					trackLog.Error(resMsg, false)
				} else {
					checkInfo.Queues = append(checkInfo.Queues, queue.Name)
				}
			}
		} else {
			resMsg = "Channel get fail"
			trackLog.Error(resMsg, false)
		}
		select {
		case err := <-rabbitConn.ApiErr:
			trackLog.Error(fmt.Sprintf("api error: %s\n", err.Error()), false)
			if err := rabbitConn.Reconnect(); err != nil {
				resMsg = fmt.Sprintf("reconnect rabbit fail: %s\n", err.Error())
				trackLog.Error(resMsg, false)
			}
		case <-time.After(time.Second * 1):
		}
	} else {
		resMsg = "Get connection pool fail"
		trackLog.Error(resMsg, false)
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()

	c.JSON(http.StatusOK, AliveResponse{true, resMsg, checkInfo})
	return
}
