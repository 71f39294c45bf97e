package export

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"mealtrack-go-api/database"
	"mealtrack-go-api/enums"
	"mealtrack-go-api/models"
	"mealtrack-go-api/repository"
	"mealtrack-go-api/services"
	"mealtrack-go-api/services/log"
	"mealtrack-go-api/services/trackLog"
	"mealtrack-go-api/structs"
	"mealtrack-go-api/utils"

	"github.com/sirupsen/logrus"
)

// ExportService assembles a user's complete meal record into a JSON file on
// request from the export queue, then notifies the app API. A job that runs
// past the configured timeout is abandoned and reported as timed out.
type ExportService struct {
	exportQueueParam structs.ExportQueueParam
	Errors           []structs.ErrorModel

	users    repository.UserRepo
	days     repository.DayRepo
	mealType repository.MealTypeRepo
	meals    repository.MealRepo
	dayMeals repository.DayMealRepo
}

type jobResult struct {
	state    string
	filePath string
}

func (e *ExportService) Start(exportQueueParam structs.ExportQueueParam) {
	if exportQueueParam.IsDie {
		panic(nil)
	}
	e.exportQueueParam = exportQueueParam

	var logService log.LogService
	logwr := logService.LoggerInit("export")
	entry := logwr.WithFields(logrus.Fields{"task": "export", "task_id": exportQueueParam.TaskID, "user": exportQueueParam.Credentials.UserName})
	entry.Info("開始匯出")

	e.insertActivityLog("export.job.received", fmt.Sprintf("(%d), user: %s, start...", exportQueueParam.TaskID, exportQueueParam.Credentials.UserName))

	resultChan := make(chan jobResult, 1)
	go func() {
		resultChan <- e.run()
	}()

	timeout := utils.EnvConfig.Export.TimeoutDuration
	if timeout <= 0 {
		timeout = 60
	}

	var result jobResult
	select {
	case result = <-resultChan:
	case <-time.After(time.Duration(timeout) * time.Second):
		message := fmt.Sprintf("export: operation took more than %d seconds. Aborted.", timeout)
		trackLog.Error(message, true)
		entry.Error(message)
		result = jobResult{state: enums.ExportStateTimeout}
	}

	if result.state == enums.ExportStateSuccess {
		entry.Info("匯出完成: " + result.filePath)
		e.insertActivityLog("export.job.done", fmt.Sprintf("(%d), file: %s", exportQueueParam.TaskID, result.filePath))
	} else {
		e.Errors = append(e.Errors, structs.ErrorModel{Title: "export failed", Detail: result.state})
		e.insertActivityLog("export.job.failed", fmt.Sprintf("(%d), state: %s", exportQueueParam.TaskID, result.state))
	}

	e.notifyExportDone(result)
}

// run collects the record and writes the JSON file.
func (e *ExportService) run() jobResult {
	credentials := e.exportQueueParam.Credentials

	status, err := e.users.CheckPassword(credentials)
	if err != nil || status != repository.StatusOK {
		return jobResult{state: enums.ExportStateInvalidCredentials}
	}
	user, err := e.users.GetByName(credentials.UserName)
	if err != nil {
		return jobResult{state: enums.ExportStateInvalidCredentials}
	}

	links, err := e.dayMeals.ListByUser(user.ID)
	if err != nil {
		return jobResult{state: "ListFailed"}
	}

	payload := structs.ExportPayload{
		User:  structs.UserExport{ID: user.ID, Name: user.Name},
		Meals: []structs.MealInfo{},
	}
	for _, link := range links {
		day, err := e.days.GetByID(link.DayID)
		if err != nil {
			continue
		}
		mealTypeName, err := e.mealType.GetNameByID(link.MealTypeID)
		if err != nil {
			continue
		}
		mealRow, err := e.meals.GetByID(link.MealID)
		if err != nil {
			continue
		}
		payload.Meals = append(payload.Meals, structs.MealInfo{
			Year:       day.Year,
			Month:      day.Month,
			Day:        day.Day,
			MealType:   mealTypeName,
			FatLevel:   mealRow.FatLevel,
			SugarLevel: mealRow.SugarLevel,
		})
	}

	exportJSON, err := json.Marshal(payload)
	if err != nil {
		return jobResult{state: "MarshalFailed"}
	}

	exportPath := utils.EnvConfig.Export.Path
	if err := os.MkdirAll(exportPath, 0777); err != nil {
		return jobResult{state: "WriteFailed"}
	}
	fileName := "export_user" + strconv.Itoa(int(user.ID)) + "_" + time.Now().Format("20060102150405") + ".json"
	filePath := path.Join(exportPath, fileName)
	if err := ioutil.WriteFile(filePath, exportJSON, 0644); err != nil {
		return jobResult{state: "WriteFailed"}
	}

	return jobResult{state: enums.ExportStateSuccess, filePath: filePath}
}

func (e *ExportService) notifyExportDone(result jobResult) {
	endpoint := utils.EnvConfig.Server.AppAPI + "/api/v1/workerCallback/exportDone"
	body := structs.ExportCallbackResponse{
		TaskId:      e.exportQueueParam.TaskID,
		ReturnState: result.state,
		FilePath:    result.filePath,
	}
	if _, err := services.HttpRequest(http.MethodPost, endpoint, nil, body); err != nil {
		trackLog.Error(err.Error(), true)
	}
}

func (e *ExportService) insertActivityLog(jobName, data string) {
	propertiesJSON, _ := json.Marshal(data)
	now := time.Now()
	entity := models.ActivityLog{
		LogName:     jobName,
		Description: "mealtrack export log",
		Properties:  string(propertiesJSON),
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	if err := database.DB().Create(&entity).Error; err != nil {
		trackLog.Error(err.Error(), true)
	}
}
