package structs

type ExportQueueParam struct {
	Credentials CredentialsItem `json:"credentials"`
	TaskID      uint            `json:"task_id" form:"task_id"`
	Result      string          `json:"result" form:"result"`
	IsDie       bool            `json:"is_die" form:"is_die"`
	QueueType   string          `json:"queue_type" form:"queue_type"`
}

type ErrorModel struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ExportPayload struct {
	User  UserExport `json:"user"`
	Meals []MealInfo `json:"meals"`
}

type UserExport struct {
	ID   uint   `json:"ID"`
	Name string `json:"name"`
}

type MismatchQueueResponse struct {
	TaskId uint   `json:"task_id"`
	Queue  string `json:"queue"`
}

type ExportCallbackResponse struct {
	TaskId      uint   `json:"task_id"`
	ReturnState string `json:"return_state"`
	FilePath    string `json:"file_path"`
}
