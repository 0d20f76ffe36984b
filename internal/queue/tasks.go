package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/voltmart/internal/constants"
)

// TaskNotificationDispatch 通知分发任务
const TaskNotificationDispatch = constants.TaskNotificationDispatch

// NotificationDispatchPayload 通知分发任务载荷
type NotificationDispatchPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// NewNotificationDispatchTask 创建通知分发任务
func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificationDispatch, data), nil
}
