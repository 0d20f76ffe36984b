package worker

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/provider"
	"github.com/voltmart/internal/queue"
)

// Consumer 异步任务消费者。通知任务最终落到设备通知面板，
// 本服务端侧以结构化日志作为通知汇聚点。
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskNotificationDispatch, c.handleNotificationDispatch)
}

func (c *Consumer) handleNotificationDispatch(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.NotificationDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_notification_unmarshal_failed", "error", err)
		return err
	}
	if payload.Severity == constants.NotificationSeverityDestructive {
		logger.Warnw("notification_dispatched",
			"title", payload.Title,
			"description", payload.Description,
			"severity", payload.Severity,
		)
		return nil
	}
	logger.Infow("notification_dispatched",
		"title", payload.Title,
		"description", payload.Description,
		"severity", payload.Severity,
	)
	return nil
}
