package service

import (
	"strings"

	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/queue"
)

// NotificationService 通知服务。核心操作通过它上报成败，调用即返回，
// 不关心展示方，队列不可用时退化为直接写结构化日志。
type NotificationService struct {
	queueClient *queue.Client
}

// NewNotificationService 创建通知服务
func NewNotificationService(queueClient *queue.Client) *NotificationService {
	return &NotificationService{queueClient: queueClient}
}

// Notify 发送一条通知（标题、描述、级别）。失败只记日志，不向调用方传播。
func (s *NotificationService) Notify(title, description, severity string) {
	severity = normalizeSeverity(severity)
	if s != nil && s.queueClient.Enabled() {
		payload := queue.NotificationDispatchPayload{
			Title:       title,
			Description: description,
			Severity:    severity,
		}
		err := s.queueClient.EnqueueNotificationDispatch(payload)
		if err == nil {
			return
		}
		logger.Warnw("notification_enqueue_failed", "title", title, "error", err)
	}
	logNotification(title, description, severity)
}

func normalizeSeverity(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case constants.NotificationSeverityDestructive:
		return constants.NotificationSeverityDestructive
	default:
		return constants.NotificationSeveritySuccess
	}
}

func logNotification(title, description, severity string) {
	if severity == constants.NotificationSeverityDestructive {
		logger.Warnw("notification", "title", title, "description", description, "severity", severity)
		return
	}
	logger.Infow("notification", "title", title, "description", description, "severity", severity)
}
