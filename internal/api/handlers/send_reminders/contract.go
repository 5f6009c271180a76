package send_reminders

import (
	"context"

	sendReminders "github.com/m04kA/SMC-TableReservation/internal/usecase/send_reminders"
)

type SendRemindersUseCase interface {
	Execute(ctx context.Context, req *sendReminders.Request) (*sendReminders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
