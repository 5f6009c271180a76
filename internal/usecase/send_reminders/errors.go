package send_reminders

import "errors"

var (
	// ErrAccessDenied рассылку запускает только сотрудник или планировщик
	ErrAccessDenied = errors.New("send_reminders: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminders: internal error")
)
