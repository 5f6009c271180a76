package domain

// NotificationKind тип уведомления по бронированию
type NotificationKind string

const (
	NotificationCreated   NotificationKind = "created"
	NotificationReminder  NotificationKind = "reminder"
	NotificationConfirmed NotificationKind = "confirmed"
	NotificationCanceled  NotificationKind = "canceled"
)
