package constants

// NSQ topics and channels
const (
	// TopicNotifications carries models.NotificationEvent payloads
	TopicNotifications = "notifications"

	// ChannelNotificationStore persists notifications to the database
	ChannelNotificationStore = "store"
)
