package constants

// NSQ topics
const (
	// Wallet Service events
	TopicPaymentCompleted = "payment.completed"
	TopicPaymentFailed    = "payment.failed"
	TopicWalletDeposited  = "wallet.deposited"
	TopicWalletWithdrawn  = "wallet.withdrawn"

	// Schedule Service channels
	ChannelScheduleService = "schedule-service"
)
