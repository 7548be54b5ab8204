package constants

// Redis key formats
const (
	// Users Service
	KeyUserSession = "user:session:%s" // Format: user:session:{user_id}
	KeyTeacherGeo  = "teacher:geo"     // GeoHash set of all teacher locations
	KeyTeacherCell = "teacher:cell:%s" // Format: teacher:cell:{geohash} cached nearby results

	// Wallet Service
	KeyWalletBalance = "wallet:balance:%s" // Format: wallet:balance:{user_id}

	// Schedule Service
	KeySessionDetail = "session:detail:%s" // Format: session:detail:{session_id}
)
