package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NSQ        NSQConfig
	JWT        JWTConfig
	Settlement SettlementConfig
	Pricing    PricingConfig
	Teachers   TeachersConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address         string
	LookupAddresses []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SettlementConfig contains settlement gateway configuration
type SettlementConfig struct {
	URL            string
	APIKey         string
	TimeoutSeconds int
}

// PricingConfig contains platform pricing configuration
type PricingConfig struct {
	Currency          string  `json:"currency"`
	TeacherShare      float64 `json:"teacher_share"`       // fraction of a payment credited to the teacher
	MinDepositAmount  int64   `json:"min_deposit_amount"`  // minor units
	MinWithdrawAmount int64   `json:"min_withdraw_amount"` // minor units
}

// TeachersConfig contains teacher discovery configuration
type TeachersConfig struct {
	SearchRadiusKm float64 `json:"search_radius_km"` // radius in kilometers for nearby teacher search
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
