package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Env         string `env:"APP_ENV" default:"dev"`

	// Reservation policy. The window limit and the per-user cap are
	// deliberately configuration, not constants scattered per handler.
	MaxWindowDays         int `env:"RESERVATION_MAX_WINDOW_DAYS" default:"30"`
	MaxActiveReservations int `env:"RESERVATION_MAX_ACTIVE" default:"5"`
}
