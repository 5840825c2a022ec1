package bootstrap

import (
	"waitline/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.WaitlistConfig { return cfg.Waitlist },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
