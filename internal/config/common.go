package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	// carrega o .env (se existir) antes de lermos o ambiente
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var validate = validator.New()

// load lê as variáveis de ambiente listadas em keys (ENV -> chave koanf)
// sobre dst já preenchido com os defaults, e valida o resultado.
func load(keys map[string]string, dst any) error {
	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return keys[s] // "" = variável ignorada
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", dst); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func InitLogger(level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	slog.SetDefault(l) // permite usar slog.Info/Error globalmente
	return l
}
