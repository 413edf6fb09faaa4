package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Werneck0live/empresas-api/internal/dto"
	"github.com/Werneck0live/empresas-api/internal/models"
)

//go:embed seeds/empresas.json
var empresasJSON []byte

// Store é o subconjunto da lógica usado pelo seed.
type Store interface {
	List(ctx context.Context) ([]models.Empresa, error)
	Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error)
}

// SeedEmpresas só popula um armazenamento vazio; como o id é gerado,
// rodar de novo duplicaria tudo.
func SeedEmpresas(ctx context.Context, store Store, log *slog.Logger) (int, error) {
	return seed(ctx, store, log, empresasJSON)
}

func seed(ctx context.Context, store Store, log *slog.Logger, raw []byte) (int, error) {
	var items []dto.EmpresaDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, err
	}

	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Info("seed_skip_not_empty", "existing", len(existing))
		return 0, nil
	}

	created := 0
	for _, it := range items {
		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		e, err := store.Create(ictx, it.ToModel())
		cancel()
		if err != nil {
			return created, err
		}
		created++
		log.Info("seed_empresa_created", "id", e.ID, "empresa", e.Empresa)
	}

	log.Info("seed_empresas_done", "count", created)
	return created, nil
}
