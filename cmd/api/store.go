package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Werneck0live/empresas-api/internal/config"
	"github.com/Werneck0live/empresas-api/internal/db"
	"github.com/Werneck0live/empresas-api/internal/repository"
	"github.com/Werneck0live/empresas-api/internal/service"
)

// openStore escolhe a persistência pelo STORE_DRIVER. O close devolvido nunca é nil.
func openStore(cfg *config.Config, log *slog.Logger) (service.Persistence, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := db.NewMongoClient(cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return repository.NewEmpresaRepository(client.Database(cfg.MongoDB)), closeFn, nil

	case config.StorePostgres:
		gdb, err := db.OpenPostgres(cfg.PostgresDSN, log)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		closeFn := func() { _ = db.ClosePostgres(gdb) }
		repo := repository.NewEmpresaSQLRepository(gdb)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil

	case config.StoreMemory:
		return repository.NewMemoryRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
