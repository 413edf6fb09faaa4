package service

import (
	"context"
	"log/slog"

	"github.com/Werneck0live/empresas-api/internal/models"
)

// Persistence é o contrato de armazenamento; Mongo, Postgres e memória implementam.
type Persistence interface {
	Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error)
	FindAll(ctx context.Context) ([]models.Empresa, error)
	Find(ctx context.Context, id int64) (*models.Empresa, error)
	Update(ctx context.Context, e *models.Empresa) (*models.Empresa, error)
	Delete(ctx context.Context, id int64) error
}

// EmpresaLogic apenas delega para a persistência, registrando início e fim de cada operação.
type EmpresaLogic struct {
	persistence Persistence
	log         *slog.Logger
}

func NewEmpresaLogic(p Persistence, log *slog.Logger) *EmpresaLogic {
	if log == nil {
		log = slog.Default()
	}
	return &EmpresaLogic{persistence: p, log: log.With("cmp", "empresa.logic")}
}

func (l *EmpresaLogic) Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	l.log.Info("empresa_create_start")
	created, err := l.persistence.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	l.log.Info("empresa_create_done", "id", created.ID)
	return created, nil
}

func (l *EmpresaLogic) List(ctx context.Context) ([]models.Empresa, error) {
	l.log.Info("empresa_list_start")
	list, err := l.persistence.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	l.log.Info("empresa_list_done", "count", len(list))
	return list, nil
}

// Get devolve (nil, nil) quando a empresa não existe; quem chama decide o erro.
func (l *EmpresaLogic) Get(ctx context.Context, id int64) (*models.Empresa, error) {
	l.log.Info("empresa_get_start", "id", id)
	e, err := l.persistence.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		l.log.Error("empresa_not_found", "id", id)
	}
	l.log.Info("empresa_get_done", "id", id)
	return e, nil
}

func (l *EmpresaLogic) Update(ctx context.Context, id int64, e *models.Empresa) (*models.Empresa, error) {
	l.log.Info("empresa_update_start", "id", id)
	updated, err := l.persistence.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	l.log.Info("empresa_update_done", "id", id)
	return updated, nil
}
