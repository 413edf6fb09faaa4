package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Werneck0live/empresas-api/internal/models"
)

// EmpresaSQLRepository persiste empresas numa tabela relacional via GORM.
type EmpresaSQLRepository struct {
	db *gorm.DB
}

func NewEmpresaSQLRepository(db *gorm.DB) *EmpresaSQLRepository {
	return &EmpresaSQLRepository{db: db}
}

// EnsureSchema cria a tabela "empresas" se ela ainda não existir.
func (r *EmpresaSQLRepository) EnsureSchema(ctx context.Context) error {
	return pkgerrors.Wrap(r.db.WithContext(ctx).AutoMigrate(&models.Empresa{}), "automigrate empresas")
}

func (r *EmpresaSQLRepository) Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	e.ID = 0 // o banco atribui
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "insert empresa")
	}
	return e, nil
}

func (r *EmpresaSQLRepository) FindAll(ctx context.Context) ([]models.Empresa, error) {
	list := []models.Empresa{}
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "find empresas")
	}
	return list, nil
}

func (r *EmpresaSQLRepository) Find(ctx context.Context, id int64) (*models.Empresa, error) {
	var e models.Empresa
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "find empresa %d", id)
	}
	return &e, nil
}

// Update grava todas as colunas (Save faz insert quando a linha não existe).
func (r *EmpresaSQLRepository) Update(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "save empresa %d", e.ID)
	}
	return e, nil
}

func (r *EmpresaSQLRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Empresa{}, id)
	if res.Error != nil {
		return pkgerrors.Wrapf(res.Error, "delete empresa %d", id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
