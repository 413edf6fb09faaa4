package handlers

import (
	"context"
	"errors"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/empresas-api/internal/models"
)

type logicMock struct {
	CreateFn func(ctx context.Context, e *models.Empresa) (*models.Empresa, error)
	ListFn   func(ctx context.Context) ([]models.Empresa, error)
	GetFn    func(ctx context.Context, id int64) (*models.Empresa, error)
	UpdateFn func(ctx context.Context, id int64, e *models.Empresa) (*models.Empresa, error)
}

func (m *logicMock) Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	if m.CreateFn == nil {
		return nil, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, e)
}
func (m *logicMock) List(ctx context.Context) ([]models.Empresa, error) {
	if m.ListFn == nil {
		return nil, errors.New("ListFn not set")
	}
	return m.ListFn(ctx)
}
func (m *logicMock) Get(ctx context.Context, id int64) (*models.Empresa, error) {
	if m.GetFn == nil {
		return nil, errors.New("GetFn not set")
	}
	return m.GetFn(ctx, id)
}
func (m *logicMock) Update(ctx context.Context, id int64, e *models.Empresa) (*models.Empresa, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, e)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp091.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp091.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
