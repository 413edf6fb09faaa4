package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/empresas-api/internal/dto"
	"github.com/Werneck0live/empresas-api/internal/models"
)

/*
RODAR TODOS OS TESTES:

go test -run 'TestEmpresas_|TestEmpresaByID_' -v ./internal/handlers -count=1

*/

var founded = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

// 1) GET (List) - go test -run 'TestEmpresas_List' -v ./internal/handlers -count=1

func TestEmpresas_List(t *testing.T) {
	lm := &logicMock{
		ListFn: func(_ context.Context) ([]models.Empresa, error) {
			return []models.Empresa{
				{ID: 1, Empresa: "Acme", Ciudad: "Bogota", AnioCreacion: founded},
			}, nil
		},
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d; body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got []dto.EmpresaDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\nbody=%s", err, rr.Body.String())
	}
	if len(got) != 1 || got[0].Empresa != "Acme" || !got[0].AnioCreacion.Equal(founded) {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

// Lista vazia deve sair como [] e não null
func TestEmpresas_List_Empty(t *testing.T) {
	lm := &logicMock{
		ListFn: func(_ context.Context) ([]models.Empresa, error) { return nil, nil },
	}
	h := &EmpresaHandler{Logic: lm}

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("body=%s want []", body)
	}
}

// Erro da camada de lógica → 500
func TestEmpresas_List_LogicError(t *testing.T) {
	lm := &logicMock{
		ListFn: func(_ context.Context) ([]models.Empresa, error) { return nil, errors.New("boom") },
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusInternalServerError, rr.Body.String())
	}
}

// Method Not Allowed (405)
func TestEmpresas_MethodNotAllowed(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}
	req := httptest.NewRequest(http.MethodDelete, "/empresas", nil)
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusMethodNotAllowed)
	}
}

// 2) POST (create) - go test -run 'TestEmpresas_Create' -v ./internal/handlers -count=1

func TestEmpresas_Create_Valid(t *testing.T) {
	var published string
	var headers amqp091.Table
	lm := &logicMock{
		CreateFn: func(_ context.Context, e *models.Empresa) (*models.Empresa, error) {
			if e.Empresa != "Acme" || e.Ciudad != "Bogota" || !e.AnioCreacion.Equal(founded) {
				t.Fatalf("campos não chegaram na lógica: %#v", e)
			}
			e.ID = 1
			return e, nil
		},
	}
	pm := &pubMock{PublishFn: func(_ context.Context, body string, h amqp091.Table) error {
		published, headers = body, h
		return nil
	}}
	h := &EmpresaHandler{Logic: lm, Pub: pm}

	body := bytes.NewBufferString(`{
		"empresa": "Acme",
		"ciudad": "Bogota",
		"image": "x.png",
		"aniocreacion": "1990-01-01"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/empresas", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got dto.EmpresaDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if got.ID != 1 || got.Empresa != "Acme" || got.Image != "x.png" {
		t.Fatalf("payload inesperado: %#v", got)
	}
	if published != "Creación de EMPRESA Acme" {
		t.Fatalf("evento inesperado: %q", published)
	}
	if headers["action"] != "creacion" || headers["empresa_id"] != int64(1) {
		t.Fatalf("headers inesperados: %#v", headers)
	}
}

// ---------- 400 BAD REQUEST (JSON inválido)
func TestEmpresas_Create_InvalidJSON(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodPost, "/empresas", bytes.NewBufferString(`{`))
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

// ---------- 400 BAD REQUEST (data fora do formato)
func TestEmpresas_Create_InvalidDate(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodPost, "/empresas", bytes.NewBufferString(`{"empresa":"Acme","aniocreacion":"01/01/1990"}`))
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

// Falha no broker não pode derrubar a resposta
func TestEmpresas_Create_PublishErrorIgnored(t *testing.T) {
	lm := &logicMock{
		CreateFn: func(_ context.Context, e *models.Empresa) (*models.Empresa, error) {
			e.ID = 3
			return e, nil
		},
	}
	pm := &pubMock{PublishFn: func(_ context.Context, _ string, _ amqp091.Table) error {
		return errors.New("broker down")
	}}
	h := &EmpresaHandler{Logic: lm, Pub: pm}

	req := httptest.NewRequest(http.MethodPost, "/empresas", bytes.NewBufferString(`{"empresa":"Acme"}`))
	rr := httptest.NewRecorder()
	h.Empresas(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

// 3) GET (ById{id}) - go test -run 'TestEmpresaByID_Get' -v ./internal/handlers -count=1

func TestEmpresaByID_Get_Found(t *testing.T) {
	lm := &logicMock{
		GetFn: func(_ context.Context, id int64) (*models.Empresa, error) {
			if id != 7 {
				t.Fatalf("id inesperado: got=%d want=7", id)
			}
			return &models.Empresa{ID: id, Empresa: "Acme", AnioCreacion: founded}, nil
		},
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/empresas/7", nil)
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"aniocreacion":"1990-01-01"`) {
		t.Fatalf("formato de data inesperado: %s", rr.Body.String())
	}
}

// ---------- 404 Not Found (lógica devolve nil)
func TestEmpresaByID_Get_NotFound(t *testing.T) {
	lm := &logicMock{
		GetFn: func(_ context.Context, _ int64) (*models.Empresa, error) { return nil, nil },
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/empresas/42", nil)
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "El recurso /empresas/42 no existe." {
		t.Fatalf("mensagem inesperada: %#v", body)
	}
}

// ---------- 404 Not Found (id não numérico ou ausente)
func TestEmpresaByID_Get_InvalidPath(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}

	for _, path := range []string{"/empresas/", "/empresas/abc", "/empresas/-1", "/empresas/1/extra"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.EmpresaByID(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("path=%s status=%d want=%d", path, rr.Code, http.StatusNotFound)
		}
	}
}

// ---------- 500 (erro de storage)
func TestEmpresaByID_Get_LogicError(t *testing.T) {
	lm := &logicMock{
		GetFn: func(_ context.Context, _ int64) (*models.Empresa, error) { return nil, errors.New("boom") },
	}
	h := &EmpresaHandler{Logic: lm}

	req := httptest.NewRequest(http.MethodGet, "/empresas/1", nil)
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusInternalServerError)
	}
}

// 4) PUT (replace) - go test -run 'TestEmpresaByID_Put' -v ./internal/handlers -count=1

func TestEmpresaByID_Put_OK(t *testing.T) {
	var published string
	lm := &logicMock{
		GetFn: func(_ context.Context, id int64) (*models.Empresa, error) {
			return &models.Empresa{ID: id, Empresa: "Old", Ciudad: "Bogota", Image: "old.png"}, nil
		},
		UpdateFn: func(_ context.Context, id int64, e *models.Empresa) (*models.Empresa, error) {
			if id != 7 || e.ID != 7 {
				t.Fatalf("id inesperado: path=%d body=%d", id, e.ID)
			}
			// sem merge: image omitida deve chegar vazia
			if e.Empresa != "Acme NEW" || e.Image != "" {
				t.Fatalf("registro inesperado: %#v", e)
			}
			return e, nil
		},
	}
	pm := &pubMock{PublishFn: func(_ context.Context, body string, _ amqp091.Table) error {
		published = body
		return nil
	}}
	h := &EmpresaHandler{Logic: lm, Pub: pm}

	// id do corpo é ignorado em favor do id da rota
	body := bytes.NewBufferString(`{"id": 99, "empresa": "Acme NEW", "ciudad": "Cali"}`)
	req := httptest.NewRequest(http.MethodPut, "/empresas/7", body)
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got dto.EmpresaDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if got.ID != 7 || got.Empresa != "Acme NEW" || got.Ciudad != "Cali" {
		t.Fatalf("payload inesperado: %#v", got)
	}
	if published != "Actualización de EMPRESA Acme NEW" {
		t.Fatalf("evento inesperado: %q", published)
	}
}

// ---------- 404 Not Found (Get inicial não acha, Update não pode ser chamado)
func TestEmpresaByID_Put_NotFound(t *testing.T) {
	lm := &logicMock{
		GetFn: func(_ context.Context, _ int64) (*models.Empresa, error) { return nil, nil },
		UpdateFn: func(_ context.Context, _ int64, _ *models.Empresa) (*models.Empresa, error) {
			t.Fatal("Update não deveria ser chamado")
			return nil, nil
		},
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodPut, "/empresas/5", bytes.NewBufferString(`{"empresa":"Acme"}`))
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

// ---------- 400 BAD REQUEST (campo desconhecido)
func TestEmpresaByID_Put_UnknownField(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodPut, "/empresas/5", bytes.NewBufferString(`{"cnpj":"x"}`))
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

// ---------- 500 (Update falha)
func TestEmpresaByID_Put_UpdateError(t *testing.T) {
	lm := &logicMock{
		GetFn: func(_ context.Context, id int64) (*models.Empresa, error) { return &models.Empresa{ID: id}, nil },
		UpdateFn: func(_ context.Context, _ int64, _ *models.Empresa) (*models.Empresa, error) {
			return nil, errors.New("boom")
		},
	}
	h := &EmpresaHandler{Logic: lm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodPut, "/empresas/5", bytes.NewBufferString(`{"empresa":"Acme"}`))
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusInternalServerError)
	}
}

// DELETE não é exposto pela API
func TestEmpresaByID_DeleteNotAllowed(t *testing.T) {
	h := &EmpresaHandler{Logic: &logicMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodDelete, "/empresas/5", nil)
	rr := httptest.NewRecorder()
	h.EmpresaByID(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHealth(t *testing.T) {
	h := &EmpresaHandler{}
	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
}
