package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/empresas-api/internal/dto"
	"github.com/Werneck0live/empresas-api/internal/models"
	"github.com/Werneck0live/empresas-api/internal/utils"
)

const (
	basePath       = "/empresas"
	requestTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
)

type Logic interface {
	Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error)
	List(ctx context.Context) ([]models.Empresa, error)
	Get(ctx context.Context, id int64) (*models.Empresa, error)
	Update(ctx context.Context, id int64, e *models.Empresa) (*models.Empresa, error)
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

// EmpresaHandler expõe /empresas. Pub é opcional (nil desliga os eventos).
type EmpresaHandler struct {
	Logic Logic
	Pub   Publisher
	Log   *slog.Logger
}

func NewEmpresaHandler(logic Logic, pub Publisher, log *slog.Logger) *EmpresaHandler {
	return &EmpresaHandler{Logic: logic, Pub: pub, Log: log}
}

// Registra as rotas no mux informado.
func (h *EmpresaHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc(basePath, h.Empresas)
	mux.HandleFunc(basePath+"/", h.EmpresaByID)
}

func (h *EmpresaHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}

// garantir que a requisição venha no padrão /empresas/{id}, com id numérico
func parseIDFromPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "empresas" || parts[1] == "" {
		return 0, false
	}
	for _, r := range parts[1] {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("El recurso %s/%d no existe.", basePath, id)
}

func (h *EmpresaHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EmpresaHandler) Empresas(w http.ResponseWriter, r *http.Request) {
	switch r.Method {

	// list
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		list, err := h.Logic.List(ctx)
		if err != nil {
			utils.ServerError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, dto.NewEmpresaDTOList(list))

	// create
	case http.MethodPost:
		var in dto.EmpresaDTO
		if err := utils.DecodeStrict(r.Body, &in); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		created, err := h.Logic.Create(ctx, in.ToModel())
		if err != nil {
			utils.ServerError(w, err)
			return
		}

		h.publishEvent("Creación", created)
		utils.WriteJSON(w, http.StatusOK, dto.NewEmpresaDTO(created))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *EmpresaHandler) EmpresaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDFromPath(r.URL.Path)
	if !ok {
		utils.NotFound(w, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		e, err := h.Logic.Get(ctx, id)
		if err != nil {
			utils.ServerError(w, err)
			return
		}
		if e == nil {
			utils.NotFound(w, notFoundMessage(id))
			return
		}
		utils.WriteJSON(w, http.StatusOK, dto.NewEmpresaDTO(e))

	case http.MethodPut:
		var in dto.EmpresaDTO
		if err := utils.DecodeStrict(r.Body, &in); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		// o id da rota prevalece sobre o do corpo
		in.ID = id

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		current, err := h.Logic.Get(ctx, id)
		if err != nil {
			utils.ServerError(w, err)
			return
		}
		if current == nil {
			utils.NotFound(w, notFoundMessage(id))
			return
		}

		// PUT = replace: grava o registro recebido inteiro, sem mesclar com o atual
		updated, err := h.Logic.Update(ctx, id, in.ToModel())
		if err != nil {
			utils.ServerError(w, err)
			return
		}

		h.publishEvent("Actualización", updated)
		utils.WriteJSON(w, http.StatusOK, dto.NewEmpresaDTO(updated))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// publishEvent é best-effort: falha no broker só gera log.
func (h *EmpresaHandler) publishEvent(accion string, e *models.Empresa) {
	if h.Pub == nil || e == nil {
		return
	}
	nombre := e.Empresa
	if nombre == "" {
		nombre = strconv.FormatInt(e.ID, 10)
	}
	msg := fmt.Sprintf("%s de EMPRESA %s", accion, nombre)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := h.Pub.Publish(ctx, msg, amqp.Table{
		"action":     actionKey(accion),
		"empresa_id": e.ID,
		"nombre":     nombre,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger().Warn("event_publish_error", "action", actionKey(accion), "id", e.ID, "err", err)
	}
}

// creacion|actualizacion
func actionKey(accion string) string {
	r := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return r.Replace(strings.ToLower(accion))
}
