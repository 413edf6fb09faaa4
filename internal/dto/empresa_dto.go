package dto

import "github.com/Werneck0live/empresas-api/internal/models"

// EmpresaDTO é a representação trocada com os clientes.
type EmpresaDTO struct {
	ID           int64  `json:"id"`
	Empresa      string `json:"empresa"`
	Ciudad       string `json:"ciudad"`
	Image        string `json:"image"`
	AnioCreacion Date   `json:"aniocreacion"`
}

// NewEmpresaDTO copia todos os campos do registro; nil gera um DTO vazio.
func NewEmpresaDTO(e *models.Empresa) EmpresaDTO {
	if e == nil {
		return EmpresaDTO{}
	}
	return EmpresaDTO{
		ID:           e.ID,
		Empresa:      e.Empresa,
		Ciudad:       e.Ciudad,
		Image:        e.Image,
		AnioCreacion: NewDate(e.AnioCreacion),
	}
}

func (d EmpresaDTO) ToModel() *models.Empresa {
	return &models.Empresa{
		ID:           d.ID,
		Empresa:      d.Empresa,
		Ciudad:       d.Ciudad,
		Image:        d.Image,
		AnioCreacion: d.AnioCreacion.Time,
	}
}

// NewEmpresaDTOList nunca devolve nil, para o JSON sair como [].
func NewEmpresaDTOList(list []models.Empresa) []EmpresaDTO {
	out := make([]EmpresaDTO, 0, len(list))
	for i := range list {
		out = append(out, NewEmpresaDTO(&list[i]))
	}
	return out
}
