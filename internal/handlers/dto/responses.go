package dto

import (
	"time"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// FormResponse descreve um formulário (GET das telas de cadastro/edição/exclusão)
type FormResponse struct {
	Titulo string      `json:"titulo"`
	Botao  string      `json:"botao"`
	Objeto interface{} `json:"objeto,omitempty"`
}

// ListResponse envelopa listagens paginadas
type ListResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewListResponse converte entidades com a função informada
func NewListResponse[E any, T any](items []E, filters repositories.ListFilters, convert func(E) T) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return ListResponse[T]{Items: out, Page: filters.Page, PageSize: filters.PageSize}
}

// ActorResponse resume o usuário logado e seus grupos
type ActorResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Grupos      []string `json:"grupos"`
	IsStaff     bool     `json:"is_staff"`
	IsSuperuser bool     `json:"is_superuser"`
}

func ToActorResponse(actor access.Actor) *ActorResponse {
	if !actor.IsAuthenticated() {
		return nil
	}

	grupos := make([]string, len(actor.Roles))
	for i, role := range actor.Roles {
		grupos[i] = role.String()
	}
	return &ActorResponse{
		ID:          actor.UserID,
		Username:    actor.Username,
		Grupos:      grupos,
		IsStaff:     actor.Staff,
		IsSuperuser: actor.Superuser,
	}
}

// HomeResponse é a página inicial: mensagens pendentes e o usuário logado
type HomeResponse struct {
	Usuario   *ActorResponse `json:"usuario"`
	Mensagens []string       `json:"mensagens"`
}

// TokenResponse é a resposta da emissão de token da API
type TokenResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresAt   time.Time      `json:"expires_at"`
	Usuario     *ActorResponse `json:"usuario"`
}

type ClienteResponse struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	UserID   uint   `json:"user_id"`
}

func ToClienteResponse(c *entities.Cliente) ClienteResponse {
	return ClienteResponse{ID: c.ID, Nome: c.Nome, Telefone: c.Telefone, UserID: c.UserID}
}

type FotografoResponse struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Especialidade string `json:"especialidade"`
	Telefone      string `json:"telefone"`
	FotoPerfil    string `json:"foto_perfil,omitempty"`
	UserID        uint   `json:"user_id"`
}

func ToFotografoResponse(f *entities.Fotografo) FotografoResponse {
	return FotografoResponse{
		ID:            f.ID,
		Nome:          f.Nome,
		Especialidade: f.Especialidade,
		Telefone:      f.Telefone,
		FotoPerfil:    f.FotoPerfil,
		UserID:        f.UserID,
	}
}

type EstudioResponse struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	CadastradoPor uint   `json:"cadastrado_por"`
}

func ToEstudioResponse(e *entities.Estudio) EstudioResponse {
	return EstudioResponse{
		ID:            e.ID,
		Nome:          e.Nome,
		Endereco:      e.Endereco,
		Telefone:      e.Telefone,
		CadastradoPor: e.CadastradoPorID,
	}
}

type SessaoResponse struct {
	ID            uint   `json:"id"`
	Data          string `json:"data"`
	Horario       string `json:"horario"`
	Duracao       int    `json:"duracao"`
	Tipo          string `json:"tipo"`
	Valor         string `json:"valor"`
	Finalizado    bool   `json:"finalizado"`
	Cliente       uint   `json:"cliente"`
	Fotografo     uint   `json:"fotografo"`
	Estudio       *uint  `json:"estudio"`
	CadastradoPor uint   `json:"cadastrado_por"`
}

func ToSessaoResponse(s *entities.Sessao) SessaoResponse {
	return SessaoResponse{
		ID:            s.ID,
		Data:          s.Data.Format(DateLayout),
		Horario:       s.Horario,
		Duracao:       s.Duracao,
		Tipo:          s.Tipo,
		Valor:         s.Valor.StringFixed(2),
		Finalizado:    s.Finalizado,
		Cliente:       s.ClienteID,
		Fotografo:     s.FotografoID,
		Estudio:       s.EstudioID,
		CadastradoPor: s.CadastradoPorID,
	}
}

type PortfolioItemResponse struct {
	ID        uint      `json:"id"`
	Fotografo uint      `json:"fotografo"`
	FotoURL   string    `json:"foto_url"`
	Descricao string    `json:"descricao"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPortfolioItemResponse(p *entities.PortfolioItem) PortfolioItemResponse {
	return PortfolioItemResponse{
		ID:        p.ID,
		Fotografo: p.FotografoID,
		FotoURL:   p.FotoURL,
		Descricao: p.Descricao,
		CreatedAt: p.CreatedAt,
	}
}
