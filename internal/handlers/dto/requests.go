package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
	"github.com/rafabene/agendafoto-backend/internal/services"
)

// DateLayout é o formato de data aceito nos formulários
const DateLayout = "2006-01-02"

// Checkbox é um booleano de formulário; aceita "on" enviado por checkboxes HTML.
// Campo ausente vale false.
type Checkbox bool

// UnmarshalParam implementa binding.BindUnmarshaler
func (b *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "on", "true", "1", "yes":
		*b = true
	case "", "off", "false", "0", "no":
		*b = false
	default:
		return fmt.Errorf("invalid checkbox value %q", param)
	}
	return nil
}

// LoginRequest representa o formulário de login
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}

// TokenRequest representa o login da API com perfil explícito
type TokenRequest struct {
	Profile  string `json:"profile" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest representa o cadastro público de usuário
type RegisterRequest struct {
	Username        string `form:"username" json:"username" binding:"required,max=150"`
	Email           string `form:"email" json:"email" binding:"omitempty,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" binding:"required"`
}

func (r RegisterRequest) ToInput() services.RegisterInput {
	return services.RegisterInput{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

// ChangePasswordRequest representa a troca de senha
type ChangePasswordRequest struct {
	OldPassword     string `form:"old_password" json:"old_password" binding:"required"`
	NewPassword     string `form:"new_password" json:"new_password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

func (r ChangePasswordRequest) ToInput() services.ChangePasswordInput {
	return services.ChangePasswordInput{
		OldPassword:     r.OldPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// ClienteRequest representa o formulário de cliente
type ClienteRequest struct {
	Nome     string `form:"nome" json:"nome" binding:"max=100"`
	Telefone string `form:"telefone" json:"telefone" binding:"max=20"`
}

func (r ClienteRequest) ToInput() services.ClienteInput {
	return services.ClienteInput{Nome: r.Nome, Telefone: r.Telefone}
}

// FotografoRequest representa o formulário de fotógrafo
type FotografoRequest struct {
	Nome          string `form:"nome" json:"nome" binding:"max=100"`
	Especialidade string `form:"especialidade" json:"especialidade" binding:"max=100"`
	Telefone      string `form:"telefone" json:"telefone" binding:"max=20"`
	FotoPerfil    string `form:"foto_perfil" json:"foto_perfil" binding:"omitempty,url,max=200"`
}

func (r FotografoRequest) ToInput() services.FotografoInput {
	return services.FotografoInput{
		Nome:          r.Nome,
		Especialidade: r.Especialidade,
		Telefone:      r.Telefone,
		FotoPerfil:    r.FotoPerfil,
	}
}

// EstudioRequest representa o formulário de estúdio
type EstudioRequest struct {
	Nome     string `form:"nome" json:"nome" binding:"required,max=100"`
	Endereco string `form:"endereco" json:"endereco" binding:"max=255"`
	Telefone string `form:"telefone" json:"telefone" binding:"max=20"`
}

func (r EstudioRequest) ToInput() services.EstudioInput {
	return services.EstudioInput{Nome: r.Nome, Endereco: r.Endereco, Telefone: r.Telefone}
}

// SessaoRequest representa o formulário de sessão.
// Valor aceita número JSON, texto "250.00" ou "250,00" em formulários.
type SessaoRequest struct {
	Data        string      `form:"data" json:"data" binding:"required,datetime=2006-01-02"`
	Horario     string      `form:"horario" json:"horario" binding:"required,datetime=15:04"`
	Duracao     int         `form:"duracao" json:"duracao" binding:"required,gt=0"`
	Tipo        string      `form:"tipo" json:"tipo" binding:"required,max=50"`
	Valor       json.Number `form:"valor" json:"valor" binding:"required,preco"`
	Finalizado  Checkbox    `form:"finalizado" json:"finalizado"`
	ClienteID   uint        `form:"cliente" json:"cliente" binding:"required"`
	FotografoID uint        `form:"fotografo" json:"fotografo" binding:"required"`
	EstudioID   *uint       `form:"estudio" json:"estudio"`
}

// ToInput converte os campos textuais já validados pelo binding
func (r SessaoRequest) ToInput() (services.SessaoInput, error) {
	data, err := time.ParseInLocation(DateLayout, r.Data, time.UTC)
	if err != nil {
		return services.SessaoInput{}, domainerrors.NewValidationError("data", "validation_date_invalid")
	}

	valor, err := valueobjects.ParsePreco(r.Valor.String())
	if err != nil {
		return services.SessaoInput{}, domainerrors.NewValidationError("valor", err.Error())
	}

	input := services.SessaoInput{
		Data:        data,
		Horario:     r.Horario,
		Duracao:     r.Duracao,
		Tipo:        r.Tipo,
		Valor:       valor,
		Finalizado:  bool(r.Finalizado),
		ClienteID:   r.ClienteID,
		FotografoID: r.FotografoID,
	}
	if r.EstudioID != nil && *r.EstudioID != 0 {
		estudioID := *r.EstudioID
		input.EstudioID = &estudioID
	}
	return input, nil
}

// PortfolioRequest representa o envio de um link de foto
type PortfolioRequest struct {
	FotoURL   string `form:"foto_url" json:"foto_url" binding:"required,url,max=200"`
	Descricao string `form:"descricao" json:"descricao" binding:"max=255"`
}

func (r PortfolioRequest) ToInput() services.PortfolioInput {
	return services.PortfolioInput{FotoURL: r.FotoURL, Descricao: r.Descricao}
}

// ListQuery representa paginação e filtros das listagens
type ListQuery struct {
	Page       int   `form:"page" binding:"omitempty,min=1"`
	PageSize   int   `form:"page_size" binding:"omitempty,min=1,max=100"`
	Finalizado *bool `form:"finalizado"`
}

func (q ListQuery) Filters() repositories.ListFilters {
	return repositories.ListFilters{Page: q.Page, PageSize: q.PageSize}.Normalize()
}

func (q ListQuery) SessaoFilters() repositories.SessaoFilters {
	return repositories.SessaoFilters{ListFilters: q.Filters(), Finalizado: q.Finalizado}
}
