package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(254)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *int64 // unix
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// GroupModel é o registro de papéis; o nome é único
type GroupModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(150);uniqueIndex;not null"`
}

func (GroupModel) TableName() string {
	return "groups"
}

// UserGroupModel associa usuários e grupos
type UserGroupModel struct {
	UserID  uint `gorm:"primaryKey"`
	GroupID uint `gorm:"primaryKey"`

	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Group *GroupModel `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (UserGroupModel) TableName() string {
	return "user_groups"
}

// ClienteModel é o model GORM para clientes
type ClienteModel struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(100)"`
	Telefone  string `gorm:"type:varchar(20)"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ClienteModel) TableName() string {
	return "clientes"
}

// FotografoModel é o model GORM para fotógrafos
type FotografoModel struct {
	ID            uint   `gorm:"primaryKey"`
	Nome          string `gorm:"type:varchar(100)"`
	Especialidade string `gorm:"type:varchar(100)"`
	Telefone      string `gorm:"type:varchar(20)"`
	FotoPerfil    string `gorm:"type:varchar(200)"`
	UserID        uint   `gorm:"uniqueIndex;not null"`
	CreatedAt     int64  `gorm:"autoCreateTime"`
	UpdatedAt     int64  `gorm:"autoUpdateTime"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (FotografoModel) TableName() string {
	return "fotografos"
}

// EstudioModel é o model GORM para estúdios
type EstudioModel struct {
	ID              uint   `gorm:"primaryKey"`
	Nome            string `gorm:"type:varchar(100);not null"`
	Endereco        string `gorm:"type:varchar(255)"`
	Telefone        string `gorm:"type:varchar(20)"`
	CadastradoPorID uint   `gorm:"not null;index"`
	CreatedAt       int64  `gorm:"autoCreateTime"`
	UpdatedAt       int64  `gorm:"autoUpdateTime"`

	CadastradoPor *UserModel `gorm:"foreignKey:CadastradoPorID;constraint:OnDelete:CASCADE"`
}

func (EstudioModel) TableName() string {
	return "estudios"
}

// SessaoModel é o model GORM para sessões de fotos
type SessaoModel struct {
	ID              uint            `gorm:"primaryKey"`
	Data            time.Time       `gorm:"type:date;not null;index"`
	Horario         string          `gorm:"type:time;not null"`
	Duracao         int             `gorm:"not null;check:duracao > 0"`
	Tipo            string          `gorm:"type:varchar(50);not null"`
	Valor           decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	Finalizado      bool            `gorm:"not null;default:false"`
	ClienteID       uint            `gorm:"not null;index"`
	FotografoID     uint            `gorm:"not null;index"`
	EstudioID       *uint           `gorm:"index"`
	CadastradoPorID uint            `gorm:"not null;index"`
	CreatedAt       int64           `gorm:"autoCreateTime"`
	UpdatedAt       int64           `gorm:"autoUpdateTime"`

	Cliente       *ClienteModel   `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
	Fotografo     *FotografoModel `gorm:"foreignKey:FotografoID;constraint:OnDelete:RESTRICT"`
	Estudio       *EstudioModel   `gorm:"foreignKey:EstudioID;constraint:OnDelete:SET NULL"`
	CadastradoPor *UserModel      `gorm:"foreignKey:CadastradoPorID;constraint:OnDelete:CASCADE"`
}

func (SessaoModel) TableName() string {
	return "sessoes"
}

// PortfolioItemModel é o model GORM para links de fotos do portfólio
type PortfolioItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	FotografoID uint   `gorm:"not null;index"`
	FotoURL     string `gorm:"type:varchar(200);not null"`
	Descricao   string `gorm:"type:varchar(255)"`
	CreatedAt   int64  `gorm:"autoCreateTime"`

	Fotografo *FotografoModel `gorm:"foreignKey:FotografoID;constraint:OnDelete:CASCADE"`
}

func (PortfolioItemModel) TableName() string {
	return "portfolio_itens"
}
