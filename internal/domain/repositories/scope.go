package repositories

// Colunas de dono usadas pelos escopos de acesso
const (
	OwnerColumnUser          = "user_id"
	OwnerColumnCadastradoPor = "cadastrado_por_id"
)

// Scope é o predicado de visibilidade aplicado às consultas de um ator.
// Unrestricted libera todas as linhas; caso contrário filtra Column = UserID.
type Scope struct {
	Unrestricted bool
	Column       string
	UserID       uint
}

// Everything retorna um escopo sem restrição (staff/superusuário)
func Everything() Scope {
	return Scope{Unrestricted: true}
}

// OwnedBy retorna um escopo restrito às linhas do usuário
func OwnedBy(column string, userID uint) Scope {
	return Scope{Column: column, UserID: userID}
}

// Includes avalia o predicado em memória para um dono já carregado
func (s Scope) Includes(ownerID uint) bool {
	if s.Unrestricted {
		return true
	}
	return s.UserID != 0 && s.UserID == ownerID
}

// ListFilters contém paginação comum às listagens
type ListFilters struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

// Normalize aplica os limites de paginação
func (f ListFilters) Normalize() ListFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	return f
}

// Offset retorna o deslocamento da página
func (f ListFilters) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.PageSize
}
