package entities

// Role é o nome de um grupo de usuários (registro de papéis)
type Role string

const (
	RoleCliente   Role = "Cliente"
	RoleFotografo Role = "Fotógrafo"
	RoleAdmin     Role = "Admin"
)

// String retorna o nome do grupo
func (r Role) String() string {
	return string(r)
}

// Profile é o perfil escolhido no login e no cadastro ("cliente" ou "fotografo")
type Profile string

const (
	ProfileCliente   Profile = "cliente"
	ProfileFotografo Profile = "fotografo"
)

// ParseProfile valida o perfil vindo da rota
func ParseProfile(s string) (Profile, bool) {
	switch Profile(s) {
	case ProfileCliente, ProfileFotografo:
		return Profile(s), true
	default:
		return "", false
	}
}

// Role retorna o grupo exigido pelo perfil
func (p Profile) Role() Role {
	if p == ProfileFotografo {
		return RoleFotografo
	}
	return RoleCliente
}

// ConflictingRole retorna o grupo que não pode coexistir com o perfil
func (p Profile) ConflictingRole() Role {
	if p == ProfileFotografo {
		return RoleCliente
	}
	return RoleFotografo
}

// LoginPath retorna a rota de login específica do perfil
func (p Profile) LoginPath() string {
	return "/login/" + string(p)
}
