package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	// IdentitySessionName guarda o usuário autenticado
	IdentitySessionName = "agendafoto_session"
	// FlashSessionName guarda mensagens de uma requisição para a próxima.
	// Fica separado da identidade para sobreviver ao logout.
	FlashSessionName = "agendafoto_flash"

	userIDKey = "user_id"
)

// SessionManager gerencia a sessão de login e as mensagens flash em cookies assinados
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager cria um SessionManager. maxAge em segundos.
func NewSessionManager(secret []byte, maxAge int, secure bool) *SessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(maxAge)
	return &SessionManager{store: store}
}

// Login grava o usuário na sessão de identidade
func (m *SessionManager) Login(c *gin.Context, userID uint) error {
	session, _ := m.store.Get(c.Request, IdentitySessionName)
	session.Values[userIDKey] = userID
	session.Options.MaxAge = m.store.Options.MaxAge
	return session.Save(c.Request, c.Writer)
}

// Logout revoga a sessão de identidade (flashes pendentes são mantidos)
func (m *SessionManager) Logout(c *gin.Context) error {
	session, _ := m.store.Get(c.Request, IdentitySessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

// UserID retorna o usuário da sessão; cookie inválido equivale a sessão vazia
func (m *SessionManager) UserID(c *gin.Context) (uint, bool) {
	session, err := m.store.Get(c.Request, IdentitySessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[userIDKey].(uint)
	return id, ok && id != 0
}

// AddFlash enfileira uma mensagem para a próxima página
func (m *SessionManager) AddFlash(c *gin.Context, message string) error {
	session, _ := m.store.Get(c.Request, FlashSessionName)
	session.AddFlash(message)
	return session.Save(c.Request, c.Writer)
}

// Flashes consome as mensagens pendentes
func (m *SessionManager) Flashes(c *gin.Context) ([]string, error) {
	session, _ := m.store.Get(c.Request, FlashSessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages, session.Save(c.Request, c.Writer)
}
