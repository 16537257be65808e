package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/logging"
)

type fakeUsers struct {
	repositories.UserRepository
	users map[uint]*entities.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*entities.User, error) {
	return f.users[id], nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID uint) (string, time.Time, error) {
	return "token-valido", time.Now().Add(time.Hour), nil
}

func (fakeTokens) Verify(token string) (uint, error) {
	if token == "token-valido" {
		return 7, nil
	}
	return 0, domainerrors.ErrUnauthenticated
}

func newAuthRouter(t *testing.T) (*gin.Engine, *SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := NewSessionManager([]byte("segredo-de-teste-com-32-bytes!!!"), 3600, false)
	users := &fakeUsers{users: map[uint]*entities.User{
		7: {ID: 7, Username: "ana", IsActive: true, Groups: []entities.Role{entities.RoleCliente}},
		8: {ID: 8, Username: "inativo", IsActive: false},
	}}
	authenticator := NewAuthenticator(manager, fakeTokens{}, users, logging.NewNopLogger())

	router := gin.New()
	router.Use(authenticator.ResolveActor())
	router.POST("/entrar/:id", func(c *gin.Context) {
		id := map[string]uint{"7": 7, "8": 8}[c.Param("id")]
		_ = manager.Login(c, id)
		c.Status(http.StatusNoContent)
	})

	unauthorized := func(c *gin.Context) { c.Status(http.StatusUnauthorized) }
	protected := func(c *gin.Context) {
		c.String(http.StatusOK, GetActor(c).Username)
	}
	router.GET("/listar/sessoes", RequireAuth(unauthorized), protected)
	router.GET("/api/v1/eu", RequireAuth(unauthorized), protected)

	return router, manager
}

func TestRequireAuth(t *testing.T) {
	router, _ := newAuthRouter(t)

	t.Run("navegador anônimo é redirecionado ao login com next", func(t *testing.T) {
		w := perform(router, "GET", "/listar/sessoes?page=2", nil)
		if w.Code != http.StatusFound {
			t.Fatalf("esperava 302, obteve %d", w.Code)
		}
		expected := "/login?next=%2Flistar%2Fsessoes%3Fpage%3D2"
		if loc := w.Header().Get("Location"); loc != expected {
			t.Errorf("esperava Location '%s', obteve '%s'", expected, loc)
		}
	})

	t.Run("cliente de API anônimo recebe 401", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/eu", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("token Bearer inválido recebe 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/listar/sessoes", nil)
		req.Header.Set("Authorization", "Bearer forjado")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("token Bearer válido resolve o ator", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/eu", nil)
		req.Header.Set("Authorization", "bearer token-valido")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "ana" {
			t.Errorf("esperava 200 'ana', obteve %d '%s'", w.Code, w.Body.String())
		}
	})

	t.Run("sessão de cookie resolve o ator", func(t *testing.T) {
		login := perform(router, "POST", "/entrar/7", nil)
		w := perform(router, "GET", "/listar/sessoes", login.Result().Cookies())
		if w.Code != http.StatusOK || w.Body.String() != "ana" {
			t.Errorf("esperava 200 'ana', obteve %d '%s'", w.Code, w.Body.String())
		}
	})

	t.Run("usuário inativo é tratado como anônimo", func(t *testing.T) {
		login := perform(router, "POST", "/entrar/8", nil)
		w := perform(router, "GET", "/listar/sessoes", login.Result().Cookies())
		if w.Code != http.StatusFound {
			t.Errorf("esperava 302, obteve %d", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"BEARER abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.Header.Set("Authorization", tt.header)

			token, ok := BearerToken(c)
			if token != tt.token || ok != tt.ok {
				t.Errorf("esperava (%q, %v), obteve (%q, %v)", tt.token, tt.ok, token, ok)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logging.NewNopLogger()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("gera um ID quando o header está ausente", func(t *testing.T) {
		w := perform(router, "GET", "/", nil)
		if len(w.Header().Get(RequestIDHeader)) != 36 {
			t.Errorf("esperava UUID no header, obteve '%s'", w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("propaga um ID válido recebido", func(t *testing.T) {
		id := "0b9e4a8c-3f55-4a8e-9a0e-6c1f3f1c2d4e"
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, id)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Header().Get(RequestIDHeader) != id {
			t.Errorf("esperava '%s', obteve '%s'", id, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("substitui ID malformado", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if strings.Contains(w.Header().Get(RequestIDHeader), "script") {
			t.Error("ID malformado não deveria ser propagado")
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS("http://app.local, http://admin.local"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("libera origem configurada", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "http://admin.local")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://admin.local" {
			t.Errorf("esperava origem liberada, obteve '%s'", got)
		}
	})

	t.Run("bloqueia origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "http://evil.local")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava 403, obteve %d", w.Code)
		}
	})
}
