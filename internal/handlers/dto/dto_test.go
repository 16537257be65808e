package dto

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/cadastrar/sessao", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c
}

func validSessao() url.Values {
	return url.Values{
		"data":      {"2025-06-01"},
		"horario":   {"14:00"},
		"duracao":   {"60"},
		"tipo":      {"retrato"},
		"valor":     {"250.00"},
		"cliente":   {"1"},
		"fotografo": {"2"},
	}
}

func TestSessaoRequestBinding(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		name  string
		field string
		value string
		tag   string
	}{
		{"data em formato inválido", "data", "01/06/2025", "datetime"},
		{"horário fora do formato HH:MM", "horario", "14h", "datetime"},
		{"duração zero", "duracao", "0", "required"},
		{"tipo ausente", "tipo", "", "required"},
		{"valor com três casas decimais", "valor", "10.005", "preco"},
		{"valor negativo", "valor", "-1", "preco"},
		{"valor acima do limite", "valor", "100000", "preco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validSessao()
			values.Set(tt.field, tt.value)
			c := formContext(t, values)

			var req SessaoRequest
			err := c.ShouldBind(&req)
			if err == nil {
				t.Fatal("esperava erro de binding, obteve sucesso")
			}

			errs := BindingErrors(c, err)
			if len(errs) != 1 {
				t.Fatalf("esperava um erro de campo, obteve %+v", errs)
			}
			if errs[0].Field != tt.field || errs[0].Tag != tt.tag {
				t.Errorf("esperava %s/%s, obteve %s/%s", tt.field, tt.tag, errs[0].Field, errs[0].Tag)
			}
			if errs[0].Message != "binding."+tt.tag {
				t.Errorf("sem i18n a mensagem deveria ser a chave, obteve '%s'", errs[0].Message)
			}
		})
	}

	t.Run("formulário válido converte valor com vírgula", func(t *testing.T) {
		values := validSessao()
		values.Set("valor", "250,5")
		values.Set("estudio", "")

		var req SessaoRequest
		if err := formContext(t, values).ShouldBind(&req); err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}

		input, err := req.ToInput()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if input.Valor.StringFixed(2) != "250.50" {
			t.Errorf("esperava 250.50, obteve %s", input.Valor.StringFixed(2))
		}
		if input.EstudioID != nil {
			t.Errorf("estúdio vazio deveria ser nulo, obteve %v", *input.EstudioID)
		}
		if input.Data.Format(DateLayout) != "2025-06-01" || input.ClienteID != 1 || input.FotografoID != 2 {
			t.Errorf("conversão inesperada: %+v", input)
		}
	})
}

func TestSessaoRequestFinalizado(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		value    string
		expected bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"off", false},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("finalizado="+tt.value, func(t *testing.T) {
			values := validSessao()
			values.Set("finalizado", tt.value)

			var req SessaoRequest
			if err := formContext(t, values).ShouldBind(&req); err != nil {
				t.Fatalf("esperava sucesso, obteve %v", err)
			}
			input, err := req.ToInput()
			if err != nil {
				t.Fatalf("esperava sucesso, obteve %v", err)
			}
			if input.Finalizado != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, input.Finalizado)
			}
		})
	}

	t.Run("checkbox ausente vale false", func(t *testing.T) {
		var req SessaoRequest
		if err := formContext(t, validSessao()).ShouldBind(&req); err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if req.Finalizado {
			t.Error("esperava false")
		}
	})

	t.Run("valor desconhecido é rejeitado", func(t *testing.T) {
		values := validSessao()
		values.Set("finalizado", "talvez")

		var req SessaoRequest
		if err := formContext(t, values).ShouldBind(&req); err == nil {
			t.Error("esperava erro de binding")
		}
	})

	t.Run("JSON aceita booleano", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		body := `{"data":"2025-06-01","horario":"14:00","duracao":60,"tipo":"retrato","valor":250,` +
			`"cliente":1,"fotografo":2,"finalizado":true}`
		c.Request = httptest.NewRequest("POST", "/cadastrar/sessao", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var req SessaoRequest
		if err := c.ShouldBind(&req); err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if !req.Finalizado {
			t.Error("esperava true")
		}
	})
}

func TestBindingErrors_Malformed(t *testing.T) {
	c := formContext(t, url.Values{})
	errs := BindingErrors(c, errors.New("invalid character"))
	if len(errs) != 1 || errs[0].Tag != "invalid" || errs[0].Field != "" {
		t.Errorf("esperava um erro genérico, obteve %+v", errs)
	}
}

func TestDomainValidationErrors(t *testing.T) {
	c := formContext(t, url.Values{})
	verr := &domainerrors.ValidationError{Fields: map[string]string{
		"valor":   "error.invalid_preco",
		"cliente": "validation.invalid_choice",
	}}

	errs := DomainValidationErrors(c, verr)
	if len(errs) != 2 || errs[0].Field != "cliente" || errs[1].Field != "valor" {
		t.Fatalf("esperava campos ordenados, obteve %+v", errs)
	}
	if errs[1].Tag != "error.invalid_preco" {
		t.Errorf("esperava o message ID como tag, obteve '%s'", errs[1].Tag)
	}
}

func TestProtectedErrorResponse(t *testing.T) {
	c := formContext(t, url.Values{})
	c.Set("base_url", "http://agendafoto.test")

	response := ProtectedErrorResponseI18n(c, &domainerrors.ProtectedError{
		Resource: "cliente", ReferencedBy: "sessoes", Count: 2,
	})

	if response.Status != 409 {
		t.Errorf("esperava 409, obteve %d", response.Status)
	}
	if response.Type != "http://agendafoto.test"+domainerrors.ProblemTypeProtected {
		t.Errorf("tipo inesperado: %s", response.Type)
	}
	if response.Meta["count"] != int64(2) {
		t.Errorf("esperava count 2 em meta, obteve %v", response.Meta["count"])
	}
}
