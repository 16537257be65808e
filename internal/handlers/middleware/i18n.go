package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header, respeitando os pesos q
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado
// Exemplo: "en;q=0.5,pt-BR" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		candidate := weightedLanguage{tag: part, weight: 1}
		if idx := strings.Index(part, ";"); idx != -1 {
			candidate.tag = strings.TrimSpace(part[:idx])
			if q, ok := strings.CutPrefix(strings.TrimSpace(part[idx+1:]), "q="); ok {
				if w, err := strconv.ParseFloat(q, 64); err == nil {
					candidate.weight = w
				}
			}
		}
		if candidate.weight > 0 {
			candidates = append(candidates, candidate)
		}
	}

	// ordem original desempata pesos iguais
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.match(candidate.tag); lang != "" {
			return lang
		}
	}

	return ""
}

// match aceita o idioma exato, a base sem região (en-US -> en) ou
// uma variante regional suportada (pt -> pt-BR)
func (m *I18nMiddleware) match(tag string) string {
	if m.i18nService.IsLanguageSupported(tag) {
		return tag
	}

	base := tag
	if idx := strings.Index(tag, "-"); idx != -1 {
		base = tag[:idx]
		if m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.HasPrefix(strings.ToLower(supported), strings.ToLower(base)+"-") {
			return supported
		}
	}

	return ""
}
