package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

var _ = Describe("CRUD com escopo de dono", func() {
	var (
		e     *env
		ctx   context.Context
		alice access.Actor
		bob   access.Actor
		c1    *entities.Cliente
		p1    *entities.Fotografo
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		alice = e.register(entities.ProfileCliente, "alice")
		bob = e.register(entities.ProfileFotografo, "bob")
		c1, _ = e.profileOf(alice)
		_, p1 = e.profileOf(bob)
	})

	sessaoInput := func() services.SessaoInput {
		return services.SessaoInput{
			Data:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Horario:     "14:00",
			Duracao:     60,
			Tipo:        "retrato",
			Valor:       decimal.RequireFromString("250.00"),
			ClienteID:   c1.ID,
			FotografoID: p1.ID,
		}
	}

	Describe("Clientes", func() {
		It("não-staff lista apenas os próprios clientes", func() {
			carol := e.register(entities.ProfileCliente, "carol")

			list, err := e.cliente.List(ctx, alice, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].UserID).To(Equal(alice.UserID))

			list, err = e.cliente.List(ctx, carol, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].UserID).To(Equal(carol.UserID))
		})

		It("staff lista todos os clientes", func() {
			staff := alice
			staff.Staff = true

			list, err := e.cliente.List(ctx, staff, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))

			e.register(entities.ProfileCliente, "carol")
			list, err = e.cliente.List(ctx, staff, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("segundo cadastro do mesmo usuário conflita", func() {
			_, err := e.cliente.Create(ctx, alice, services.ClienteInput{Nome: "Alice"})
			Expect(err).To(MatchError(domainerrors.ErrProfileAlreadyExists))
		})

		It("fotógrafo não cria cliente", func() {
			_, err := e.cliente.Create(ctx, bob, services.ClienteInput{Nome: "Bob"})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("edita o próprio cliente", func() {
			updated, err := e.cliente.Update(ctx, alice, c1.ID, services.ClienteInput{Nome: "Alice Souza", Telefone: "1199999"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Nome).To(Equal("Alice Souza"))

			loaded, err := e.cliente.Get(ctx, alice, c1.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Telefone).To(Equal("1199999"))
		})

		It("recusa excluir cliente referenciado por sessão", func() {
			_, err := e.sessao.Create(ctx, alice, sessaoInput())
			Expect(err).NotTo(HaveOccurred())

			err = e.cliente.Delete(ctx, alice, c1.ID)
			Expect(err).To(MatchError(domainerrors.ErrProtected))

			var protected *domainerrors.ProtectedError
			Expect(err).To(BeAssignableToTypeOf(protected))
			Expect(err.(*domainerrors.ProtectedError).Count).To(Equal(int64(1)))

			_, err = e.cliente.Get(ctx, alice, c1.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("exclui cliente sem sessões", func() {
			Expect(e.cliente.Delete(ctx, alice, c1.ID)).To(Succeed())

			_, err := e.cliente.Get(ctx, alice, c1.ID)
			Expect(err).To(MatchError(domainerrors.ErrNotFound))
		})
	})

	Describe("Fotógrafos", func() {
		It("lista apenas os próprios mesmo para staff", func() {
			staff := e.register(entities.ProfileFotografo, "dora")
			staff.Staff = true

			list, err := e.fotografo.List(ctx, staff, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].UserID).To(Equal(staff.UserID))
		})

		It("outro usuário não enxerga o fotógrafo", func() {
			otherFotografo := e.register(entities.ProfileFotografo, "dora")

			_, err := e.fotografo.Update(ctx, otherFotografo, p1.ID, services.FotografoInput{Nome: "x"})
			Expect(err).To(MatchError(domainerrors.ErrNotFound))
		})

		It("valida a URL da foto de perfil", func() {
			_, err := e.fotografo.Update(ctx, bob, p1.ID, services.FotografoInput{Nome: "Bob", FotoPerfil: "não é url"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))

			var vErr *domainerrors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(vErr))
			Expect(err.(*domainerrors.ValidationError).Fields).To(HaveKey("foto_perfil"))
		})

		It("recusa excluir fotógrafo referenciado", func() {
			_, err := e.sessao.Create(ctx, alice, sessaoInput())
			Expect(err).NotTo(HaveOccurred())

			Expect(e.fotografo.Delete(ctx, bob, p1.ID)).To(MatchError(domainerrors.ErrProtected))
		})
	})

	Describe("Sessões", func() {
		It("alice cria e edita; bob recebe não encontrado", func() {
			sessao, err := e.sessao.Create(ctx, alice, sessaoInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(sessao.CadastradoPorID).To(Equal(alice.UserID))

			input := sessaoInput()
			input.Finalizado = true
			updated, err := e.sessao.Update(ctx, alice, sessao.ID, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Finalizado).To(BeTrue())

			_, err = e.sessao.Update(ctx, bob, sessao.ID, sessaoInput())
			Expect(err).To(MatchError(domainerrors.ErrNotFound))

			Expect(e.sessao.Delete(ctx, bob, sessao.ID)).To(MatchError(domainerrors.ErrNotFound))

			loaded, err := e.sessao.Get(ctx, alice, sessao.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Horario).To(Equal("14:00"))
			Expect(loaded.Valor.Equal(decimal.RequireFromString("250"))).To(BeTrue())
		})

		It("lista apenas as sessões cadastradas pelo ator", func() {
			_, err := e.sessao.Create(ctx, alice, sessaoInput())
			Expect(err).NotTo(HaveOccurred())

			list, err := e.sessao.List(ctx, bob, repositories.SessaoFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())

			list, err = e.sessao.List(ctx, alice, repositories.SessaoFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})

		It("o autor nunca muda na edição", func() {
			sessao, err := e.sessao.Create(ctx, alice, sessaoInput())
			Expect(err).NotTo(HaveOccurred())

			updated, err := e.sessao.Update(ctx, alice, sessao.ID, sessaoInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CadastradoPorID).To(Equal(alice.UserID))
		})

		DescribeTable("rejeita dados inválidos",
			func(mutate func(*services.SessaoInput), field string) {
				input := sessaoInput()
				mutate(&input)

				_, err := e.sessao.Create(ctx, alice, input)
				Expect(err).To(MatchError(domainerrors.ErrValidation))

				var vErr *domainerrors.ValidationError
				Expect(err).To(BeAssignableToTypeOf(vErr))
				Expect(err.(*domainerrors.ValidationError).Fields).To(HaveKey(field))
			},
			Entry("duração zero", func(in *services.SessaoInput) { in.Duracao = 0 }, "duracao"),
			Entry("valor negativo", func(in *services.SessaoInput) { in.Valor = decimal.RequireFromString("-1") }, "valor"),
			Entry("três casas decimais", func(in *services.SessaoInput) { in.Valor = decimal.RequireFromString("10.123") }, "valor"),
			Entry("tipo longo", func(in *services.SessaoInput) {
				in.Tipo = "retrato retrato retrato retrato retrato retrato ret"
			}, "tipo"),
			Entry("horário inválido", func(in *services.SessaoInput) { in.Horario = "25:99" }, "horario"),
			Entry("cliente inexistente", func(in *services.SessaoInput) { in.ClienteID = 999 }, "cliente_id"),
			Entry("estúdio inexistente", func(in *services.SessaoInput) {
				id := uint(999)
				in.EstudioID = &id
			}, "estudio_id"),
		)

		It("rejeita ator anônimo", func() {
			_, err := e.sessao.List(ctx, access.Anonymous(), repositories.SessaoFilters{})
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
		})
	})

	Describe("Estúdios", func() {
		It("excluir estúdio mantém a sessão sem estúdio", func() {
			estudio, err := e.estudio.Create(ctx, alice, services.EstudioInput{Nome: "Estúdio Luz"})
			Expect(err).NotTo(HaveOccurred())

			input := sessaoInput()
			input.EstudioID = &estudio.ID
			sessao, err := e.sessao.Create(ctx, alice, input)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.estudio.Delete(ctx, bob, estudio.ID)).To(MatchError(domainerrors.ErrNotFound))
			Expect(e.estudio.Delete(ctx, alice, estudio.ID)).To(Succeed())

			loaded, err := e.sessao.Get(ctx, alice, sessao.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.EstudioID).To(BeNil())
		})

		It("exige nome", func() {
			_, err := e.estudio.Create(ctx, alice, services.EstudioInput{})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("Portfólio", func() {
		It("fotógrafo gerencia o próprio portfólio", func() {
			item, err := e.portfolioSvc.Create(ctx, bob, p1.ID, services.PortfolioInput{
				FotoURL: "https://fotos.example.com/1.jpg", Descricao: "Casamento",
			})
			Expect(err).NotTo(HaveOccurred())

			itens, err := e.portfolioSvc.List(ctx, bob, p1.ID, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(itens).To(HaveLen(1))

			deleted, err := e.portfolioSvc.Delete(ctx, bob, item.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.FotografoID).To(Equal(p1.ID))
		})

		It("cliente não adiciona fotos", func() {
			_, err := e.portfolioSvc.Create(ctx, alice, p1.ID, services.PortfolioInput{FotoURL: "https://x.example.com/a.jpg"})
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("outro fotógrafo não remove item alheio", func() {
			item, err := e.portfolioSvc.Create(ctx, bob, p1.ID, services.PortfolioInput{FotoURL: "https://fotos.example.com/1.jpg"})
			Expect(err).NotTo(HaveOccurred())

			dora := e.register(entities.ProfileFotografo, "dora")
			_, err = e.portfolioSvc.Delete(ctx, dora, item.ID)
			Expect(err).To(MatchError(domainerrors.ErrNotFound))
		})
	})
})
