package access_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

var _ = Describe("Controller", func() {
	var (
		controller *access.Controller
		alice      access.Actor
		bob        access.Actor
		staff      access.Actor
		superuser  access.Actor
	)

	BeforeEach(func() {
		controller = access.NewDefaultController()
		alice = access.Actor{UserID: 1, Username: "alice", Roles: []entities.Role{entities.RoleCliente}}
		bob = access.Actor{UserID: 2, Username: "bob", Roles: []entities.Role{entities.RoleFotografo}}
		staff = access.Actor{UserID: 3, Username: "staff", Staff: true}
		superuser = access.Actor{UserID: 4, Username: "root", Superuser: true}
	})

	Describe("Scope", func() {
		It("restringe clientes ao próprio usuário quando não é staff", func() {
			scope, err := controller.Scope(alice, access.ResourceCliente)
			Expect(err).NotTo(HaveOccurred())
			Expect(scope).To(Equal(repositories.OwnedBy(repositories.OwnerColumnUser, 1)))
		})

		It("libera todos os clientes para staff", func() {
			scope, err := controller.Scope(staff, access.ResourceCliente)
			Expect(err).NotTo(HaveOccurred())
			Expect(scope.Unrestricted).To(BeTrue())
		})

		It("não libera fotógrafos para staff", func() {
			scope, err := controller.Scope(staff, access.ResourceFotografo)
			Expect(err).NotTo(HaveOccurred())
			Expect(scope).To(Equal(repositories.OwnedBy(repositories.OwnerColumnUser, 3)))
		})

		It("restringe sessões ao criador mesmo para superusuário", func() {
			scope, err := controller.Scope(superuser, access.ResourceSessao)
			Expect(err).NotTo(HaveOccurred())
			Expect(scope).To(Equal(repositories.OwnedBy(repositories.OwnerColumnCadastradoPor, 4)))
		})

		It("rejeita ator anônimo", func() {
			_, err := controller.Scope(access.Anonymous(), access.ResourceEstudio)
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
		})
	})

	Describe("Authorize", func() {
		DescribeTable("portões de papel",
			func(actor func() access.Actor, resource access.Resource, op access.Operation, expected error) {
				err := controller.Authorize(actor(), resource, op)
				if expected == nil {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(MatchError(expected))
				}
			},
			Entry("cliente cria cliente", func() access.Actor { return alice }, access.ResourceCliente, access.OpCreate, nil),
			Entry("fotógrafo não cria cliente", func() access.Actor { return bob }, access.ResourceCliente, access.OpCreate, domainerrors.ErrForbidden),
			Entry("fotógrafo lista clientes", func() access.Actor { return bob }, access.ResourceCliente, access.OpList, nil),
			Entry("cliente não edita fotógrafo", func() access.Actor { return alice }, access.ResourceFotografo, access.OpUpdate, domainerrors.ErrForbidden),
			Entry("admin cria fotógrafo", func() access.Actor {
				return access.Actor{UserID: 9, Roles: []entities.Role{entities.RoleAdmin}}
			}, access.ResourceFotografo, access.OpCreate, nil),
			Entry("superusuário passa pelo portão", func() access.Actor { return superuser }, access.ResourceCliente, access.OpDelete, nil),
			Entry("qualquer autenticado cria sessão", func() access.Actor { return staff }, access.ResourceSessao, access.OpCreate, nil),
			Entry("cliente não adiciona portfólio", func() access.Actor { return alice }, access.ResourcePortfolio, access.OpCreate, domainerrors.ErrForbidden),
			Entry("anônimo é rejeitado", func() access.Actor { return access.Anonymous() }, access.ResourceSessao, access.OpList, domainerrors.ErrUnauthenticated),
		)

		It("mascara alvo fora do escopo como não encontrado", func() {
			sessao := &entities.Sessao{ID: 10, CadastradoPorID: alice.UserID}

			Expect(controller.Authorize(alice, access.ResourceSessao, access.OpUpdate, sessao)).To(Succeed())
			Expect(controller.Authorize(bob, access.ResourceSessao, access.OpUpdate, sessao)).
				To(MatchError(domainerrors.ErrNotFound))
		})

		It("checa o papel antes do dono", func() {
			cliente := &entities.Cliente{ID: 5, UserID: alice.UserID}

			err := controller.Authorize(bob, access.ResourceCliente, access.OpDelete, cliente)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("staff edita cliente de outro usuário quando tem o papel", func() {
			staffCliente := access.Actor{UserID: 3, Staff: true, Roles: []entities.Role{entities.RoleCliente}}
			cliente := &entities.Cliente{ID: 5, UserID: alice.UserID}

			Expect(controller.Authorize(staffCliente, access.ResourceCliente, access.OpUpdate, cliente)).To(Succeed())
		})

		It("rejeita recurso sem política", func() {
			err := controller.Authorize(alice, access.Resource("pagamento"), access.OpList)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})

	Describe("ActorFromUser", func() {
		It("copia grupos e flags", func() {
			user := &entities.User{ID: 7, Username: "carol", Groups: []entities.Role{entities.RoleAdmin}, IsStaff: true}

			actor := access.ActorFromUser(user)
			Expect(actor.IsAuthenticated()).To(BeTrue())
			Expect(actor.IsPrivileged()).To(BeTrue())
			Expect(actor.HasRole(entities.RoleAdmin)).To(BeTrue())
			Expect(access.ActorFromUser(nil).IsAuthenticated()).To(BeFalse())
		})
	})
})
