package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/agendafoto-backend/internal/services"
)

var _ = Describe("RegistrationService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	count := func(model any) int64 {
		var n int64
		Expect(e.db.Model(model).Count(&n).Error).NotTo(HaveOccurred())
		return n
	}

	It("cria usuário, grupo e perfil de fotógrafo", func() {
		user, err := e.registration.Register(ctx, entities.ProfileFotografo, services.RegisterInput{
			Username: "bob", Email: "bob@example.com", Password: "segredo123", PasswordConfirm: "segredo123",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Groups).To(ConsistOf(entities.RoleFotografo))
		Expect(user.Email.String()).To(Equal("bob@example.com"))

		_, f := e.profileOf(e.actor(user.ID))
		Expect(f).NotTo(BeNil())
		Expect(count(&postgres.GroupModel{})).To(Equal(int64(1)))
	})

	It("reaproveita o grupo existente", func() {
		e.register(entities.ProfileCliente, "alice")
		e.register(entities.ProfileCliente, "carol")

		Expect(count(&postgres.GroupModel{})).To(Equal(int64(1)))
		Expect(count(&postgres.ClienteModel{})).To(Equal(int64(2)))
	})

	It("EnsureProfile repetido mantém um único cliente", func() {
		alice := e.register(entities.ProfileCliente, "alice")

		first, err := e.registration.EnsureProfile(ctx, alice.UserID, entities.ProfileCliente)
		Expect(err).NotTo(HaveOccurred())
		second, err := e.registration.EnsureProfile(ctx, alice.UserID, entities.ProfileCliente)
		Expect(err).NotTo(HaveOccurred())

		Expect(first).To(Equal(second))
		Expect(count(&postgres.ClienteModel{})).To(Equal(int64(1)))
	})

	It("username repetido desfaz tudo", func() {
		e.register(entities.ProfileCliente, "alice")

		_, err := e.registration.Register(ctx, entities.ProfileFotografo, services.RegisterInput{
			Username: "alice", Password: "segredo123", PasswordConfirm: "segredo123",
		})
		Expect(err).To(MatchError(domainerrors.ErrUsernameTaken))

		Expect(count(&postgres.UserModel{})).To(Equal(int64(1)))
		Expect(count(&postgres.FotografoModel{})).To(BeZero())
		Expect(count(&postgres.GroupModel{})).To(Equal(int64(1)))
	})

	It("valida senha e email antes de gravar", func() {
		_, err := e.registration.Register(ctx, entities.ProfileCliente, services.RegisterInput{
			Username: "dave", Password: "curta", PasswordConfirm: "outra",
		})
		Expect(err).To(MatchError(domainerrors.ErrValidation))

		_, err = e.registration.Register(ctx, entities.ProfileCliente, services.RegisterInput{
			Username: "dave", Email: "invalido", Password: "segredo123", PasswordConfirm: "segredo123",
		})
		Expect(err).To(MatchError(domainerrors.ErrValidation))

		Expect(count(&postgres.UserModel{})).To(BeZero())
	})

	It("rejeita perfil desconhecido", func() {
		_, err := e.registration.Register(ctx, entities.Profile("admin"), services.RegisterInput{
			Username: "eve", Password: "segredo123", PasswordConfirm: "segredo123",
		})
		Expect(err).To(MatchError(domainerrors.ErrInvalidLoginProfile))
	})
})
