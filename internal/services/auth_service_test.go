package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/logging"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/ratelimit"
	"github.com/rafabene/agendafoto-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	Describe("Authenticate", func() {
		It("aceita credenciais válidas", func() {
			e.register(entities.ProfileCliente, "alice")

			user, err := e.auth.Authenticate(ctx, "alice", "segredo123")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Groups).To(ConsistOf(entities.RoleCliente))
		})

		It("rejeita senha errada e usuário inexistente", func() {
			e.register(entities.ProfileCliente, "alice")

			_, err := e.auth.Authenticate(ctx, "alice", "errada")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))

			_, err = e.auth.Authenticate(ctx, "ninguem", "segredo123")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("bloqueia o par usuário e IP sem afetar outros IPs", func() {
			e.register(entities.ProfileCliente, "alice")

			mr, err := miniredis.Run()
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(mr.Close)
			client, err := ratelimit.NewRedisClient("redis://" + mr.Addr())
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(client.Close)

			throttler := ratelimit.NewRedisThrottler(client, ratelimit.Options{
				Limit: 100, Window: time.Minute, LockThreshold: 2, LockTTL: time.Minute,
			})
			auth := services.NewAuthService(e.users, e.hasher, throttler, logging.NewNopLogger())

			atacante := services.WithClientIP(ctx, "203.0.113.9")
			for i := 0; i < 2; i++ {
				_, err := auth.Authenticate(atacante, "alice", "errada")
				Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			}
			_, err = auth.Authenticate(atacante, "alice", "segredo123")
			Expect(err).To(MatchError(domainerrors.ErrTooManyAttempts))

			user, err := auth.Authenticate(services.WithClientIP(ctx, "198.51.100.7"), "alice", "segredo123")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("alice"))
		})
	})

	Describe("Login com perfil", func() {
		It("autoriza cliente no login de cliente", func() {
			e.register(entities.ProfileCliente, "alice")

			user, state, err := e.auth.Login(ctx, "cliente", "alice", "segredo123")
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(Equal(services.LoginAuthorized))
			Expect(user.Username).To(Equal("alice"))
		})

		It("rejeita cliente no login de fotógrafo", func() {
			e.register(entities.ProfileCliente, "alice")

			user, state, err := e.auth.Login(ctx, "fotografo", "alice", "segredo123")
			Expect(user).To(BeNil())
			Expect(state).To(Equal(services.LoginRejectedWrongRole))
			Expect(err).To(MatchError(domainerrors.ErrWrongRole))

			var wrongRole *domainerrors.WrongRoleError
			Expect(errors.As(err, &wrongRole)).To(BeTrue())
			Expect(wrongRole.Required).To(Equal("Fotógrafo"))
		})

		It("rejeita usuário com os dois perfis", func() {
			alice := e.register(entities.ProfileCliente, "alice")
			e.addRole(alice.UserID, entities.RoleFotografo)

			for _, profile := range []string{"cliente", "fotografo"} {
				_, state, err := e.auth.Login(ctx, profile, "alice", "segredo123")
				Expect(state).To(Equal(services.LoginRejectedMultiRole))
				Expect(err).To(MatchError(domainerrors.ErrMultipleRoles))
			}
		})

		It("rejeita perfil inválido antes de conferir credenciais", func() {
			_, state, err := e.auth.Login(ctx, "admin", "ninguem", "x")
			Expect(state).To(Equal(services.LoginRejectedBadRole))
			Expect(err).To(MatchError(domainerrors.ErrInvalidLoginProfile))
			Expect(state.Rejected()).To(BeTrue())
		})

		It("credenciais inválidas encerram o fluxo", func() {
			_, state, err := e.auth.Login(ctx, "cliente", "ninguem", "x")
			Expect(state).To(Equal(services.LoginRejectedCredentials))
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})
})

var _ = Describe("UserService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	It("cria superusuário no grupo Admin", func() {
		user, err := e.user.CreateSuperuser(ctx, services.CreateSuperuserInput{
			Username:      "root",
			Email:         "root@example.com",
			Password:      "segredo123",
			AddAdminGroup: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.IsSuperuser).To(BeTrue())

		loaded, err := e.user.GetUser(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.IsStaff).To(BeTrue())
		Expect(loaded.Groups).To(ConsistOf(entities.RoleAdmin))
	})

	It("troca a senha conferindo a atual", func() {
		alice := e.register(entities.ProfileCliente, "alice")

		err := e.user.ChangePassword(ctx, alice.UserID, services.ChangePasswordInput{
			OldPassword: "errada", NewPassword: "novasenha1", ConfirmPassword: "novasenha1",
		})
		Expect(err).To(MatchError(domainerrors.ErrValidation))

		err = e.user.ChangePassword(ctx, alice.UserID, services.ChangePasswordInput{
			OldPassword: "segredo123", NewPassword: "novasenha1", ConfirmPassword: "novasenha1",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = e.auth.Authenticate(ctx, "alice", "novasenha1")
		Expect(err).NotTo(HaveOccurred())
	})

	It("retorna ErrNotFound para usuário inexistente", func() {
		_, err := e.user.GetUser(ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrNotFound))
	})
})
