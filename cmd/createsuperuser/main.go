// Command createsuperuser cria um usuário staff/superusuário.
//
// Uso:
//
//	createsuperuser -username admin -email admin@example.com [-admin-group]
//
// A senha é lida de AGENDAFOTO_SUPERUSER_PASSWORD ou da entrada padrão.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/config"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/logging"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/security"
	"github.com/rafabene/agendafoto-backend/internal/services"
)

func main() {
	username := flag.String("username", "", "nome de usuário (obrigatório)")
	email := flag.String("email", "", "email (opcional)")
	adminGroup := flag.Bool("admin-group", true, "adiciona o usuário ao grupo Admin")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger := logging.NewSlogLogger(cfg.Logging.Level)

	password, err := readPassword()
	if err != nil {
		log.Fatal(err)
	}

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userService := services.NewUserService(
		postgres.NewUserRepository(db),
		postgres.NewGroupRepository(db),
		security.NewBcryptHasher(bcrypt.DefaultCost),
		postgres.NewUnitOfWork(db),
		logger,
	)

	user, err := userService.CreateSuperuser(context.Background(), services.CreateSuperuserInput{
		Username:      *username,
		Email:         *email,
		Password:      password,
		AddAdminGroup: *adminGroup,
	})
	if err != nil {
		var verr *domainerrors.ValidationError
		if errors.As(err, &verr) {
			for field, messageID := range verr.Fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, messageID)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}

	fmt.Printf("Superusuário %q criado (id %d).\n", user.Username, user.ID)
}

func readPassword() (string, error) {
	if password := os.Getenv("AGENDAFOTO_SUPERUSER_PASSWORD"); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Senha: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
