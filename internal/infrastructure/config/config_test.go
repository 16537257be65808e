package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom(t *testing.T) {
	t.Run("usa valores padrão quando não há .env", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "inexistente.env"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("esperava porta '8080', obteve '%s'", cfg.Server.Port)
		}
		if cfg.Database.Driver != "postgres" {
			t.Errorf("esperava driver 'postgres', obteve '%s'", cfg.Database.Driver)
		}
		if cfg.JWT.AccessExpiry != time.Hour {
			t.Errorf("esperava expiração de 1h, obteve %s", cfg.JWT.AccessExpiry)
		}
		if cfg.I18n.DefaultLanguage != "pt-BR" {
			t.Errorf("esperava idioma 'pt-BR', obteve '%s'", cfg.I18n.DefaultLanguage)
		}
	})

	t.Run("variáveis de ambiente sobrescrevem padrões", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("LOGIN_LOCK_TTL", "30m")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "inexistente.env"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("esperava porta '9090', obteve '%s'", cfg.Server.Port)
		}
		if cfg.Database.Driver != "sqlite" {
			t.Errorf("esperava driver 'sqlite', obteve '%s'", cfg.Database.Driver)
		}
		if cfg.RateLimit.LockTTL != 30*time.Minute {
			t.Errorf("esperava 30m, obteve %s", cfg.RateLimit.LockTTL)
		}
	})

	t.Run("lê arquivo .env", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envFile, []byte("DB_NAME=agenda_teste\n"), 0644); err != nil { //nolint:gosec
			t.Fatalf("falha ao criar .env: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("DB_NAME") })

		cfg, err := LoadFrom(envFile)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.Database.DBName != "agenda_teste" {
			t.Errorf("esperava 'agenda_teste', obteve '%s'", cfg.Database.DBName)
		}
	})

	t.Run("rejeita driver desconhecido", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")

		if _, err := LoadFrom(filepath.Join(t.TempDir(), "inexistente.env")); err == nil {
			t.Error("esperava erro para driver desconhecido, obteve sucesso")
		}
	})

	t.Run("exige segredos longos em produção", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("SESSION_SECRET", "curto")

		if _, err := LoadFrom(filepath.Join(t.TempDir(), "inexistente.env")); err == nil {
			t.Error("esperava erro para segredo curto, obteve sucesso")
		}
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "agenda", SSLMode: "disable"}

	expected := "host=db port=5432 user=u password=p dbname=agenda sslmode=disable"
	if d.DSN() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, d.DSN())
	}
}
