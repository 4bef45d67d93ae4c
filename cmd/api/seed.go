package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/logger"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

// seedFile é o formato do arquivo de carga inicial do site.
type seedFile struct {
	Admins []string                  `yaml:"admins"`
	Videos []usecase.VideoInput      `yaml:"videos"`
	Photos []usecase.PhotoInput      `yaml:"photos"`
	Team   []usecase.TeamMemberInput `yaml:"team"`
}

// cliSession representa o operador local: quem tem acesso direto ao banco
// já é admin.
var cliSession = &entity.Session{
	UserID:      "cli",
	Email:       "cli@localhost",
	AccessToken: "cli",
	IsAdmin:     true,
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carrega vídeos, fotos, equipe e admins a partir de um YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := loadSeed(f)
			if err != nil {
				return err
			}

			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			uc := usecase.NewContentUseCase(a.portfolio, a.team, nil)
			return applySeed(context.Background(), uc, a.roles, seed)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "arquivo YAML de carga")
	return cmd
}

func loadSeed(r io.Reader) (*seedFile, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("arquivo de seed inválido: %w", err)
	}
	return &seed, nil
}

type roleGranter interface {
	Grant(ctx context.Context, userID, role string) error
}

// applySeed para no primeiro registro inválido; o que já entrou fica.
func applySeed(ctx context.Context, uc *usecase.ContentUseCase, roles roleGranter, seed *seedFile) error {
	log := logger.Component("seed")

	for _, id := range seed.Admins {
		if err := roles.Grant(ctx, id, usecase.AdminRole); err != nil {
			return fmt.Errorf("admin %s: %w", id, err)
		}
	}
	for i, v := range seed.Videos {
		if _, err := uc.AddVideo(ctx, cliSession, v); err != nil {
			return fmt.Errorf("videos[%d]: %w", i, err)
		}
	}
	for i, p := range seed.Photos {
		if _, err := uc.AddPhoto(ctx, cliSession, p); err != nil {
			return fmt.Errorf("photos[%d]: %w", i, err)
		}
	}
	for i, m := range seed.Team {
		if _, err := uc.AddTeamMember(ctx, cliSession, m); err != nil {
			return fmt.Errorf("team[%d]: %w", i, err)
		}
	}

	log.Info().
		Int("admins", len(seed.Admins)).
		Int("videos", len(seed.Videos)).
		Int("photos", len(seed.Photos)).
		Int("team", len(seed.Team)).
		Msg("seed aplicado")
	return nil
}
