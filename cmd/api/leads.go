package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Administra os leads pelo terminal",
	}
	cmd.AddCommand(leadsListCmd(), leadsStatsCmd(), leadsStatusCmd(), leadsNotesCmd(), leadsDeleteCmd())
	return cmd
}

// withAdmin abre o app e entrega o caso de uso de administração.
func withAdmin(fn func(ctx context.Context, uc *usecase.LeadAdminUseCase) error) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(context.Background(), usecase.NewLeadAdminUseCase(a.leads, cfg.LeadsCacheTTL))
}

func leadsListCmd() *cobra.Command {
	var q usecase.LeadListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista os leads, mais recentes primeiro",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(func(ctx context.Context, uc *usecase.LeadAdminUseCase) error {
				view, err := uc.View(ctx, cliSession, q)
				if err != nil {
					return err
				}
				return printLeadList(cmd.OutOrStdout(), view)
			})
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "q", "", "busca por nome, e-mail ou WhatsApp")
	cmd.Flags().StringVarP(&q.Status, "status", "s", usecase.StatusFilterAll, "filtra por status")
	return cmd
}

func printLeadList(out io.Writer, view *usecase.LeadListView) error {
	switch view.EmptyState {
	case usecase.EmptyStateNoLeads:
		_, err := fmt.Fprintln(out, "Nenhum lead recebido ainda.")
		return err
	case usecase.EmptyStateNoMatches:
		_, err := fmt.Fprintln(out, "Nenhum lead encontrado com esses filtros.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEBIDO\tNOME\tE-MAIL\tWHATSAPP\tSTATUS")
	for _, l := range view.Leads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.CreatedAt.Format("02/01/2006 15:04"), l.Name, l.Email, l.WhatsApp, l.StatusLabel())
	}
	fmt.Fprintf(tw, "\n%d de %d leads\n", len(view.Leads), view.Total)
	return tw.Flush()
}

func leadsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Contagem total e por status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(func(ctx context.Context, uc *usecase.LeadAdminUseCase) error {
				stats, err := uc.Stats(ctx, cliSession)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total: %d\n", stats.Total)
				for _, info := range entity.LeadStatuses {
					fmt.Fprintf(out, "%-15s %d\n", info.Label, stats.ByStatus[info.Value])
				}
				return nil
			})
		},
	}
}

func leadsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Altera o status de um lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(func(ctx context.Context, uc *usecase.LeadAdminUseCase) error {
				editor, err := uc.OpenEditor(ctx, cliSession, args[0])
				if err != nil {
					return err
				}
				if err := editor.ChangeStatus(ctx, entity.LeadStatus(args[1])); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", editor.Lead().Name, editor.Lead().StatusLabel())
				return nil
			})
		},
	}
}

func leadsNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <id> <texto>",
		Short: "Substitui as notas internas de um lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(func(ctx context.Context, uc *usecase.LeadAdminUseCase) error {
				editor, err := uc.OpenEditor(ctx, cliSession, args[0])
				if err != nil {
					return err
				}
				editor.EditNotes(args[1])
				if !editor.Dirty() {
					fmt.Fprintln(cmd.OutOrStdout(), "Notas sem alteração.")
					return nil
				}
				if err := editor.SaveNotes(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Notas salvas.")
				return nil
			})
		},
	}
}

func leadsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Exclui um lead definitivamente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(func(ctx context.Context, uc *usecase.LeadAdminUseCase) error {
				editor, err := uc.OpenEditor(ctx, cliSession, args[0])
				if err != nil {
					return err
				}
				if yes {
					editor.RequestDelete()
				}
				err = editor.ConfirmDelete(ctx)
				if usecase.ErrorCode(err) == usecase.CodeDeleteNotConfirmed {
					return errors.New("exclusão não confirmada: repita com --yes")
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Lead %s excluído.\n", editor.Lead().Name)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirma a exclusão")
	return cmd
}
