package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// NewCardsCmd — группа команд для карточек.
//
// Примеры:
//
//	mesto cards list
//	mesto cards add --name "Байкал" --link https://example.com/baikal.jpg
//	mesto cards like <id>
func NewCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Карточки: list, add, rm, like, dislike",
	}

	cmd.AddCommand(newCardsListCmd(app))
	cmd.AddCommand(newCardsAddCmd(app))
	cmd.AddCommand(newCardActionCmd(app, "rm <id>", "Удалить свою карточку", "deleted card %s\n",
		func(ctx context.Context, token, id string) (dto.Card, error) {
			return app.client().DeleteCard(ctx, token, id)
		}))
	cmd.AddCommand(newCardActionCmd(app, "like <id>", "Поставить лайк", "liked card %s\n",
		func(ctx context.Context, token, id string) (dto.Card, error) {
			return app.client().LikeCard(ctx, token, id)
		}))
	cmd.AddCommand(newCardActionCmd(app, "dislike <id>", "Снять лайк", "disliked card %s\n",
		func(ctx context.Context, token, id string) (dto.Card, error) {
			return app.client().DislikeCard(ctx, token, id)
		}))

	return cmd
}

func newCardsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Все карточки",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			cards, err := app.client().Cards(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cards)
		},
	}
}

func newCardsAddCmd(app *App) *cobra.Command {
	var name, link string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать карточку",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			card, err := app.client().CreateCard(cmd.Context(), token, name, link)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), card)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "card title")
	cmd.Flags().StringVar(&link, "link", "", "image URL")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("link")
	return cmd
}

type cardAction func(ctx context.Context, token, id string) (dto.Card, error)

// newCardActionCmd — команда над одной карточкой по id.
func newCardActionCmd(app *App, use, short, done string, action cardAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			card, err := action(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), done, card.ID)
			return nil
		},
	}
}
