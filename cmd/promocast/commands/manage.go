package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/genricoloni/promocast/internal/config"
	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/state"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// withState runs fn against the loaded application state. Changes made by
// fn are saved before the graph stops.
func withState(cmd *cobra.Command, fn func(st *state.State, out io.Writer) error) error {
	var st *state.State
	return runApp(cmd.Context(), func(context.Context) error {
		return fn(st, cmd.OutOrStdout())
	}, AppOptions, fx.Populate(&st))
}

func printTable(out io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
}

func removeCmd(noun string, remove func(st *state.State, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				if err := remove(st, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "removed %s %s\n", noun, args[0])
				return nil
			})
		},
	}
}

// store add|list|rm
func storeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "store", Short: "Manage stores"}

	var s domain.Store
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				created, err := st.AddStore(s)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, created.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&s.Name, "name", "", "store name")
	add.Flags().StringVar(&s.Address, "address", "", "street address shown on slides")
	add.Flags().StringVar(&s.LogoColor, "color", "", "badge color as #rrggbb")
	_ = add.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				var rows [][]string
				for _, s := range st.Snapshot().Stores {
					rows = append(rows, []string{s.ID, s.Name, s.Address})
				}
				printTable(out, []string{"ID", "NAME", "ADDRESS"}, rows)
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, removeCmd("store", (*state.State).DeleteStore))
	return cmd
}

// product add|list|rm
func productCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "product", Short: "Manage products"}

	var (
		p         domain.Product
		unit      string
		promotion string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Unit = domain.UnitType(unit)
			if promotion != "" {
				p.IsPromotion = true
				p.PromotionType = domain.PromotionType(promotion)
			}
			return withState(cmd, func(st *state.State, out io.Writer) error {
				created, err := st.AddProduct(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, created.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&p.Name, "name", "", "product name")
	add.Flags().Float64Var(&p.Price, "price", 0, "price per unit")
	add.Flags().StringVar(&unit, "unit", string(domain.UnitPiece), "sale unit: unidad, kg, g, litro, pack")
	add.Flags().StringVar(&p.Description, "description", "", "long description")
	add.Flags().StringVar(&p.ImageURL, "image", "", "image URL or path")
	add.Flags().StringVar(&p.Category, "category", "", "category used by search")
	add.Flags().StringVar(&promotion, "promotion", "", "mark as promotion: dia, semana or general")
	add.Flags().StringVar(&p.Slogan, "slogan", "", "short tagline")
	add.Flags().StringVar(&p.PrimaryColor, "color", "", "theme color as #rrggbb")
	_ = add.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				var rows [][]string
				for _, p := range st.Snapshot().Products {
					rows = append(rows, []string{
						p.ID, p.Name, "$ " + domain.FormatPrice(p.Price) + " / " + string(p.Unit), p.Category, p.PromotionLabel(),
					})
				}
				printTable(out, []string{"ID", "NAME", "PRICE", "CATEGORY", "PROMOTION"}, rows)
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, removeCmd("product", (*state.State).DeleteProduct))
	return cmd
}

// announcement add|list|rm
func announcementCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "announcement", Short: "Manage announcements"}

	var a domain.Announcement
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an announcement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				created, err := st.AddAnnouncement(a)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, created.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&a.Title, "title", "", "headline")
	add.Flags().StringVar(&a.Message, "message", "", "body text")
	add.Flags().StringVar(&a.BackgroundColor, "bg", "", "background color as #rrggbb")
	add.Flags().StringVar(&a.TextColor, "fg", "", "text color as #rrggbb")
	add.Flags().StringVar(&a.TextAlign, "align", "center", "text alignment: left, center or right")
	add.Flags().StringVar(&a.FontSize, "size", "", "text size: small, large or huge")
	add.Flags().BoolVar(&a.HasAnimation, "animate", false, "animate the entrance")

	list := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				var rows [][]string
				for _, a := range st.Snapshot().Announcements {
					rows = append(rows, []string{a.ID, a.Title, a.Message})
				}
				printTable(out, []string{"ID", "TITLE", "MESSAGE"}, rows)
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, removeCmd("announcement", (*state.State).DeleteAnnouncement))
	return cmd
}

// duration [seconds]
func durationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration [seconds]",
		Short: "Show or change the default slide duration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(cmd, func(st *state.State, out io.Writer) error {
				if len(args) == 1 {
					seconds, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid duration %q: %w", args[0], err)
					}
					if err := st.SetDefaultDuration(config.ClampDuration(seconds)); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%ds\n", st.Snapshot().DefaultDuration)
				return nil
			})
		},
	}
}
