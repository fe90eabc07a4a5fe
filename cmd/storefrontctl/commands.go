package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/invoice"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const minAdminPasswordLength = 8

type rootOptions struct {
	configPath string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Operator tasks for the CoolBreeze storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to the YAML config file (or set CONFIG_PATH)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "operation timeout")

	rootCmd.AddCommand(newMigrateCmd(opts))
	rootCmd.AddCommand(newCreateAdminCmd(opts))
	rootCmd.AddCommand(newRenderInvoiceCmd(opts))

	return rootCmd
}

// open loads the config and connects to the database.
func (o *rootOptions) open() (*config.Config, *sql.DB, error) {
	if o.configPath == "" {
		return nil, nil, errors.New("config path is not set: pass --config or set CONFIG_PATH")
	}

	cfg, err := config.LoadConfigFromPath(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := repository.Open(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := opts.open()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			applied, err := repository.Migrate(ctx, db)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s): %s\n", len(applied), strings.Join(applied, ", "))

			return nil
		},
	}
}

func newCreateAdminCmd(opts *rootOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a back-office administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(password) < minAdminPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minAdminPasswordLength)
			}

			cfg, db, err := opts.open()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			users := service.NewUserService(repository.NewUserRepo(db), nil, &cfg.Security)

			return createAdmin(ctx, users, name, email, password, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "administrator name (required)")
	cmd.Flags().StringVar(&email, "email", "", "administrator email (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createAdmin(ctx context.Context, users service.UserService, name, email, password string, out io.Writer) error {
	user, err := users.CreateAdmin(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created admin %s (%s)\n", user.Email, user.ID)

	return nil
}

func newRenderInvoiceCmd(opts *rootOptions) *cobra.Command {
	var orderID, outPath string

	cmd := &cobra.Command{
		Use:   "render-invoice",
		Short: "Render the tax invoice of an order as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(orderID)
			if err != nil {
				return fmt.Errorf("invalid order id %q: %w", orderID, err)
			}

			cfg, db, err := opts.open()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out := cmd.OutOrStdout()

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer f.Close()

				out = f
			}

			return renderInvoice(ctx, repository.NewOrderRepository(db), &cfg.Invoice, id, out)
		},
	}

	cmd.Flags().StringVar(&orderID, "order", "", "order id (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

func renderInvoice(ctx context.Context, orders repository.OrderRepository, seller *config.Invoice, id uuid.UUID, out io.Writer) error {
	order, err := orders.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("order %s not found", id)
		}

		return fmt.Errorf("failed to load order: %w", err)
	}

	rendered, err := templates.Render(models.TemplateInvoice, invoice.Build(order, seller, order.CreatedAt))
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, rendered.HTML)

	return err
}
