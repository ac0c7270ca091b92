package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"portfolio-cms/app/seeder/inits"
	"portfolio-cms/app/seeder/seed"
	serverinits "portfolio-cms/app/server/inits"
	"portfolio-cms/app/server/password"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts        seed.AdminOptions
		withContent bool
	)

	cmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Create the portfolio admin account and optional starter content",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 初始化配置
			cfg, err := inits.Config()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			// 初始化日志
			l, err := serverinits.Logger(!cfg.IsProd)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			defer func() { _ = l.Sync() }()

			// 初始化数据库连接，同时完成迁移
			db, err := serverinits.DB(cfg.DBConnectionString)
			if err != nil {
				l.Error("error initializing DB connection", zap.Error(err))
				return err
			}

			s := seed.New(db, password.New(nil), l.Named("seeder"))

			admin, err := s.Admin(cmd.Context(), opts)
			if err != nil {
				l.Error("failed to seed admin", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q ready (id %d)\n", admin.Username, admin.ID)

			if withContent {
				if err = s.Content(cmd.Context()); err != nil {
					l.Error("failed to seed content", zap.Error(err))
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Username, "username", "admin", "admin username")
	cmd.Flags().StringVar(&opts.Password, "password", "Admin@2025", "admin password, change it after the first login")
	cmd.Flags().StringVar(&opts.Email, "email", "admin@portfolio.com", "admin email")
	cmd.Flags().BoolVar(&opts.ResetPassword, "reset-password", false, "overwrite the password of an existing admin")
	cmd.Flags().BoolVar(&withContent, "with-content", false, "insert starter content into empty collections")

	return cmd
}
