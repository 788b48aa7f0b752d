package main

import (
	"fmt"
	"os"

	"Donghwa/config"
	"Donghwa/dao"
	"Donghwa/models"
	"Donghwa/pkg/database"
	"Donghwa/pkg/log"
	"Donghwa/pkg/server"
	"Donghwa/pkg/snowflake"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(path)
					appProvider := InitServer(cfg)
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "create-admin",
				Usage: "create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					cfg := config.New(path)
					db := database.NewDB(cfg)
					adminDAO := dao.NewAdminDAO(db)

					hash, err := bcrypt.GenerateFromPassword([]byte(ctx.String("password")), bcrypt.DefaultCost)
					if err != nil {
						return err
					}
					admin := &models.Admin{
						ID:           uint64(snowflake.GenID()),
						Username:     ctx.String("username"),
						PasswordHash: string(hash),
					}
					if err := adminDAO.Create(ctx.Context, admin); err != nil {
						return err
					}
					log.L.Info("admin created", zap.String("username", admin.Username))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
