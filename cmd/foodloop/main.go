package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"foodloop/internal/cli"
	"foodloop/internal/config"
	"foodloop/internal/report"
	"foodloop/internal/repository/sqlite"
	"foodloop/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	log := logger.WithField("session", uuid.NewString())
	ctx := context.Background()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	itemRepo := sqlite.NewInventoryRepository(db)
	chatRepo := sqlite.NewChatRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := itemRepo.Init(ctx); err != nil {
		logger.Fatalf("init inventory repository: %v", err)
	}
	if err := chatRepo.Init(ctx); err != nil {
		logger.Fatalf("init chat repository: %v", err)
	}

	userService := service.NewUserService(userRepo)
	inventoryService := service.NewInventoryService(itemRepo)
	chatService := service.NewChatService(chatRepo)
	reportService := service.NewReportService(itemRepo, report.NewChartRenderer(cfg.Report.ChartPath))

	menu := cli.NewMenu(
		userService,
		inventoryService,
		chatService,
		reportService,
		cli.Options{
			RecentChatLimit: cfg.Chat.RecentLimit,
			AlertWindowDays: cfg.Inventory.AlertWindowDays,
			ChartPath:       cfg.Report.ChartPath,
		},
		os.Stdin,
		os.Stdout,
		log,
	)

	log.Infof("database at %s", cfg.Database.Path)
	if err := menu.Run(ctx); err != nil {
		logger.Fatalf("menu: %v", err)
	}
	log.Info("bye")
}
