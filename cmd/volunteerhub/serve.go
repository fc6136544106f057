package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/moderation"
	"volunteerhub/internal/seed"
	"volunteerhub/internal/server"
	"volunteerhub/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	ls, err := localstore.Open(config.DataDir)
	if err != nil {
		return err
	}

	unsubscribe := ls.Subscribe(func(key string) {
		logger.WithField("key", key).Debug("storage key updated")
	})
	defer unsubscribe()

	opportunityRepo := store.NewOpportunityRepository(ls, seed.Opportunities())
	submissionRepo := store.NewSubmissionRepository(ls)
	preferenceRepo := store.NewPreferenceRepository(ls)
	notificationRepo := store.NewNotificationRepository(ls)
	userRepo := store.NewUserRepository(ls)
	organizationRepo := store.NewOrganizationRepository(ls)

	gate := moderation.New(opportunityRepo, config.AdminEmail)
	scheduler := moderation.NewScheduler(logger, time.Duration(config.ApprovalDelaySec)*time.Second)

	srv, err := server.New(
		config,
		logger,
		opportunityRepo,
		submissionRepo,
		preferenceRepo,
		notificationRepo,
		userRepo,
		organizationRepo,
		gate,
		scheduler,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
