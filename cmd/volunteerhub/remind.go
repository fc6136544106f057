package main

import (
	"fmt"
	"strings"
	"time"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/notify"
	"volunteerhub/internal/seed"
	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var remindCommand = &cli.Command{
	Name:  "remind",
	Usage: "Emit reminder notifications for tomorrow's opportunities",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ls, err := localstore.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open data directory: %w", err)
		}

		opportunityRepo := store.NewOpportunityRepository(ls, seed.Opportunities())
		submissionRepo := store.NewSubmissionRepository(ls)
		notificationRepo := store.NewNotificationRepository(ls)

		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

		all, err := opportunityRepo.All()
		if err != nil {
			return fmt.Errorf("failed to load opportunities: %w", err)
		}

		reminded := 0
		for _, opp := range all {
			if opp.Date != tomorrow {
				continue
			}

			attendees, err := submissionRepo.AttendeesFor(opp.ID)
			if err != nil {
				return fmt.Errorf("failed to load attendees for %s: %w", opp.ID, err)
			}

			// Only active signups get a reminder.
			active := 0
			for _, sub := range attendees {
				if sub.Status == types.SubmissionStatusActive {
					active++
				}
			}
			if active == 0 {
				continue
			}

			startTime := strings.SplitN(opp.Time, " - ", 2)[0]
			if err := notificationRepo.Add(notify.EventReminder(opp.ID, opp.Title, startTime)); err != nil {
				return fmt.Errorf("failed to store reminder for %s: %w", opp.ID, err)
			}

			logrus.WithField("id", opp.ID).Info("reminder emitted")
			reminded++
		}

		logrus.WithField("count", reminded).Info("reminder sweep finished")

		return nil
	},
}
