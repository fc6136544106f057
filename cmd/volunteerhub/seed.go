package main

import (
	"fmt"

	"volunteerhub/internal/localstore"
	"volunteerhub/internal/seed"
	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Write demo submitted opportunities to the data directory",
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

		logrus.Info("Seeding submitted opportunities...")
		for _, opp := range demoSubmissions() {
			opp := opp
			if err := opportunityRepo.Create(&opp); err != nil {
				return fmt.Errorf("failed to seed opportunity %q: %w", opp.Title, err)
			}
			logrus.WithField("id", opp.ID).Info("seeded opportunity")
		}

		logrus.Info("Submitted opportunities seeded successfully")

		return nil
	},
}

// demoSubmissions are organization-owned records that land in the pending
// bucket, giving the moderation dashboard something to review out of the box.
func demoSubmissions() []types.Opportunity {
	return []types.Opportunity{
		{
			Title:             "Weekend River Cleanup",
			Type:              types.OpportunityTypeEnvironment,
			Location:          types.LocationInPerson,
			Address:           "Riverside Park, East Gate",
			Description:       "Join us for a Saturday morning cleanup along the river bank.",
			FullDescription:   "We provide gloves, bags, and pickers. Wear sturdy shoes and bring a water bottle. Collected waste is sorted for recycling with the city depot.",
			Organization:      "Green River Alliance",
			OrganizationEmail: "contact@greenriver.org",
			Duration:          "3 hours",
			Commitment:        "One-time",
			Requirements:      []string{"Age 14+", "Sturdy footwear"},
			Benefits:          []string{"Community service certificate", "Free lunch"},
			ContactEmail:      "contact@greenriver.org",
			ContactPhone:      "555-0142",
			Date:              "2026-09-12",
			Time:              "09:00 AM - 12:00 PM",
			Capacity:          30,
		},
		{
			Title:             "Homework Help Tutors",
			Type:              types.OpportunityTypeEducation,
			Location:          types.LocationHybrid,
			Address:           "Downtown Community Center, Room 4",
			Description:       "Tutor primary school students in math and reading twice a week.",
			FullDescription:   "Sessions run Tuesday and Thursday afternoons. Remote tutors join over video; in-person tutors work one-on-one in the study hall.",
			Organization:      "Bright Futures Tutoring",
			OrganizationEmail: "volunteer@brightfutures.org",
			Duration:          "2 hours per session",
			Commitment:        "Weekly",
			Requirements:      []string{"Background check", "Patience with children"},
			Benefits:          []string{"Tutoring experience", "Reference letter"},
			ContactEmail:      "volunteer@brightfutures.org",
			ContactPhone:      "555-0178",
			Date:              "2026-09-15",
			Time:              "03:30 PM - 05:30 PM",
			Capacity:          12,
		},
	}
}
