package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"volunteerhub/internal/localstore"
	"volunteerhub/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "Pretty-print every storage key in the data directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Dump a single key instead of all of them",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ls, err := localstore.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open data directory: %w", err)
		}

		keys := localstore.Keys
		if single := c.String("key"); single != "" {
			keys = []string{single}
		}

		for _, key := range keys {
			raw, err := ls.Raw(key)
			if errors.Is(err, types.ErrKeyNotFound) {
				fmt.Printf("%s: (empty)\n", key)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to read key %q: %w", key, err)
			}

			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("failed to decode key %q: %w", key, err)
			}

			fmt.Printf("%s:\n", key)
			pp.Println(v)
		}

		return nil
	},
}
