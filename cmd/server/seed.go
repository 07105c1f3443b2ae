package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agro/config"
	"agro/database"
	"agro/pkg/logger"
	"agro/pkg/seed"
)

func newSeedCmd() *cobra.Command {
	opts := seed.Options{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample producers, properties and associations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			svcs := newServices(db, log, nil)
			rep, err := seed.Run(cmd.Context(), db, seed.Services{
				Producers:    svcs.producers,
				Properties:   svcs.properties,
				Seasons:      svcs.seasons,
				Crops:        svcs.crops,
				Associations: svcs.associations,
			}, opts, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d producers, %d properties, %d seasons, %d crops, %d associations\n",
				rep.Producers, rep.Properties, rep.Seasons, rep.Crops, rep.Associations)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Producers, "producers", 50, "number of producers")
	f.IntVar(&opts.Properties, "properties", 100, "number of properties")
	f.IntVar(&opts.Associations, "associations", 200, "number of property/season/crop associations")
	f.IntSliceVar(&opts.Seasons, "seasons", seed.DefaultSeasons, "season years")
	f.StringSliceVar(&opts.Crops, "crops", seed.DefaultCrops, "crop names")
	f.BoolVar(&opts.Force, "force", false, "delete existing data first")
	f.Int64Var(&opts.RandSeed, "rand-seed", 0, "random seed (0 picks one)")
	return cmd
}
