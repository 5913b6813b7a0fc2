package main

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/mrmeowless/PartnerKitHelper/bot"
	"github.com/mrmeowless/PartnerKitHelper/config"
	"github.com/mrmeowless/PartnerKitHelper/store"
	"github.com/mrmeowless/PartnerKitHelper/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	offers := store.NewOfferStore(st)
	if err := offers.SeedIfEmpty(cfg.RefLinks); err != nil {
		log.Fatal(err)
	}

	clicks := store.NewClickLedger(st)
	assign := store.NewAssignmentLedger(st, offers)
	stats := store.NewStatsAggregator(st, offers, clicks)
	resolver := store.NewRedirectResolver(offers, clicks)

	b, err := bot.NewBot(cfg.BotToken, cfg.AdminID, cfg.AdminKey, cfg.Hostname, assign, stats)
	if err != nil {
		log.Fatal(err)
	}

	// Scheduler
	if cfg.StatsCron != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.StatsCron, b.SendStatsDigest); err != nil {
			log.Fatal(err)
		}
		c.Start()
	}

	router := web.NewRouter(resolver)
	go func() {
		log.Printf("Redirect server listening on :%s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	log.Println("Bot started...")
	b.Start()
}
