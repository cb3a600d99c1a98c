package main

import (
	"fmt"
	"net/http"

	"siteprisme.fr/internal/config"
	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/handlers"
	"siteprisme.fr/internal/health"
	"siteprisme.fr/internal/inbox"
	"siteprisme.fr/internal/log"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/relay"
	"siteprisme.fr/internal/services"
)

// app is the wired server: catalogue, channels, inbox and router.
type app struct {
	projects *services.ProjectService
	contact  *services.ContactService
	inbox    *inbox.Store
	handler  http.Handler
}

func loadCatalogue(cfg *config.Config) (*models.ProjectList, error) {
	list, err := content.LoadPortfolio(cfg.Content.PortfolioPath)
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("content")
	for _, d := range content.Validate(list) {
		logger.Warn().Str(log.FieldEvent, "catalogue.defect").Msg(d.String())
	}
	logger.Info().
		Int("projects", len(list.Projects)).
		Str("source", sourceName(cfg.Content.PortfolioPath)).
		Msg("portfolio catalogue loaded")
	return list, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// buildChannels returns the channels of the site form and the email relay
// behind /api/send-email. The relay exists whenever a Resend API key is set;
// contact.use_email only decides whether the form also sends through it.
func buildChannels(cfg *config.Config) ([]relay.Channel, relay.Channel, error) {
	client := relay.NewHTTPClient(cfg.Contact.Timeout.Std(), cfg.Observability.Tracing)

	var channels []relay.Channel
	if cfg.Contact.UseFormspree {
		channels = append(channels, relay.NewFormspree(cfg.Contact.FormspreeEndpoint, client))
	}
	if cfg.Email.APIKey == "" {
		return channels, nil, nil
	}

	email, err := relay.NewEmail(relay.EmailConfig{
		APIKey: cfg.Email.APIKey,
		From:   cfg.Email.From,
		To:     cfg.Email.To,
	}, client)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Contact.UseEmail {
		channels = append(channels, email)
	}
	return channels, email, nil
}

func newApp(cfg *config.Config) (*app, error) {
	list, err := loadCatalogue(cfg)
	if err != nil {
		return nil, err
	}

	channels, email, err := buildChannels(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{projects: services.NewProjectService(list)}

	hm := health.NewManager(version)
	hm.RegisterChecker(health.CatalogueCheck(func() int { return len(a.projects.GetAll()) }))

	var recorder services.Recorder
	if cfg.Inbox.Path != "" {
		store, err := inbox.Open(cfg.Inbox.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open inbox: %w", err)
		}
		a.inbox = store
		recorder = store
		hm.RegisterChecker(health.InboxCheck(store))
	}

	a.contact = services.NewContactService(channels, recorder)
	if email != nil {
		a.contact.WithEmailRelay(email)
	}
	hm.RegisterChecker(health.ChannelsCheck(a.contact.Channels()))

	a.handler = handlers.SetupRoutes(handlers.Deps{
		Config:   cfg,
		Projects: a.projects,
		Contact:  a.contact,
		Health:   hm,
		Static:   content.Static(),
	})
	return a, nil
}

func (a *app) Close() error {
	if a.inbox != nil {
		return a.inbox.Close()
	}
	return nil
}
