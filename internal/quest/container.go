package quest

import (
	"context"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
)

type QuestContainer struct {
	Handler *Handler
	Service Service
}

func NewQuestContainer(settings *config.Settings) *QuestContainer {
	log := config.WithContext(context.Background())

	var provider Provider
	if settings.CredentialErr != nil {
		log.WithError(settings.CredentialErr).Error("Error initializing AI model, quest endpoints will return 503")
	} else {
		p, err := NewGeminiProvider(context.Background(), GeminiConfig{
			APIKey:  settings.APIKey,
			Model:   settings.Model,
			Timeout: settings.AITimeout,
			BaseURL: settings.BaseURL,
		})
		if err != nil {
			log.WithError(err).Error("Error initializing AI model, quest endpoints will return 503")
		} else {
			provider = p
		}
	}

	service := NewService(provider, RandomDifficulty)
	handler := NewHandler(service)

	return &QuestContainer{
		Handler: handler,
		Service: service,
	}
}
