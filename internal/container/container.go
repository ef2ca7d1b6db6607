package container

import (
	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/quest"
)

type Container struct {
	Settings       *config.Settings
	QuestContainer *quest.QuestContainer
}

func New() *Container {
	settings := config.Load()
	config.InitLogger(settings.LogLevel, settings.LogFormat)

	return &Container{
		Settings:       settings,
		QuestContainer: quest.NewQuestContainer(settings),
	}
}
