package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sportscal/internal/config"
	"sportscal/internal/convo"
	"sportscal/internal/customize"
	"sportscal/internal/extract"
	"sportscal/internal/logger"
	"sportscal/internal/orchestrator"
	"sportscal/internal/source"
	"sportscal/internal/telegram"
	"sportscal/internal/whatsapp"
)

func main() {
	cfg := config.LoadFromEnv()

	log, err := logger.New(cfg.Debug)
	if err != nil {
		fatal("creating logger", err)
	}
	defer logger.Sync(log)

	if cfg.TelegramBotToken == "" {
		fatal("configuration", fmt.Errorf("TELEGRAM_BOT_TOKEN is required"))
	}

	store := initSessionStore(cfg, log)
	customizer := customize.NewCustomizer(store, log)
	extractor := initExtractor(cfg, log)
	assistant := initAssistant(cfg, log)

	orch := orchestrator.New(extractor, customizer, assistant, cfg.TempDir, log)

	bot, err := telegram.New(cfg.TelegramBotToken, log)
	if err != nil {
		fatal("starting telegram bot", err)
	}
	orch.RegisterResponder(source.SourceTypeTelegram, bot)

	msgChan := merge(bot.MessageChan(), initWhatsApp(cfg, orch, log))

	orch.Start(msgChan)
	go bot.Run()

	log.Info("sportscal bot running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	bot.Stop()
	orch.Stop()
}

func initSessionStore(cfg *config.Config, log *zap.Logger) customize.Store {
	if cfg.RedisAddr == "" {
		log.Info("using in-memory session store")
		return customize.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, falling back to in-memory sessions", zap.Error(err))
		return customize.NewMemoryStore()
	}

	log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	return customize.NewRedisStore(client, ttl)
}

func initExtractor(cfg *config.Config, log *zap.Logger) extract.Extractor {
	rules := extract.NewRuleExtractor()
	if cfg.OpenAIAPIKey == "" {
		log.Info("no OpenAI key configured, using rule-based extraction only")
		return rules
	}

	ai := extract.NewOpenAIExtractor(extract.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
	})
	return extract.WithFallback(ai, rules, log)
}

func initAssistant(cfg *config.Config, log *zap.Logger) orchestrator.Assistant {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	return convo.NewAssistant(convo.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}, log)
}

func initWhatsApp(cfg *config.Config, orch *orchestrator.Orchestrator, log *zap.Logger) <-chan source.Message {
	if !cfg.WhatsAppEnabled {
		return nil
	}

	handler := whatsapp.NewHandler(log)
	client, err := whatsapp.NewClient(handler, cfg.WhatsAppDBPath, log)
	if err != nil {
		log.Warn("whatsapp unavailable, continuing without it", zap.Error(err))
		return nil
	}
	if err := client.Connect(context.Background()); err != nil {
		log.Warn("whatsapp connection failed, continuing without it", zap.Error(err))
		return nil
	}
	orch.RegisterResponder(source.SourceTypeWhatsApp, client)
	return handler.MessageChan()
}

// merge fans multiple transport channels into one stream. Nil channels
// are skipped so optional transports cost nothing.
func merge(chans ...<-chan source.Message) <-chan source.Message {
	out := make(chan source.Message, 100)
	for _, ch := range chans {
		if ch == nil {
			continue
		}
		go func(c <-chan source.Message) {
			for msg := range c {
				out <- msg
			}
		}(ch)
	}
	return out
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
