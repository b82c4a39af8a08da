package main

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/moderation"
	"chat-hub/participant"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/services"
	"chat-hub/sink"
	"chat-hub/ui"
	"fmt"
	"log/slog"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the hub and plays the demo conversation, so deferred cleanups run before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	policy, err := buildPolicy(config, log)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	// 2. In-memory transcript
	db, err := repositories.OpenInMemory()
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := repositories.NewMessageRepository(db, log, config.LimitMessages)

	// 3. Hub, participants and presentation
	console := ui.NewConsole(os.Stdout, config.Colours)
	hub := runtime.NewHub(log,
		runtime.WithSinks(sink.NewTranscriptSink(repository, log)),
		runtime.WithBotFactory(func(h contract.IHub) contract.IFactory {
			return participant.NewChatBotFactory(h,
				participant.WithLogger(log),
				participant.WithReporter(console),
				participant.WithPolicy(policy))
		}),
	)
	hub.CreateChat()

	users := participant.NewUserFactory(hub, participant.WithLogger(log), participant.WithReporter(console))
	service := services.NewChatService(hub, users, repository)
	members := make(map[string]domain.Participant)
	for _, name := range []string{"JJ", "PJ", "RJ"} {
		p, err := service.Join(name)
		if err != nil {
			return fmt.Errorf("%s could not join: %w", name, err)
		}
		members[name] = p
	}

	// 4. Conversation
	script := []struct {
		from domain.Participant
		text string
	}{
		{members["JJ"], ""},
		{members["PJ"], runtime.AddBotCommand},
		{members["JJ"], config.Words()[0]},
	}
	for _, line := range script {
		if err := line.from.SendMessage(line.text); err != nil {
			return fmt.Errorf("%s could not talk: %w", line.from.Name(), err)
		}
	}

	// 5. Recall
	return printTranscript(service, hub)
}

func buildPolicy(config Config, log *slog.Logger) (moderation.Policy, error) {
	if config.ModerationMode == ModerationExact {
		return moderation.ExactTokens(config.Words()), nil
	}
	char, err := config.CharacterRune()
	if err != nil {
		return nil, err
	}
	return moderation.NewModerator(config.Words(), char, log)
}

func printTranscript(service services.IChatService, hub *runtime.Hub) error {
	transcript, err := service.Transcript()
	if err != nil {
		return fmt.Errorf("transcript recall failed: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Author", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range transcript {
		table.Append([]string{m.At.Format("15:04:05.000000"), m.Author, m.Content})
	}
	table.Render()

	names := lo.Map(hub.Members(), func(p domain.Participant, _ int) string { return p.Name() })
	fmt.Printf("Members left: %v\n", names)
	return nil
}
