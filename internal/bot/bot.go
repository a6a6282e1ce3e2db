package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/emojialbum/internal/command"
)

type Bot struct {
	session    *discordgo.Session
	dispatcher *command.Dispatcher
}

func New(token string, dispatcher *command.Dispatcher) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		dispatcher: dispatcher,
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	log.Println("Emoji album bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s is connected!", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			log.Printf("Failed to register commands for guild %s: %v", guild.ID, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	log.Printf("Guild available/joined: %s (id=%s) — ensuring commands", event.Name, event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		log.Printf("Failed to register commands for guild %s: %v", event.ID, err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, slashCommands())
	if err != nil {
		return err
	}

	log.Printf("Registered application commands for guild %s", guildID)
	return nil
}

// onMessageCreate handles the text form of the commands, e.g. "/send 3 😍
// @coolusername" typed as a plain message.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, "/") {
		return
	}

	cmd, err := command.Parse(content)
	if err != nil {
		b.sendReply(m.ChannelID, command.Reply{Text: "Error: " + err.Error(), Buttons: command.QuickReplies})
		return
	}

	log.Printf("<%s>: %s", m.Author.Username, content)
	b.sendReply(m.ChannelID, b.dispatcher.Execute(cmd, m.Author.Username))
}

func (b *Bot) sendReply(channelID string, reply command.Reply) {
	_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    reply.Text,
		Components: buttonRows(reply.Buttons),
	})
	if err != nil {
		log.Printf("Failed to send reply to channel %s: %v", channelID, err)
	}
}

// buttonRows turns the reply's quick-reply labels into a row of message
// component buttons.
func buttonRows(labels []string) []discordgo.MessageComponent {
	if len(labels) == 0 {
		return nil
	}

	row := discordgo.ActionsRow{}
	for _, label := range labels {
		row.Components = append(row.Components, discordgo.Button{
			Label:    label,
			Style:    discordgo.SecondaryButton,
			CustomID: quickReplyCustomID(label),
		})
	}
	return []discordgo.MessageComponent{row}
}

// quickReplyCustomID extracts the command a quick-reply button stands for,
// e.g. "🎲 /roll" -> "quick:/roll".
func quickReplyCustomID(label string) string {
	fields := strings.Fields(label)
	return "quick:" + fields[len(fields)-1]
}
