package bot

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/emojialbum/internal/command"
)

func slashCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "start",
			Description: "Learn how the emoji album works",
		},
		{
			Name:        "roll",
			Description: "Roll for new emojis",
		},
		{
			Name:        "album",
			Description: "Show all the emojis in your album",
		},
		{
			Name:        "send",
			Description: "Send emojis to another user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "emoji",
					Description: "The emoji to send",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "user",
					Description: "Username of the recipient",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quantity",
					Description: "How many to send (default 1)",
					Required:    false,
				},
			},
		},
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleQuickReply(s, i)
	}
}

func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var cmd command.Command
	switch data.Name {
	case "start":
		cmd = command.Command{Kind: command.Start}
	case "roll":
		cmd = command.Command{Kind: command.Roll}
	case "album":
		cmd = command.Command{Kind: command.Album}
	case "send":
		cmd = sendCommandFromOptions(data.Options)
	default:
		return
	}

	b.respond(s, i, b.dispatcher.Execute(cmd, interactionUsername(i)))
}

// handleQuickReply runs the command a quick-reply button stands for.
func (b *Bot) handleQuickReply(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "quick:") {
		return
	}

	cmd, err := command.Parse(strings.TrimPrefix(customID, "quick:"))
	if err != nil {
		b.respond(s, i, command.Reply{Text: "Error: " + err.Error(), Buttons: command.QuickReplies})
		return
	}

	b.respond(s, i, b.dispatcher.Execute(cmd, interactionUsername(i)))
}

func sendCommandFromOptions(options []*discordgo.ApplicationCommandInteractionDataOption) command.Command {
	cmd := command.Command{Kind: command.Send, Quantity: 1}
	for _, opt := range options {
		switch opt.Name {
		case "emoji":
			cmd.Icon = strings.TrimSpace(opt.StringValue())
		case "user":
			cmd.To = strings.TrimPrefix(strings.TrimSpace(opt.StringValue()), "@")
		case "quantity":
			cmd.Quantity = int(opt.IntValue())
		}
	}
	return cmd
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, reply command.Reply) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    reply.Text,
			Components: buttonRows(reply.Buttons),
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func interactionUsername(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}
