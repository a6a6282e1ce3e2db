package command

import (
	"errors"
	"strconv"
	"strings"
)

const sendUsage = "To send emojis to someone follow the format `/send QUANTITY EMOJI @USERNAME` like `/send 3 😍 @coolusername`. The quantity is optional."

// Parse turns a raw message into a validated command. Errors carry the
// user-facing explanation and are meant to be sent back as the reply.
func Parse(text string) (Command, error) {
	text = strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(text, "/start"):
		if text != "/start" {
			return Command{}, errors.New("/start command accepts no arguments")
		}
		return Command{Kind: Start}, nil

	case strings.HasPrefix(text, "/roll"):
		if text != "/roll" {
			return Command{}, errors.New("/roll command accepts no arguments")
		}
		return Command{Kind: Roll}, nil

	case strings.HasPrefix(text, "/album"):
		if text != "/album" {
			return Command{}, errors.New("/album command accepts no arguments")
		}
		return Command{Kind: Album}, nil

	case strings.HasPrefix(text, "/send"):
		return parseSend(text)
	}

	return Command{}, errors.New("Command not found. Type or press / to see all available commands.")
}

func parseSend(text string) (Command, error) {
	params := strings.Fields(text)[1:]
	if len(params) < 2 {
		return Command{}, errors.New(sendUsage)
	}

	cmd := Command{Kind: Send, Quantity: 1}
	if len(params) == 2 {
		cmd.Icon = params[0]
	} else {
		quantity, err := strconv.Atoi(params[0])
		if err != nil {
			return Command{}, errors.New("The quantity parameter should be an integer number, for example: 3")
		}
		cmd.Icon = params[1]
		cmd.Quantity = quantity
	}

	to, err := parseUsername(params[len(params)-1])
	if err != nil {
		return Command{}, err
	}
	cmd.To = to

	return cmd, nil
}

func parseUsername(text string) (string, error) {
	if text == "" {
		return "", errors.New("/send username cannot be empty. " + sendUsage)
	}
	return strings.TrimPrefix(text, "@"), nil
}
