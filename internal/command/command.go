package command

// Kind identifies one of the four supported commands.
type Kind int

const (
	Start Kind = iota
	Roll
	Album
	Send
)

// Command is a validated user command. Send carries its arguments; the
// other kinds use none.
type Command struct {
	Kind     Kind
	Icon     string
	Quantity int
	To       string
}

// Reply is the payload handed to the transport: the message text plus
// shortcut labels the client may offer as quick replies.
type Reply struct {
	Text    string
	Buttons []string
}

// QuickReplies are the shortcut labels attached to every reply.
var QuickReplies = []string{"🎲 /roll", "📖 /album"}
