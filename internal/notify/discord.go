package notify

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier posts notifications to a Discord channel. Send failures are
// logged and swallowed so the engine never blocks on chat delivery.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordNotifier creates a Discord-backed notifier posting to channelID
func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) Info(message string) {
	n.send(fmt.Sprintf("ℹ️ %s", message))
}

func (n *DiscordNotifier) Warn(message string) {
	n.send(fmt.Sprintf("⚠️ %s", message))
}

func (n *DiscordNotifier) Error(message string) {
	n.send(fmt.Sprintf("❌ %s", message))
}

func (n *DiscordNotifier) send(message string) {
	if n.session == nil || n.channelID == "" {
		log.Printf("discord notifier not configured, dropping: %s", message)
		return
	}
	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		log.Printf("failed to send Discord notification: %v", err)
	}
}
