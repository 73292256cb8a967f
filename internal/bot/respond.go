package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// EmbedColor is the accent color used for all bot embeds.
const EmbedColor = 0x9B59B6

// MessageEmbed sends an embed to a channel, logging on failure.
func MessageEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) {
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("[ERR] Failed to send embed to %s: %v", channelID, err)
	}
}

// MessageText sends a plain message to a channel, logging on failure.
func MessageText(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("[ERR] Failed to send message to %s: %v", channelID, err)
	}
}
