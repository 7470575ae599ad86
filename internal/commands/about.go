package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Soheab/discord-ext-embeds/internal/version"
)

var startTime = time.Now()

// AboutCommand replies with build and runtime information
func AboutCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("about")
	logger.Info("About command executed", map[string]interface{}{
		"user_id":    m.Author.ID,
		"guild_id":   m.GuildID,
		"channel_id": m.ChannelID,
	})

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	info := version.Get()
	embed := newEmbed().
		SetTitle("Embeds Example Bot").
		SetDescription("Showcase bot for the discord-ext-embeds builder library.").
		SetTimestamp(time.Now()).
		SetFooterUser(s.State.User).
		AddField("Version", info.Version, true).
		AddField("Commit", info.GitCommit, true).
		AddField("Go Version", info.GoVersion, true).
		AddField("Uptime", formatUptime(time.Since(startTime)), true).
		AddField("Memory", fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/1024/1024), true).
		AddField("Goroutines", fmt.Sprintf("%d", runtime.NumGoroutine()), true).
		AddField("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), true).
		AddField("Ping", fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()), true)

	if _, err := embed.Send(s, m.ChannelID); err != nil {
		logger.Error("Failed to send about embed", err, map[string]interface{}{
			"channel_id": m.ChannelID,
		})
	}
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
