package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/internal/config"
)

// Telegram pushes operational notices (registrations, logins, bans) to
// a chat. Delivery is best effort: failures are logged and swallowed,
// never surfaced to the request path.
type Telegram struct {
	botToken string
	chatID   string
	http     *http.Client
	log      zerolog.Logger
}

func NewTelegram(cfg config.TelegramConfig, log zerolog.Logger) *Telegram {
	return &Telegram{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		http:     &http.Client{Timeout: 5 * time.Second},
		log:      log,
	}
}

// Enabled reports whether a bot token is configured.
func (t *Telegram) Enabled() bool {
	return t.botToken != "" && t.chatID != ""
}

// Send posts one HTML-formatted message.
func (t *Telegram) Send(ctx context.Context, text string) {
	if !t.Enabled() {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		t.log.Warn().Err(err).Msg("telegram payload encode failed")
		return
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.log.Warn().Err(err).Msg("telegram request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		t.log.Warn().Err(err).Msg("telegram send failed")
		return
	}
	resp.Body.Close()
}

// Background fires the message from a goroutine with its own timeout
// so the calling handler never waits on Telegram.
func (t *Telegram) Background(text string) {
	if !t.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		t.Send(ctx, text)
	}()
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func (t *Telegram) UserRegistered(username, email string, ip *string) {
	t.Background(fmt.Sprintf(
		"🆕 <b>Yeni Kayıt</b>\n👤 Kullanıcı: %s\n📧 Email: %s\n🌐 IP: %s",
		username, email, orNA(ip)))
}

func (t *Telegram) UserLoggedIn(username, email string, ip *string) {
	t.Background(fmt.Sprintf(
		"🔐 <b>Giriş Yapıldı</b>\n👤 Kullanıcı: %s\n📧 Email: %s\n🌐 IP: %s",
		username, email, orNA(ip)))
}

func (t *Telegram) UserBanned(target, admin string) {
	t.Background(fmt.Sprintf(
		"🚫 <b>Kullanıcı Engellendi</b>\n👤 Engellenen: %s\n👮 Engelleyen: %s",
		target, admin))
}

func (t *Telegram) UserUnbanned(target, admin string) {
	t.Background(fmt.Sprintf(
		"✅ <b>Engel Kaldırıldı</b>\n👤 Kullanıcı: %s\n👮 Kaldıran: %s",
		target, admin))
}
