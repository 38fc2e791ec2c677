package shopping

import (
	"errors"
	"fmt"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrSendFailed is returned when the SMTP server rejects a shopping list.
var ErrSendFailed = errors.New("failed to send email")

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount formats an amount in Brazilian reais, e.g. "R$ 1.234,50".
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("R$ %.2f", d.InexactFloat64())
}

// Text renders the shopping list as a message.
func Text(items []Item, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Cashfy shopping list - %s*\n\n", date.Format("02/01/2006"))

	total := decimal.Zero
	for _, i := range items {
		price := "___"
		if i.Price.IsPositive() {
			price = FormatAmount(i.Price)
		}

		fmt.Fprintf(&b, "▫️ %s: %s\n", i.Name, price)
		total = total.Add(i.Price)
	}

	fmt.Fprintf(&b, "\n💰 *CURRENT TOTAL: %s*", FormatAmount(total))
	return b.String()
}

// WhatsAppURL returns the link that opens WhatsApp with the text prefilled.
func WhatsAppURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

// Mailer sends shopping lists by email via SMTP.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string

	// send is replaced in tests
	send func(e *email.Email, addr string, auth smtp.Auth) error
}

// Configured reports whether an SMTP host is set.
func (m *Mailer) Configured() bool {
	return m != nil && m.Host != ""
}

// Send mails the shopping list to the recipient.
func (m *Mailer) Send(to string, items []Item, date time.Time) error {
	e := email.NewEmail()
	e.From = m.Sender
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Shopping list %s", date.Format("02/01/2006"))
	e.Text = []byte(Text(items, date))

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	send := m.send
	if send == nil {
		send = func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		}
	}

	err := send(e, addr, auth)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("sending shopping list failed")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	log.Info().Str("to", to).Str("subject", e.Subject).Msg("shopping list sent")
	return nil
}
