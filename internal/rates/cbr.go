package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/htmlindex"
)

// CBR fetches the daily rates of the Central Bank of Russia. All rates
// are quoted in rubles, so any pair of listed currencies can be derived.
type CBR struct {
	url    string
	client *http.Client
}

func NewCBR(url string) *CBR {
	return &CBR{url: url, client: newClient()}
}

func (c *CBR) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	resp, err := get(ctx, c.client, c.url)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to parse XML: %w", ErrUnavailable, err)
	}

	rubles, err := parseValutes(doc)
	if err != nil {
		return decimal.Zero, err
	}

	f, ok := rubles[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s is not listed by the CBR", ErrUnsupportedCurrency, from)
	}

	t, ok := rubles[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s is not listed by the CBR", ErrUnsupportedCurrency, to)
	}

	return f.DivRound(t, 8), nil
}

// The CBR serves its XML as windows-1251.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}

	return enc.NewDecoder().Reader(input), nil
}

// parseValutes returns the value of one unit of every listed currency in rubles.
func parseValutes(doc *etree.Document) (map[string]decimal.Decimal, error) {
	valutes := doc.FindElements("//ValCurs/Valute")
	if len(valutes) == 0 {
		return nil, fmt.Errorf("%w: no rates found in XML", ErrUnavailable)
	}

	rubles := map[string]decimal.Decimal{"RUB": decimal.NewFromInt(1)}
	for _, v := range valutes {
		code := v.FindElement("./CharCode")
		value := v.FindElement("./Value")
		if code == nil || value == nil {
			continue
		}

		nominal := decimal.NewFromInt(1)
		if n := v.FindElement("./Nominal"); n != nil {
			parsed, err := decimal.NewFromString(strings.TrimSpace(n.Text()))
			if err == nil && parsed.IsPositive() {
				nominal = parsed
			}
		}

		amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(value.Text()), ",", "."))
		if err != nil || !amount.IsPositive() {
			log.Debug().Str("currency", code.Text()).Str("value", value.Text()).Msg("skipping unparseable CBR rate")
			continue
		}

		rubles[strings.TrimSpace(code.Text())] = amount.DivRound(nominal, 8)
	}

	return rubles, nil
}
