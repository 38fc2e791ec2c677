// Package advisor generates a financial analysis of a user's data with Gemini.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cashfy/backend/internal/models"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// MaxTransactions is the number of most recent transactions sent to the model.
const MaxTransactions = 50

const systemInstruction = "You are a senior financial analyst. Be direct, practical and visual."

type Trend struct {
	Icon string `json:"icon" example:"up"`
	Text string `json:"text" example:"Spending on restaurants went up"`
	Type string `json:"type" example:"negative"`
}

type Recommendation struct {
	Title       string `json:"title" example:"Build an emergency fund"`
	Description string `json:"description" example:"Put aside 10% of your income every month."`
	Difficulty  string `json:"difficulty" example:"Easy"`
}

type Risk struct {
	Severity    string `json:"severity" example:"medium"`
	Description string `json:"description" example:"No reserve for unexpected expenses."`
}

// Analysis is the structured result of the model.
type Analysis struct {
	Summary         string           `json:"summary" example:"Your finances are stable."`
	HealthScore     int              `json:"healthScore" example:"72"`
	FinancialStatus string           `json:"financialStatus" example:"Good"`
	Trends          []Trend          `json:"trends"`
	Recommendations []Recommendation `json:"recommendations"`
	Risks           []Risk           `json:"risks"`
}

// Input is the data the analysis is based on.
type Input struct {
	Transactions  []models.Transaction
	IncomeSources []models.IncomeSource
	Goals         []models.Goal
}

// Analyzer produces an analysis. A nil result without an error means
// no analysis is available.
type Analyzer interface {
	Analyze(ctx context.Context, in Input) (*Analysis, error)
}

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini is an Analyzer backed by the Gemini API.
type Gemini struct {
	model     string
	generator generator
	timeout   time.Duration
}

// NewGemini creates the client. Without an API key, the returned
// analyzer never produces a result.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	g := &Gemini{model: model, timeout: 60 * time.Second}
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, the financial advisor is disabled")
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g.generator = client.Models
	return g, nil
}

// Enabled reports whether an API key was configured.
func (g *Gemini) Enabled() bool {
	return g.generator != nil
}

// Analyze never returns an error, failures are logged and result in a nil analysis.
func (g *Gemini) Analyze(ctx context.Context, in Input) (*Analysis, error) {
	if !g.Enabled() {
		return nil, nil
	}

	p, err := prompt(in)
	if err != nil {
		log.Error().Err(err).Msg("building the advisor prompt failed")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.generator.GenerateContent(ctx, g.model, genai.Text(p), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("Gemini API error")
		return nil, nil
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		log.Warn().Str("model", g.model).Msg("Gemini returned an empty response")
		return nil, nil
	}

	var a Analysis
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("decoding the Gemini response failed")
		return nil, nil
	}

	a.HealthScore = min(max(a.HealthScore, 0), 100)
	return &a, nil
}

type promptTransaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Type        string `json:"type"`
}

type promptIncomeSource struct {
	Name           string `json:"name"`
	ExpectedAmount string `json:"expectedAmount"`
}

type promptGoal struct {
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
}

func prompt(in Input) (string, error) {
	transactions := in.Transactions
	if len(transactions) > MaxTransactions {
		transactions = transactions[:MaxTransactions]
	}

	pt := make([]promptTransaction, 0, len(transactions))
	for _, t := range transactions {
		pt = append(pt, promptTransaction{
			Date:        t.Date.Format(time.DateOnly),
			Description: t.Description,
			Amount:      t.Amount.StringFixed(2),
			Category:    t.Category,
			Type:        string(t.Type),
		})
	}

	pi := make([]promptIncomeSource, 0, len(in.IncomeSources))
	for _, s := range in.IncomeSources {
		pi = append(pi, promptIncomeSource{Name: s.Name, ExpectedAmount: s.ExpectedAmount.StringFixed(2)})
	}

	pg := make([]promptGoal, 0, len(in.Goals))
	for _, g := range in.Goals {
		pg = append(pg, promptGoal{Name: g.Name, TargetAmount: g.TargetAmount.StringFixed(2), CurrentAmount: g.CurrentAmount.StringFixed(2)})
	}

	var b strings.Builder
	b.WriteString("Analyze the following financial data of the user.\n\nData:\n")
	for _, section := range []struct {
		title string
		value any
	}{
		{fmt.Sprintf("Transactions (last %d)", MaxTransactions), pt},
		{"Income sources", pi},
		{"Goals", pg},
	} {
		data, err := json.Marshal(section.value)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "- %s: %s\n", section.title, data)
	}

	b.WriteString(`
Generate a structured analysis containing:
1. A short executive summary.
2. A financial health score from 0 to 100 based on savings, debts and investments.
3. The financial status (Excellent, Good, Attention, Critical).
4. The 3 main trends observed (rising or falling spending, problematic categories).
5. 3 practical recommendations.
6. Potential risks.

Answer EXCLUSIVELY with JSON following the schema.`)

	return b.String(), nil
}

var (
	minScore = 0.0
	maxScore = 100.0
)

var schema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":         {Type: genai.TypeString},
		"healthScore":     {Type: genai.TypeInteger, Description: "0-100 score", Minimum: &minScore, Maximum: &maxScore},
		"financialStatus": {Type: genai.TypeString, Enum: []string{"Excellent", "Good", "Attention", "Critical"}},
		"trends": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"icon": {Type: genai.TypeString, Enum: []string{"up", "down", "flat"}},
					"text": {Type: genai.TypeString},
					"type": {Type: genai.TypeString, Enum: []string{"positive", "negative", "neutral"}},
				},
			},
		},
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"difficulty":  {Type: genai.TypeString, Enum: []string{"Easy", "Medium", "Hard"}},
				},
			},
		},
		"risks": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"severity":    {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
					"description": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{"summary", "healthScore", "financialStatus", "trends", "recommendations", "risks"},
}
