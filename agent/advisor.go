package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/datavest/wealth"
	"github.com/datavest/wealth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewAdvisor returns the expert in charge of explaining management fees.
func NewAdvisor() *Expert {
	lib := []Function{QuoteFee}
	return &Expert{
		Name:        "Advisor",
		Description: "Explains the DataVest management fee schedule and quotes fees.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a wealth management advisor at DataVest.
				Clients invest amounts in millions of Toman over 3, 6, 9 or 12 months.
				Never compute a fee yourself: always call quote_fee and explain its result,
				including the payment plan and the monthly saving against the 3 months plan.
				If the client asks about another horizon, tell them which horizons are offered.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// QuoteFee lets a model run the fee calculator.
var QuoteFee = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "quote_fee",
		Description: "Computes the management fee quote of an investment, as markdown.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {
					Type:        genai.TypeNumber,
					Description: "The investment amount, in millions of Toman.",
				},
				"months": {
					Type:        genai.TypeInteger,
					Description: "The investment horizon in months: 3, 6, 9 or 12.",
				},
			},
			Required: []string{"amount", "months"},
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return &genai.FunctionResponse{ID: id, Name: "quote_fee", Response: quoteFee(args)}
	},
}

// quoteFee runs the fee calculator on the model arguments.
func quoteFee(args map[string]any) map[string]any {
	amount, ok := number(args["amount"])
	if !ok {
		return map[string]any{"error": fmt.Sprintf("invalid amount %v, expected a number", args["amount"])}
	}
	months, ok := number(args["months"])
	if !ok || months != math.Trunc(months) {
		return map[string]any{"error": fmt.Sprintf("invalid months %v, expected a whole number", args["months"])}
	}
	q, err := wealth.NewQuote(wealth.D(amount), wealth.Horizon(int(months)))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{"output": renderer.QuoteMarkdown(q)}
}

// number accepts the numeric types a decoded JSON argument can have.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
