package agent

import (
	"context"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/docs"
	"github.com/etnz/finance/renderer"
	"google.golang.org/genai"
)

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user keeps track of their income, expenses and investments. They are here to understand
			where their money goes, whether they stay within budget, and how their investments perform.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Answer in markdown. Never invent a figure, ask the Accountant for it.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market news.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of the stock and crypto markets, of the companies and of the latest news about them.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading, you can search and find about anything related to
			companies, stocks and crypto assets. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
		`}}},
		},
	}
}

// NewAccountant returns an expert reading the records of the tracker's
// logged in user. Amounts are displayed in currency.
func NewAccountant(model string, tracker *finance.Tracker, currency string) *Expert {
	lib := Accounting(tracker, currency)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. They are in charge of the user's records: income and expense transactions,
		and investment holdings. They compute budget totals, expenses by category, portfolio value, profit and loss, and allocation.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an accountant in charge of the user's personal finance records.
			You know how to use the Tools to extract relevant information about the user's budget and investments.
			You are part of a team of experts, yours is everything about the user's records. They might ask
			you questions about them, pardon their approximate language and figure out what they meant.

			Use the available tools to get information about:
			  - the budget over a period: income, expenses, expenses by category, over budget warning
			  - the list of transactions
			  - the investments: holdings valued at live prices, cost basis, profit and loss, allocation
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Accounting returns the functions reading the tracker's records.
func Accounting(tracker *finance.Tracker, currency string) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Budget",
				Description: `Budget reports total income, total expenses, net result, expenses by category and whether expenses exceed the budget threshold.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"period": {
							Type:        genai.TypeString,
							Description: "Restrict the report to the day, week, month, quarter or year containing 'date'. All transactions when empty.",
							Enum:        []string{"day", "week", "month", "quarter", "year"},
						},
						"date": {
							Type:        genai.TypeString,
							Description: "A date in YYYY-MM-DD format, today by default.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown budget report.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				r, err := parseRange(args)
				if err != nil {
					return errorResponse(id, "Budget", err)
				}
				report, err := tracker.Budget(ctx, r)
				if err != nil {
					return errorResponse(id, "Budget", err)
				}
				return outputResponse(id, "Budget", renderer.RenderBudget(renderer.NewBudget(report, currency)))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Investments",
				Description: `Investments values every holding at its live price (or purchase price when unavailable) and reports market value, cost basis, profit and loss and allocation.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"offline": {
							Type:        genai.TypeBoolean,
							Description: "Skip the price lookups and value holdings at their purchase price.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown investment report.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				offline, _ := args["offline"].(bool)
				report, err := tracker.Investments(ctx, !offline)
				if err != nil {
					return errorResponse(id, "Investments", err)
				}
				return outputResponse(id, "Investments", renderer.RenderInvestments(renderer.NewInvestments(report, currency, offline)))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Categories",
				Description: `Categories lists the expense categories, in reporting order.`,
				Response: &genai.Schema{
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return outputResponse(id, "Categories", tracker.Categories())
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Help",
				Description: `Help returns the user documentation of the fin command line tool.`,
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The documentation, in markdown.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				doc, err := docs.GetTopic("*")
				if err != nil {
					return errorResponse(id, "Help", err)
				}
				return outputResponse(id, "Help", doc)
			},
		},
	}
}

// parseRange reads the optional 'period' and 'date' arguments.
func parseRange(args map[string]any) (date.Range, error) {
	on := date.Today()
	if v, ok := args["date"]; ok {
		s, ok := v.(string)
		if !ok {
			return date.Range{}, fmt.Errorf("argument 'date' is not a string as expected but %T", v)
		}
		d, err := date.Parse(s)
		if err != nil {
			return date.Range{}, fmt.Errorf("argument 'date': %w", err)
		}
		on = d
	}
	v, ok := args["period"]
	if !ok || v == "" {
		return date.Range{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Range{}, fmt.Errorf("argument 'period' is not a string as expected but %T", v)
	}
	p, err := date.ParsePeriod(s)
	if err != nil {
		return date.Range{}, fmt.Errorf("argument 'period': %w", err)
	}
	return date.NewRange(on, p), nil
}
