package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/bondbook"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewRegistrar creates the bond registrar expert: it can count and search
// the user's collection, and dry-run an ingestion to explain what a given
// input would do.
func NewRegistrar(col *bondbook.Collection, opts bondbook.Options) *Expert {
	lib := []Function{countBonds(col), searchBonds(col), previewIngest(col, opts)}

	return &Expert{
		Name:      "Registrar",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the registrar of the user's premium bond collection.
			Bonds are 7-digit numbers; the user enters them one by one or as
			ranges like 0000001-0000100.

			Use the available tools to answer questions about the collection:
			  - how many bonds are held
			  - whether specific numbers or number fragments are held
			  - what a paste of raw text would add, skip, or reject

			Never invent bond numbers. When a tool reports an error, relay it
			plainly and suggest the fix.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func countBonds(col *bondbook.Collection) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "CountBonds",
			Description: "CountBonds returns the number of bonds currently held in the collection.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The number of held bonds.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return okResponse(id, "CountBonds", fmt.Sprintf("%d bonds held", col.Len()))
		},
	}
}

func searchBonds(col *bondbook.Collection) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SearchBonds",
			Description: `SearchBonds returns the held bonds containing the given digits as a substring,
			in collection order. An empty query returns the whole collection.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "The digit fragment to search for. Empty for all bonds.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A newline-separated list of matching bond numbers.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			query, err := stringArg(args, "query")
			if err != nil {
				return errResponse(id, "SearchBonds", err)
			}
			matches := col.Filter(query)
			if len(matches) == 0 {
				return okResponse(id, "SearchBonds", "no matching bonds")
			}
			parts := make([]string, len(matches))
			for i, b := range matches {
				parts[i] = string(b)
			}
			return okResponse(id, "SearchBonds", strings.Join(parts, "\n"))
		},
	}
}

func previewIngest(col *bondbook.Collection, opts bondbook.Options) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PreviewIngest",
			Description: `PreviewIngest dry-runs the ingestion of raw text without changing the collection.
			It reports how many bonds would be added, and every duplicate or formatting problem.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"input": {
						Type:        genai.TypeString,
						Description: "The raw text the user wants to add: bond numbers and ranges separated by commas, spaces or newlines.",
					},
				},
				Required: []string{"input"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The outcome summary of the dry run.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			input, err := stringArg(args, "input")
			if err != nil {
				return errResponse(id, "PreviewIngest", err)
			}
			outcome := bondbook.Ingest(input, col, opts)
			return okResponse(id, "PreviewIngest", outcome.Message())
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}
