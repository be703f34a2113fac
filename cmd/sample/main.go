package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	ai "github.com/spetersoncode/vertexlm"
	"github.com/spetersoncode/vertexlm/model"
	"github.com/spetersoncode/vertexlm/provider/vertex"
)

func main() {
	godotenv.Load()

	modelID := flag.String("model", "gemini-1.0-pro", fmt.Sprintf("model id (one of: %s)", strings.Join(model.Supported(), ", ")))
	temperature := flag.Float64("temperature", 0.2, "sampling temperature")
	maxTokens := flag.Int("max-tokens", 256, "maximum output tokens")
	flag.Parse()

	prompt := strings.Join(flag.Args(), " ")
	if prompt == "" {
		prompt = "Say hello in 3 different languages, one per line."
	}

	adapter, err := vertex.New(*modelID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	results, err := adapter.Sample(context.Background(),
		[]ai.Prompt{ai.NewTextPrompt(prompt)},
		ai.WithTemperature(*temperature),
		ai.WithMaxTokens(*maxTokens),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Println(r.Text())
		if r.Usage != nil {
			fmt.Printf("[Tokens: %d prompt, %d completion, %d total]\n",
				r.Usage.PromptTokens, r.Usage.CompletionTokens, r.Usage.TotalTokens)
		}
	}
}
