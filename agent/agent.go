// Package agent implements the interactive fee advisor, a Gemini chat that
// answers questions by calling the fee calculator.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
}

// New creates a new Agent chatting with expert, writing to w and reading
// user input from r.
func New(w io.Writer, r io.Reader, expert *Expert) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: expert,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
//
// prompts are answered first, as if the user typed them. The session ends on
// "bye" or at the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the DataVest fee advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
