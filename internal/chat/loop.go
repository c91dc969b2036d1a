// Package chat runs the interactive console loop: read a question, retrieve
// grounding context, stream the generated answer, repeat until "exit".
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"

	"github.com/binaryn3xus/AIForge/internal/model"
	"github.com/binaryn3xus/AIForge/internal/service"
)

const (
	exitWord     = "exit"
	noContextMsg = "No relevant information found for that question."
)

// Pipeline is the retrieval+generation flow the loop drives each turn.
type Pipeline interface {
	Retrieve(ctx context.Context, question string, k int) ([]model.Chunk, error)
	Stream(ctx context.Context, question string, chunks []model.Chunk) (<-chan service.StreamToken, error)
}

type Loop struct {
	pipeline Pipeline
	in       io.Reader
	out      io.Writer
}

func New(pipeline Pipeline, in io.Reader, out io.Writer) *Loop {
	return &Loop{pipeline: pipeline, in: in, out: out}
}

// Run reads questions until the exit word or end of input. Empty lines
// re-prompt silently; a failed turn is reported and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintf(l.out, "Ask a question (type %q to quit).\n", exitWord)

	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(l.out)
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, exitWord) {
			return nil
		}

		if err := l.turn(ctx, question); err != nil {
			log.WithError(err).Error("turn failed")
			fmt.Fprintf(l.out, "Something went wrong: %v\n", err)
		}
	}
}

// turn runs one question through the pipeline, streaming the answer to the
// output as tokens arrive.
func (l *Loop) turn(ctx context.Context, question string) error {
	chunks, err := l.pipeline.Retrieve(ctx, question, 0)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		fmt.Fprintln(l.out, noContextMsg)
		return nil
	}

	tokens, err := l.pipeline.Stream(ctx, question, chunks)
	if err != nil {
		return err
	}
	for tok := range tokens {
		if tok.Err != nil {
			fmt.Fprintln(l.out)
			return fmt.Errorf("stream error: %w", tok.Err)
		}
		fmt.Fprint(l.out, tok.Content)
	}
	fmt.Fprintln(l.out)
	return nil
}
