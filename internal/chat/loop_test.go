package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/binaryn3xus/AIForge/internal/model"
	"github.com/binaryn3xus/AIForge/internal/service"
)

type fakePipeline struct {
	chunks        []model.Chunk
	retrieveErr   error
	tokens        []service.StreamToken
	streamErr     error
	retrieveCalls int
	streamCalls   int
	questions     []string
}

func (f *fakePipeline) Retrieve(_ context.Context, question string, _ int) ([]model.Chunk, error) {
	f.retrieveCalls++
	f.questions = append(f.questions, question)
	return f.chunks, f.retrieveErr
}

func (f *fakePipeline) Stream(_ context.Context, _ string, _ []model.Chunk) (<-chan service.StreamToken, error) {
	f.streamCalls++
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	ch := make(chan service.StreamToken, len(f.tokens))
	for _, tok := range f.tokens {
		ch <- tok
	}
	close(ch)
	return ch, nil
}

func run(t *testing.T, p Pipeline, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(p, strings.NewReader(input), &out).Run(context.Background())
	return out.String(), err
}

func TestRun_StreamsAnswer(t *testing.T) {
	p := &fakePipeline{
		chunks: []model.Chunk{{ID: "a", Text: "Road bikes."}, {ID: "b", Text: "Mountain bikes."}, {ID: "c", Text: "Touring bikes."}},
		tokens: []service.StreamToken{{Content: "Hel"}, {Content: "lo", Done: true}},
	}
	out, err := run(t, p, "What bikes do you sell?\nexit\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Hello") {
		t.Errorf("output missing streamed answer: %q", out)
	}
	if p.retrieveCalls != 1 || p.streamCalls != 1 {
		t.Errorf("retrieve=%d stream=%d, want 1/1", p.retrieveCalls, p.streamCalls)
	}
	if p.questions[0] != "What bikes do you sell?" {
		t.Errorf("question passed as %q", p.questions[0])
	}
}

func TestRun_ExitIsCaseInsensitive(t *testing.T) {
	for _, word := range []string{"exit", "EXIT", "Exit"} {
		p := &fakePipeline{}
		if _, err := run(t, p, word+"\n"); err != nil {
			t.Fatalf("run(%q): %v", word, err)
		}
		if p.retrieveCalls != 0 {
			t.Errorf("%q must terminate without any pipeline call", word)
		}
	}
}

func TestRun_EmptyInputReprompts(t *testing.T) {
	p := &fakePipeline{}
	if _, err := run(t, p, "\n   \n\t\nexit\n"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if p.retrieveCalls != 0 {
		t.Error("blank lines must not reach the pipeline")
	}
}

func TestRun_NoChunksPrintsMessageAndSkipsGeneration(t *testing.T) {
	p := &fakePipeline{} // zero chunks
	out, err := run(t, p, "unknown topic?\nexit\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, noContextMsg) {
		t.Errorf("output missing empty-context message: %q", out)
	}
	if p.streamCalls != 0 {
		t.Error("generation must be skipped on empty context")
	}
}

func TestRun_RetrieveErrorReportedLoopContinues(t *testing.T) {
	p := &fakePipeline{retrieveErr: errors.New("db unreachable")}
	out, err := run(t, p, "first?\nsecond?\nexit\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Something went wrong") {
		t.Errorf("error not reported: %q", out)
	}
	if p.retrieveCalls != 2 {
		t.Errorf("loop should keep accepting turns, retrieve=%d", p.retrieveCalls)
	}
}

func TestRun_MidStreamErrorTruncatesTurn(t *testing.T) {
	p := &fakePipeline{
		chunks: []model.Chunk{{ID: "a", Text: "x"}},
		tokens: []service.StreamToken{{Content: "partial"}, {Done: true, Err: errors.New("reset")}},
	}
	out, err := run(t, p, "q?\nexit\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "partial") {
		t.Errorf("truncated answer should still be shown: %q", out)
	}
	if !strings.Contains(out, "Something went wrong") {
		t.Errorf("stream failure not reported: %q", out)
	}
}

func TestRun_EndOfInputStops(t *testing.T) {
	p := &fakePipeline{}
	if _, err := run(t, p, ""); err != nil {
		t.Fatalf("run on EOF: %v", err)
	}
}
