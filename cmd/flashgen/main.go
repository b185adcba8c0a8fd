// Command flashgen is a terminal client for the flashgen API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dtroode/flashgen-server/internal/client"
	"github.com/dtroode/flashgen-server/internal/model"
	"github.com/dtroode/flashgen-server/internal/study"
)

const usage = `usage: flashgen [-url URL] [-token TOKEN] <command> [args]

commands:
  topic <text>        submit a topic and generate flashcards
  topics [query]      list your topics
  cards <topicId>     browse flashcards (n)ext (p)revious (f)lip (q)uit
  quiz <topicId>      take a generated quiz and record the score
  recommend           generate learning recommendations
  dashboard           show topics, progress and recommendations
`

// API is the part of the client the commands use.
type API interface {
	CreateTopic(ctx context.Context, topic string) (uuid.UUID, []model.Flashcard, error)
	Topics(ctx context.Context, query string) ([]model.Topic, error)
	Flashcards(ctx context.Context, topicID uuid.UUID) ([]model.Flashcard, error)
	GenerateQuiz(ctx context.Context, topicID uuid.UUID) (uuid.UUID, []model.QuizQuestion, error)
	UpdateProgress(ctx context.Context, topicID uuid.UUID, score float64) (model.Progress, error)
	GenerateRecommendations(ctx context.Context) ([]model.RecommendationItem, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
}

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("flashgen", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	baseURL := fs.String("url", envOr("FLASHGEN_URL", "http://localhost:8080"), "API base URL")
	token := fs.String("token", os.Getenv("FLASHGEN_TOKEN"), "access token of the signed-in user")
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	if *token == "" {
		fmt.Fprintln(os.Stderr, "flashgen: no token, set FLASHGEN_TOKEN or -token")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &App{api: client.New(*baseURL, *token, nil), in: bufio.NewScanner(os.Stdin), out: os.Stdout}
	if err := app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "flashgen:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// App runs one command against api, reading answers from in.
type App struct {
	api API
	in  *bufio.Scanner
	out io.Writer
}

var (
	errUsage     = errors.New("invalid arguments, run flashgen -h")
	errFetchData = errors.New("failed to fetch data")
)

func (a *App) Run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "topic":
		return a.submitTopic(ctx, strings.Join(rest, " "))
	case "topics":
		return a.listTopics(ctx, strings.Join(rest, " "))
	case "cards":
		id, err := topicArg(rest)
		if err != nil {
			return err
		}
		return a.browseCards(ctx, id)
	case "quiz":
		id, err := topicArg(rest)
		if err != nil {
			return err
		}
		return a.takeQuiz(ctx, id)
	case "recommend":
		items, err := a.api.GenerateRecommendations(ctx)
		if err != nil {
			return err
		}
		a.printRecommendations(items)
		return nil
	case "dashboard":
		return a.dashboard(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func topicArg(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, errUsage
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid topic id %q", args[0])
	}
	return id, nil
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) submitTopic(ctx context.Context, text string) error {
	var s study.Submission
	if err := s.Begin(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Generating flashcards...")

	id, cards, err := a.api.CreateTopic(ctx, text)
	if err != nil {
		s.Fail(err.Error())
		return errors.New(s.Message())
	}
	s.Succeed()

	fmt.Fprintf(a.out, "Topic %s created with %d flashcards.\n", id, len(cards))
	return nil
}

func (a *App) listTopics(ctx context.Context, query string) error {
	topics, err := a.api.Topics(ctx, query)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		fmt.Fprintln(a.out, "No topics yet.")
	}
	for _, t := range topics {
		fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.Text)
	}
	return nil
}

func (a *App) browseCards(ctx context.Context, topicID uuid.UUID) error {
	cards, err := a.api.Flashcards(ctx, topicID)
	if err != nil {
		return err
	}
	deck, err := study.NewDeck(cards)
	if err != nil {
		fmt.Fprintln(a.out, "No flashcards available for this topic.")
		return nil
	}

	for {
		card := deck.Current()
		i, n := deck.Position()
		if deck.Flipped() {
			fmt.Fprintf(a.out, "\nCard %d of %d\nAnswer: %s\n", i+1, n, card.Answer)
		} else {
			fmt.Fprintf(a.out, "\nCard %d of %d\nQuestion: %s\n", i+1, n, card.Question)
		}

		cmd, ok := a.prompt("[n/p/f/q] > ")
		if !ok {
			return nil
		}
		switch cmd {
		case "n":
			deck.Next()
		case "p":
			deck.Previous()
		case "f":
			deck.Flip()
		case "q":
			return nil
		}
	}
}

func (a *App) takeQuiz(ctx context.Context, topicID uuid.UUID) error {
	fmt.Fprintln(a.out, "Loading quiz...")
	_, questions, err := a.api.GenerateQuiz(ctx, topicID)
	if err != nil {
		return err
	}
	runner, err := study.NewQuizRunner(questions)
	if err != nil {
		return err
	}

	for !runner.Completed() {
		q, num := runner.Current()
		fmt.Fprintf(a.out, "\nQuestion %d of %d\n%s\n", num, runner.Total(), q.Question)
		for i, opt := range q.Options {
			fmt.Fprintf(a.out, "  %d) %s\n", i+1, opt)
		}

		answer, ok := a.prompt("answer > ")
		if !ok {
			return nil
		}
		var n int
		if _, err := fmt.Sscanf(answer, "%d", &n); err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintln(a.out, "Pick one of the numbers above.")
			continue
		}
		if err := runner.Select(q.Options[n-1]); err != nil {
			return err
		}
		if err := runner.Advance(); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "\nQuiz completed. Your score: %d out of %d\n", runner.Score(), runner.Total())
	if _, err := a.api.UpdateProgress(ctx, topicID, float64(runner.Score())); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (a *App) printRecommendations(items []model.RecommendationItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No recommendations yet.")
	}
	for _, r := range items {
		fmt.Fprintf(a.out, "- %s: %s\n", r.Title, r.Description)
	}
}

func (a *App) dashboard(ctx context.Context) error {
	d, err := a.api.Dashboard(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to fetch data")
		return fmt.Errorf("%w: %w", errFetchData, err)
	}

	titles := make(map[uuid.UUID]string, len(d.Topics))
	fmt.Fprintln(a.out, "Topics:")
	for _, t := range d.Topics {
		titles[t.ID] = t.Text
		fmt.Fprintf(a.out, "  %s  %s\n", t.ID, t.Text)
	}
	fmt.Fprintln(a.out, "Progress:")
	for _, p := range d.Progress {
		fmt.Fprintf(a.out, "  %s: %g\n", titles[p.TopicID], p.Score)
	}
	fmt.Fprintln(a.out, "Recommendations:")
	a.printRecommendations(d.Recommendations)
	return nil
}
