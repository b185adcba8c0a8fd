//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/flashgen-server/internal/model"
	repo "github.com/dtroode/flashgen-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "flashgen_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/flashgen_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	require.NoError(t, conn.Ping(ctx))

	topics := repo.NewTopicRepository(conn)
	cards := repo.NewFlashcardRepository(conn)
	quizzes := repo.NewQuizRepository(conn)
	recs := repo.NewRecommendationRepository(conn)

	owner := uuid.New()
	topic, err := topics.Create(ctx, model.Topic{UserID: owner, Text: "Photosynthesis"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, topic.ID)

	t.Run("topic_repository", func(t *testing.T) {
		got, err := topics.GetByID(ctx, owner, topic.ID)
		require.NoError(t, err)
		require.Equal(t, "Photosynthesis", got.Text)

		_, err = topics.GetByID(ctx, uuid.New(), topic.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := topics.ListByUser(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("flashcard_repository", func(t *testing.T) {
		drafts := []model.FlashcardDraft{
			{Question: "What pigment absorbs light?", Answer: "Chlorophyll"},
			{Question: "Where does it happen?", Answer: "Chloroplasts"},
			{Question: "Main sugar produced?", Answer: "Glucose"},
			{Question: "Gas released?", Answer: "Oxygen"},
			{Question: "Gas consumed?", Answer: "Carbon dioxide"},
		}
		saved, err := cards.BulkCreate(ctx, topic.ID, drafts)
		require.NoError(t, err)
		require.Len(t, saved, 5)
		for i, c := range saved {
			require.Equal(t, i, c.Position)
			require.Equal(t, drafts[i].Question, c.Question)
		}

		list, err := cards.ListByTopic(ctx, topic.ID)
		require.NoError(t, err)
		require.Len(t, list, 5)
		require.Equal(t, "Chlorophyll", list[0].Answer)
	})

	t.Run("quiz_repository", func(t *testing.T) {
		questions := []model.QuizQuestion{{
			Question:      "What pigment absorbs light?",
			Options:       []string{"Chlorophyll", "Keratin", "Melanin", "Hemoglobin"},
			CorrectAnswer: "Chlorophyll",
		}}
		first, err := quizzes.Create(ctx, model.Quiz{UserID: owner, TopicID: topic.ID, Questions: questions})
		require.NoError(t, err)
		second, err := quizzes.Create(ctx, model.Quiz{UserID: owner, TopicID: topic.ID, Questions: questions})
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		list, err := quizzes.ListByTopic(ctx, owner, topic.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, questions, list[0].Questions)
	})

	t.Run("recommendation_repository", func(t *testing.T) {
		_, err := recs.LatestByUser(ctx, owner)
		require.ErrorIs(t, err, model.ErrNotFound)

		items := []model.RecommendationItem{{Title: "Review", Description: "Repeat the light reactions"}}
		saved, err := recs.Create(ctx, model.Recommendation{UserID: owner, Items: items})
		require.NoError(t, err)

		latest, err := recs.LatestByUser(ctx, owner)
		require.NoError(t, err)
		require.Equal(t, saved.ID, latest.ID)
		require.Equal(t, items, latest.Items)
	})
}

func TestProgressRepository_UpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)

	topics := repo.NewTopicRepository(conn)
	progress := repo.NewProgressRepository(conn)

	owner := uuid.New()
	topic, err := topics.Create(ctx, model.Topic{UserID: owner, Text: "Upserts"})
	require.NoError(t, err)

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	_, err = progress.Upsert(ctx, model.Progress{UserID: owner, TopicID: topic.ID, Score: 2, UpdatedAt: t1})
	require.NoError(t, err)
	saved, err := progress.Upsert(ctx, model.Progress{UserID: owner, TopicID: topic.ID, Score: 4, UpdatedAt: t2})
	require.NoError(t, err)
	require.Equal(t, float64(4), saved.Score)

	list, err := progress.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, float64(4), list[0].Score)
	require.True(t, list[0].UpdatedAt.Equal(t2))
}
