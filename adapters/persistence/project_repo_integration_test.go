package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"portfolio/internal/domain/blog"
	"portfolio/internal/domain/experience"
	"portfolio/internal/domain/project"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer

	projectRepo    project.Repository
	experienceRepo experience.Repository
	blogRepo       blog.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewNop()
	s.projectRepo = NewPostgresProjectRepo(pool, testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(pool, testLogger)
	s.blogRepo = NewPostgresBlogRepo(pool, testLogger)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func newTestProject(title string) *project.Project {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &project.Project{
		ID:              uuid.New(),
		Title:           title,
		Description:     "short",
		FullDescription: "long",
		Technologies:    []string{"Go", "PostgreSQL"},
		GithubURL:       "https://github.com/me/" + title,
		LiveURL:         "https://example.com",
		Category:        "Backend",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *RepoIntegrationTestSuite) Test_Project_Save_And_FindByID() {
	ctx := context.Background()
	p := newTestProject("roundtrip")

	s.NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.Equal(p.Title, found.Title)
	s.Equal(p.Technologies, found.Technologies)
	s.Equal(p.Category, found.Category)
}

func (s *RepoIntegrationTestSuite) Test_Project_Save_RejectsEmptyTechnologies() {
	ctx := context.Background()
	p := newTestProject("no-tech")
	p.Technologies = []string{}

	err := s.projectRepo.Save(ctx, p)
	s.Error(err)
	s.ErrorIs(err, apperror.ErrInvalidInput, "check constraint must surface as invalid input")
}

func (s *RepoIntegrationTestSuite) Test_Project_Delete_ReturnsRow() {
	ctx := context.Background()
	p := newTestProject("to-delete")
	s.NoError(s.projectRepo.Save(ctx, p))

	deleted, err := s.projectRepo.Delete(ctx, p.ID)
	s.NoError(err)
	s.Equal(p.ID, deleted.ID)

	_, err = s.projectRepo.FindByID(ctx, p.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Project_Delete_Nonexistent() {
	_, err := s.projectRepo.Delete(context.Background(), uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Experience_EndDateNullRoundtrip() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	e := &experience.Experience{
		ID:           uuid.New(),
		Title:        "Engineer",
		Company:      "Acme",
		Duration:     "2023 - Present",
		Location:     "Remote",
		Description:  "work",
		Technologies: []string{"Go"},
		Current:      true,
		StartDate:    now.AddDate(-1, 0, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.NoError(s.experienceRepo.Save(ctx, e))

	found, err := s.experienceRepo.FindByID(ctx, e.ID)
	s.NoError(err)
	s.True(found.Current)
	s.Nil(found.EndDate)

	// Flip to a past position: end_date gets written, current cleared.
	end := now
	found.Current = false
	found.EndDate = &end
	s.NoError(s.experienceRepo.Update(ctx, found))

	found, err = s.experienceRepo.FindByID(ctx, e.ID)
	s.NoError(err)
	s.False(found.Current)
	s.NotNil(found.EndDate)
}

func (s *RepoIntegrationTestSuite) Test_Blog_SlugUnique() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	mk := func() *blog.Blog {
		return &blog.Blog{
			ID:          uuid.New(),
			Title:       "Same Title",
			Slug:        "same-title",
			Excerpt:     "e",
			Content:     "c",
			Author:      "Me",
			AuthorRole:  "Owner",
			Category:    "Engineering",
			Tags:        []string{"go"},
			PublishedAt: now,
			ReadingTime: 5,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	s.NoError(s.blogRepo.Save(ctx, mk()))

	err := s.blogRepo.Save(ctx, mk())
	s.Error(err)
	s.ErrorIs(err, apperror.ErrConflict)

	var appErr *apperror.AppError
	s.True(errors.As(err, &appErr))
	s.Equal("Blog with this slug already exists", appErr.Message)
}

func (s *RepoIntegrationTestSuite) Test_Blog_FindBySlug() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	b := &blog.Blog{
		ID:          uuid.New(),
		Title:       "Find Me",
		Slug:        "find-me",
		Excerpt:     "e",
		Content:     "c",
		Author:      "Me",
		AuthorRole:  "Owner",
		Category:    "Engineering",
		Tags:        []string{"go", "sql"},
		PublishedAt: now,
		ReadingTime: 7,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.NoError(s.blogRepo.Save(ctx, b))

	found, err := s.blogRepo.FindBySlug(ctx, "find-me")
	s.NoError(err)
	s.Equal(b.ID, found.ID)
	s.Equal(b.Tags, found.Tags)
}
