package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"task-management-api/config"
	"task-management-api/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	alice, err := repo.CreateUser(ctx, entities.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, entities.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{Name: "Mallory", Email: "alice@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, entities.ErrEmailTaken)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byEmail.ID)

	// Three teams for Alice, two for Bob. Listing is per-owner, newest first.
	var aliceTeams []*entities.Team
	for _, name := range []string{"Platform", "Infra", "Product"} {
		team, err := repo.CreateTeam(ctx, entities.Team{Name: name, UserID: alice.ID})
		require.NoError(t, err)
		aliceTeams = append(aliceTeams, team)
	}
	for _, name := range []string{"Sales", "Support"} {
		_, err := repo.CreateTeam(ctx, entities.Team{Name: name, UserID: bob.ID})
		require.NoError(t, err)
	}

	listed, err := repo.ListTeams(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "Product", listed[0].Name)
	require.Equal(t, "Infra", listed[1].Name)
	require.Equal(t, "Platform", listed[2].Name)

	// A foreign team and a missing team resolve to the same error.
	_, err = repo.ResolveTeam(ctx, bob.ID, aliceTeams[0].ID)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	_, err = repo.ResolveTeam(ctx, alice.ID, 99999)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	resolved, err := repo.ResolveTeam(ctx, alice.ID, aliceTeams[0].ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, resolved.UserID)

	project, err := repo.CreateProject(ctx, entities.Project{Name: "Billing", TeamID: aliceTeams[0].ID})
	require.NoError(t, err)
	otherProject, err := repo.CreateProject(ctx, entities.Project{Name: "Auth", TeamID: aliceTeams[0].ID})
	require.NoError(t, err)

	_, err = repo.ResolveProject(ctx, bob.ID, project.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	_, err = repo.ResolveProject(ctx, alice.ID, project.ID)
	require.NoError(t, err)

	projects, err := repo.ListProjects(ctx, aliceTeams[0].ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	task, err := repo.CreateTask(ctx, entities.Task{Name: "Invoice export", Status: entities.StatusPending, ProjectID: project.ID})
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, task.Status)

	// The task is reachable only through its own project id.
	_, err = repo.ResolveTask(ctx, alice.ID, otherProject.ID, task.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	_, err = repo.ResolveTask(ctx, bob.ID, project.ID, task.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	resolvedTask, err := repo.ResolveTask(ctx, alice.ID, project.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, resolvedTask.ID)

	// Partial updates: nil keeps the stored value.
	newName := "Invoice export v2"
	updated, err := repo.UpdateTask(ctx, task.ID, &newName, nil)
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, entities.StatusPending, updated.Status)

	done := entities.StatusCompleted
	updated, err = repo.UpdateTask(ctx, task.ID, nil, &done)
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, entities.StatusCompleted, updated.Status)

	renamed, err := repo.UpdateTeam(ctx, aliceTeams[0].ID, "Platform Core")
	require.NoError(t, err)
	require.Equal(t, "Platform Core", renamed.Name)

	tokenID, err := repo.CreateToken(ctx, entities.APIToken{UserID: alice.ID, Name: "auth_token", TokenHash: "deadbeef"})
	require.NoError(t, err)
	token, err := repo.GetToken(ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, token.UserID)
	require.Nil(t, token.LastUsedAt)

	require.NoError(t, repo.TouchToken(ctx, tokenID))
	token, err = repo.GetToken(ctx, tokenID)
	require.NoError(t, err)
	require.NotNil(t, token.LastUsedAt)

	require.NoError(t, repo.DeleteToken(ctx, tokenID))
	_, err = repo.GetToken(ctx, tokenID)
	require.ErrorIs(t, err, entities.ErrTokenNotFound)

	// Team deletion cascades through projects to tasks.
	require.NoError(t, repo.DeleteTeam(ctx, aliceTeams[0].ID))
	_, err = repo.ResolveProject(ctx, alice.ID, project.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	_, err = repo.ResolveTask(ctx, alice.ID, project.ID, task.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.ErrorIs(t, repo.DeleteTeam(ctx, aliceTeams[0].ID), entities.ErrTeamNotFound)

	listed, err = repo.ListTeams(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=task_management_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "task_management_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=task_management_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
