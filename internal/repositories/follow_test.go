package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFollowPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS follows (
		follower_id UUID NOT NULL,
		followee_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (follower_id, followee_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestFollowWriteRepository_Save_Idempotent(t *testing.T) {
	db, teardown := setupFollowPostgresContainer(t)
	defer teardown()

	repo := NewFollowWriteRepository(db)
	ctx := context.Background()

	follower := uuid.New()
	followee := uuid.New()

	// following twice leaves exactly one edge
	assert.NoError(t, repo.Save(ctx, follower, followee))
	assert.NoError(t, repo.Save(ctx, follower, followee))

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM follows WHERE follower_id=$1 AND followee_id=$2", follower, followee)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFollowWriteRepository_Delete(t *testing.T) {
	db, teardown := setupFollowPostgresContainer(t)
	defer teardown()

	repo := NewFollowWriteRepository(db)
	ctx := context.Background()

	follower := uuid.New()
	followee := uuid.New()

	assert.NoError(t, repo.Save(ctx, follower, followee))
	assert.NoError(t, repo.Delete(ctx, follower, followee))

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM follows WHERE follower_id=$1", follower)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	// deleting an absent edge is a no-op
	assert.NoError(t, repo.Delete(ctx, follower, followee))
}

func TestFollowReadRepository_FolloweeIDs(t *testing.T) {
	db, teardown := setupFollowPostgresContainer(t)
	defer teardown()

	writeRepo := NewFollowWriteRepository(db)
	readRepo := NewFollowReadRepository(db)
	ctx := context.Background()

	user := uuid.New()
	followed1 := uuid.New()
	followed2 := uuid.New()

	assert.NoError(t, writeRepo.Save(ctx, user, followed1))
	assert.NoError(t, writeRepo.Save(ctx, user, followed2))

	ids, err := readRepo.FolloweeIDs(ctx, user)
	assert.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.Contains(t, ids, followed1)
	assert.Contains(t, ids, followed2)
	assert.Contains(t, ids, user) // the user always sees itself
}

func TestFollowReadRepository_FolloweeIDs_NoFollows(t *testing.T) {
	db, teardown := setupFollowPostgresContainer(t)
	defer teardown()

	readRepo := NewFollowReadRepository(db)
	ctx := context.Background()

	user := uuid.New()

	ids, err := readRepo.FolloweeIDs(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{user}, ids)
}

func TestFollowReadRepository_Exists(t *testing.T) {
	db, teardown := setupFollowPostgresContainer(t)
	defer teardown()

	writeRepo := NewFollowWriteRepository(db)
	readRepo := NewFollowReadRepository(db)
	ctx := context.Background()

	follower := uuid.New()
	followee := uuid.New()

	exists, err := readRepo.Exists(ctx, follower, followee)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, writeRepo.Save(ctx, follower, followee))

	exists, err = readRepo.Exists(ctx, follower, followee)
	assert.NoError(t, err)
	assert.True(t, exists)
}
