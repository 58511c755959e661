package weatherdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteolog.dev/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestNewClientCreatesSchema(t *testing.T) {
	client := newTestClient(t)

	count, err := client.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNewClientRejectsFileDBInTestEnv(t *testing.T) {
	_, err := NewClient(NewConfig("observations.db", appconf.Test, false))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTestDBOnDisk)
}

func TestMigrationIsIdempotent(t *testing.T) {
	client := newTestClient(t)

	// Running the DDL a second time against the same connection must not fail.
	err := performDatabaseMigration(context.Background(), client.DB)
	require.NoError(t, err)
}

func TestReset(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.InsertObservation(ctx, testObservation())
	require.NoError(t, err)

	require.NoError(t, client.Reset(ctx))

	count, err := client.CountObservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
