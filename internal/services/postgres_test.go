package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/h4ks-com/agri-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()

	natPort := nat.Port("5432/tcp")
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"POSTGRES_USER":     "ledger",
			"POSTGRES_PASSWORD": "ledger",
			"POSTGRES_DB":       "ledger",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, natPort)
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=ledger password=ledger dbname=ledger sslmode=disable", host, mappedPort.Port())
}

// Row locks on PostgreSQL must keep concurrent starts for one farmer from
// jointly exceeding the farmer's land.
func TestPostgres_ConcurrentStartsNeverOverAllocate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	env := setupTestEnv(t, withDSN(startPostgres(ctx, t)))

	farmers := []*models.Farmer{env.registerFarmer(t, "10"), env.registerFarmer(t, "7")}

	const workersPerFarmer = 12
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := map[uint]int{}

	for _, f := range farmers {
		for i := 0; i < workersPerFarmer; i++ {
			wg.Add(1)
			go func(f *models.Farmer) {
				defer wg.Done()
				_, err := env.crops.StartCycle(ctx, f.FarmerCode, StartCycleInput{CropName: "Wheat", AreaUsed: dec("2")})
				if err != nil {
					assert.ErrorIs(t, err, ErrInsufficientLand)
					return
				}
				mu.Lock()
				succeeded[f.ID]++
				mu.Unlock()
			}(f)
		}
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded[farmers[0].ID])
	assert.Equal(t, 3, succeeded[farmers[1].ID])

	for _, f := range farmers {
		free := env.freeLand(t, f)
		assert.False(t, free.IsNegative(), f.FarmerCode)
		assert.True(t, free.LessThan(decimal.NewFromInt(2)), f.FarmerCode)
	}
}
