package health_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/advisor/pkg/health"
	"github.com/artem13815/advisor/pkg/health/checkers"
)

type fixedLen int

func (n fixedLen) Len() int { return int(n) }

func TestReady(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, health.NewService(checkers.NewProgramsChecker(fixedLen(3))).Ready(ctx))

	err := health.NewService(nil, checkers.NewProgramsChecker(fixedLen(0))).Ready(ctx)
	assert.EqualError(t, err, "programs: no programs loaded")

	assert.NoError(t, health.NewService().Ready(ctx))
}

func TestReport_RunsEveryChecker(t *testing.T) {
	svc := health.NewService(
		checkers.NewProgramsChecker(fixedLen(0)),
		checkers.NewProgramsChecker(fixedLen(2)),
	)

	statuses, err := svc.Report(context.Background())
	assert.EqualError(t, err, "programs: no programs loaded")
	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].OK)
	assert.Equal(t, "no programs loaded", statuses[0].Error)
	assert.True(t, statuses[1].OK)
	assert.Empty(t, statuses[1].Error)
}
