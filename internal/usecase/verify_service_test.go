package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/infrastructure/repository/memory"
	identitymock "github.com/riskibarqy/hoops-almanac/internal/mocks/domain/identity"
	sourcemock "github.com/riskibarqy/hoops-almanac/internal/mocks/domain/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyService_Orphans_ReportsUnknownCanonicalIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scanner := sourcemock.NewScanner(t)
	scanner.
		On("Scan", ctx, identity.CanonicalRefPattern).
		Return([]string{pidAnn, "p_0000000099", pidBeth, "p_0000000099"}, nil).
		Once()

	service := NewVerifyService(memory.NewIdentityRepository(testIndex(), nil), scanner)
	report, err := service.Orphans(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"p_0000000099"}, report.Orphans)
	assert.Equal(t, 4, report.Referenced)
	assert.Equal(t, 2, report.People)
	assert.Empty(t, report.IndexProblem)
	assert.False(t, report.OK())
}

func TestVerifyService_Orphans_FlagsCounterBehindUsedIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	idx := testIndex()
	idx.Meta.NextPID = 1

	scanner := sourcemock.NewScanner(t)
	scanner.On("Scan", ctx, identity.CanonicalRefPattern).Return([]string{pidAnn}, nil).Once()

	report, err := NewVerifyService(memory.NewIdentityRepository(idx, nil), scanner).Orphans(ctx)
	require.NoError(t, err)

	assert.Empty(t, report.Orphans)
	assert.Contains(t, report.IndexProblem, "nextPid=1")
	assert.False(t, report.OK())
}

func TestVerifyService_Orphans_ScanFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("permission denied")
	scanner := sourcemock.NewScanner(t)
	scanner.On("Scan", ctx, identity.CanonicalRefPattern).Return(nil, boom).Once()

	_, err := NewVerifyService(memory.NewIdentityRepository(testIndex(), nil), scanner).Orphans(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestVerifyService_Orphans_StoreReadFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scanner := sourcemock.NewScanner(t)
	scanner.On("Scan", ctx, identity.CanonicalRefPattern).Return([]string{}, nil).Once()

	repo := identitymock.NewRepository(t)
	repo.On("LoadIndex", ctx).Return(identity.Index{}, errors.New("permission denied")).Once()

	_, err := NewVerifyService(repo, scanner).Orphans(ctx)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
