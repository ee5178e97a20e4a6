package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

func TestSeasonRepository_ListByProgram(t *testing.T) {
	t.Parallel()

	repo := NewSeasonRepository([]season.Record{
		{Program: program.CodeGWBB, YearEnd: 2025},
		{Program: program.CodeLWBB, YearEnd: 2010},
		{Program: program.CodeGWBB, YearEnd: 2023},
	})
	repo.Put(context.Background(), season.Record{Program: program.CodeGWBB, YearEnd: 2024})

	got, err := repo.ListByProgram(context.Background(), program.Program{Code: program.CodeGWBB})
	if err != nil {
		t.Fatalf("ListByProgram: %v", err)
	}
	if len(got) != 3 || got[0].YearEnd != 2023 || got[1].YearEnd != 2024 || got[2].YearEnd != 2025 {
		t.Fatalf("unexpected records %+v", got)
	}

	got[0].YearEnd = 1
	again, _ := repo.ListByProgram(context.Background(), program.Program{Code: program.CodeGWBB})
	if again[0].YearEnd != 2023 {
		t.Fatalf("caller mutation leaked into repository")
	}
}

func TestIdentityRepository_SaveIsolatesCallers(t *testing.T) {
	t.Parallel()

	repo := NewIdentityRepository(identity.NewIndex(), identity.MergeTable{"A": "B"})
	idx, _ := repo.LoadIndex(context.Background())
	idx.ByAlias["X"] = "p_0000000001"

	fresh, _ := repo.LoadIndex(context.Background())
	if _, ok := fresh.ByAlias["X"]; ok {
		t.Fatalf("unsaved change visible")
	}

	if err := repo.SaveIndex(context.Background(), idx); err != nil {
		t.Fatalf("SaveIndex: %v", err)
	}
	saved, _ := repo.LoadIndex(context.Background())
	if saved.ByAlias["X"] != "p_0000000001" || repo.Saves() != 1 {
		t.Fatalf("save not applied: %+v saves=%d", saved.ByAlias, repo.Saves())
	}

	merges, _ := repo.LoadMerges(context.Background())
	if merges["A"] != "B" {
		t.Fatalf("unexpected merges %v", merges)
	}
}
