package scoring

import (
	"context"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/tizhi/internal/bank"
)

// filled returns an answer set where every question of the bank holds v.
func filled(sex bank.Sex, v int) AnswerSet {
	a := NewAnswerSet(bank.Effective(sex))
	a.Fill(bank.Effective(sex), v)
	return a
}

// partial returns an answer set where each category answers only the given prefix.
func partial(sex bank.Sex, prefixes map[bank.Category][]int) AnswerSet {
	a := NewAnswerSet(bank.Effective(sex))
	for c, vals := range prefixes {
		copy(a[c], vals)
	}
	return a
}

func TestCompute_AllNeutral(t *testing.T) {
	for _, sex := range []bank.Sex{bank.Female, bank.Male} {
		res := Compute(filled(sex, 3), sex)

		for _, c := range bank.AllCategories() {
			assert.Equal(t, 50.0, res.Scores.Of(c), "%s score", c)
		}
		assert.Equal(t, NotBalanced, res.Classification.Balance)
		assert.Equal(t, bank.SkewedCategories(), res.Classification.Affirmed)
		assert.Empty(t, res.Classification.Leaning)
		assert.Equal(t, bank.AllCategories(), res.Ranking, "ties keep catalog order")
	}
}

func TestCompute_PerfectlyBalanced(t *testing.T) {
	a := filled(bank.Female, 1)
	for i := range a[bank.Balanced] {
		a[bank.Balanced][i] = 5
	}

	res := Compute(a, bank.Female)

	assert.Equal(t, 100.0, res.Scores.Of(bank.Balanced))
	for _, c := range bank.SkewedCategories() {
		assert.Equal(t, 0.0, res.Scores.Of(c), "%s score", c)
	}
	assert.Equal(t, Balanced, res.Classification.Balance)
	assert.Empty(t, res.Classification.Affirmed)
	assert.Empty(t, res.Classification.Leaning)
	assert.Equal(t, bank.Balanced, res.Ranking[0])
}

func TestCompute_OneSkewedBreaksBalance(t *testing.T) {
	prefixes := map[bank.Category][]int{
		bank.Balanced:     {4, 4, 4, 3, 3}, // (18-5)/20 = 65
		bank.QiDeficiency: {3, 3, 3, 3, 2}, // (14-5)/20 = 45
	}
	for _, c := range bank.SkewedCategories()[1:] {
		prefixes[c] = []int{2, 2, 2, 2, 1} // (9-5)/20 = 20
	}

	res := Compute(partial(bank.Male, prefixes), bank.Male)

	require.Equal(t, 65.0, res.Scores.Of(bank.Balanced))
	require.Equal(t, 45.0, res.Scores.Of(bank.QiDeficiency))
	require.Equal(t, 20.0, res.Scores.Of(bank.DampHeat))
	assert.Equal(t, NotBalanced, res.Classification.Balance)
	assert.Equal(t, []bank.Category{bank.QiDeficiency}, res.Classification.Affirmed)
	assert.Empty(t, res.Classification.Leaning)
	assert.Equal(t, []bank.Category{bank.Balanced, bank.QiDeficiency}, res.Top(2))
}

func TestCompute_PartialCategory(t *testing.T) {
	a := partial(bank.Female, map[bank.Category][]int{
		bank.Balanced: {5, 5},
	})

	res := Compute(a, bank.Female)

	assert.Equal(t, 10, res.RawSums[bank.Balanced])
	assert.Equal(t, 2, res.Counts[bank.Balanced])
	assert.Equal(t, 100.0, res.Scores.Of(bank.Balanced))
}

func TestCompute_AllUnanswered(t *testing.T) {
	b := bank.Effective(bank.Male)
	res := Compute(NewAnswerSet(b), bank.Male)

	for _, c := range bank.AllCategories() {
		assert.Equal(t, 0.0, res.Scores.Of(c), "%s score", c)
		assert.Equal(t, b.Count(c), res.Counts[c], "%s falls back to nominal count", c)
	}
	assert.Equal(t, NotBalanced, res.Classification.Balance)
	assert.Empty(t, res.Classification.Affirmed)
	assert.Empty(t, res.Classification.Leaning)
}

func TestCompute_NilAnswerSet(t *testing.T) {
	res := Compute(nil, bank.Female)
	assert.Len(t, res.Ranking, bank.CategoryCount)
	assert.Equal(t, Scores{}, res.Scores)
}

func TestCompute_TruncatesExcessAnswers(t *testing.T) {
	a := filled(bank.Female, 1)
	// Seven damp-heat answers against a six-question category: the
	// trailing 5 must be ignored.
	a[bank.DampHeat] = []int{1, 1, 1, 1, 1, 1, 5}

	res := Compute(a, bank.Female)

	assert.Equal(t, 6, res.Counts[bank.DampHeat])
	assert.Equal(t, 0.0, res.Scores.Of(bank.DampHeat))
}

func TestCompute_OutOfRangeValuesAreUnanswered(t *testing.T) {
	a := partial(bank.Male, map[bank.Category][]int{
		bank.YinDeficiency: {5, 9, -2, 5},
	})

	res := Compute(a, bank.Male)

	assert.Equal(t, 10, res.RawSums[bank.YinDeficiency])
	assert.Equal(t, 2, res.Counts[bank.YinDeficiency])
	assert.Equal(t, 100.0, res.Scores.Of(bank.YinDeficiency))
}

func TestCompute_SexOnlyChangesGenderedItem(t *testing.T) {
	a := filled(bank.Female, 2)
	female := Compute(a, bank.Female)
	male := Compute(a, bank.Male)
	if diff := cmp.Diff(female.Scores, male.Scores); diff != "" {
		t.Errorf("scores differ between sexes for identical answers (-female +male):\n%s", diff)
	}
}

func TestCompute_ZeroSexScoresFullBank(t *testing.T) {
	var sex bank.Sex
	res := Compute(filled(bank.Female, 5), sex)

	assert.Equal(t, bank.Female, res.Sex)
	assert.Equal(t, 6, res.Counts[bank.DampHeat], "sixth damp-heat answer must count")
	assert.Equal(t, 30, res.RawSums[bank.DampHeat])
	total := 0
	for _, n := range res.Counts {
		total += n
	}
	assert.Equal(t, 66, total)
}

func TestRank_RoundTrip(t *testing.T) {
	a := partial(bank.Female, map[bank.Category][]int{
		bank.Balanced:         {3, 3, 3},
		bank.YangDeficiency:   {5, 4, 4},
		bank.DampHeat:         {2, 2, 3, 1},
		bank.BloodStasis:      {4, 4, 4, 4},
		bank.InheritedSpecial: {3, 3, 3},
	})
	res := Compute(a, bank.Female)

	independent := bank.AllCategories()
	sort.SliceStable(independent, func(i, j int) bool {
		return res.Scores[independent[i]] > res.Scores[independent[j]]
	})

	if diff := cmp.Diff(independent, res.Ranking); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_Permutation(t *testing.T) {
	s := Scores{10, 90, 10, 50, 0, 90, 30, 30, 70}
	got := Rank(s)

	want := []bank.Category{
		bank.QiDeficiency, bank.DampHeat,    // 90, tie in catalog order
		bank.InheritedSpecial,               // 70
		bank.YinDeficiency,                  // 50
		bank.BloodStasis, bank.QiStagnation, // 30
		bank.Balanced, bank.YangDeficiency,  // 10
		bank.PhlegmDampness,                 // 0
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if diff := cmp.Diff(bank.AllCategories(), sorted); diff != "" {
		t.Errorf("ranking is not a permutation:\n%s", diff)
	}
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	defer goleak.VerifyNone(t)

	want := Compute(filled(bank.Male, 4), bank.Male)

	g, _ := errgroup.WithContext(context.Background())
	results := make([]Result, 32)
	for i := range results {
		g.Go(func() error {
			results[i] = Compute(filled(bank.Male, 4), bank.Male)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(bank.Sex{})); diff != "" {
			t.Errorf("result %d differs (-want +got):\n%s", i, diff)
		}
	}
}
