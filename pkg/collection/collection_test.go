package collection_test

import (
	"errors"
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/peoplemap/pkg/collection"
)

type item struct {
	ID    string
	Value int
}

var errNoID = errors.New("no id")

func idOf(it item) (string, error) {
	if it.ID == "" {
		return "", errNoID
	}
	return it.ID, nil
}

// checkInvariant asserts IDs and the keys of ByID are the same set without duplicates.
func checkInvariant(t *testing.T, s collection.State[item]) {
	t.Helper()
	keys := make([]string, 0, len(s.ByID))
	for k := range s.ByID {
		keys = append(keys, k)
	}
	ids := slices.Clone(s.IDs)
	sort.Strings(keys)
	sort.Strings(ids)
	require.Equal(t, keys, ids)
	require.Len(t, slices.Compact(ids), len(ids), "duplicate ids in %v", s.IDs)
}

func TestCreate(t *testing.T) {
	s := collection.New[item]()

	require.NoError(t, collection.Create(&s, item{"a", 1}, idOf))
	require.NoError(t, collection.Create(&s, item{"b", 2}, idOf))
	assert.Equal(t, []string{"a", "b"}, s.IDs)

	t.Run("re-create overwrites in place", func(t *testing.T) {
		require.NoError(t, collection.Create(&s, item{"a", 10}, idOf))
		assert.Equal(t, []string{"a", "b"}, s.IDs)
		got, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, 10, got.Value)
	})

	t.Run("identity error leaves state untouched", func(t *testing.T) {
		before := s.Clone()
		err := collection.Create(&s, item{"", 3}, idOf)
		assert.ErrorIs(t, err, errNoID)
		assert.Empty(t, cmp.Diff(before, s))
	})
}

func TestUpdate(t *testing.T) {
	s := collection.New[item]()
	require.NoError(t, collection.Create(&s, item{"a", 1}, idOf))
	require.NoError(t, collection.Create(&s, item{"b", 2}, idOf))

	require.NoError(t, collection.Update(&s, item{"a", 5}, idOf))
	assert.Equal(t, []string{"a", "b"}, s.IDs)
	assert.Equal(t, 5, s.ByID["a"].Value)

	require.NoError(t, collection.Update(&s, item{"zzz", 9}, idOf))
	assert.False(t, s.Has("zzz"), "update must never create")
	assert.Equal(t, 2, s.Len())
}

func TestDelete(t *testing.T) {
	s := collection.New[item]()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, collection.Create(&s, item{ID: id}, idOf))
	}

	collection.Delete(&s, "b")
	assert.Equal(t, []string{"a", "c"}, s.IDs)
	assert.False(t, s.Has("b"))

	collection.Delete(&s, "missing")
	assert.Equal(t, []string{"a", "c"}, s.IDs)
	checkInvariant(t, s)
}

func TestCreateDeleteRoundTrip(t *testing.T) {
	s := collection.New[item]()
	for _, id := range []string{"x", "y", "z"} {
		require.NoError(t, collection.Create(&s, item{ID: id}, idOf))
	}
	before := s.Clone()

	require.NoError(t, collection.Create(&s, item{"new", 1}, idOf))
	collection.Delete(&s, "new")

	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("round trip changed state (-before +after):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	t.Run("incremental merge keeps untouched entries", func(t *testing.T) {
		s := collection.New[item]()
		collection.Merge(&s, []item{{"x", 1}, {"y", 1}}, idOf)
		collection.Merge(&s, []item{{"x", 2}}, idOf)

		assert.Equal(t, []string{"x", "y"}, s.IDs)
		assert.Equal(t, 2, s.ByID["x"].Value)
		assert.Equal(t, 1, s.ByID["y"].Value)
	})

	t.Run("idempotent", func(t *testing.T) {
		batch := []item{{"a", 1}, {"b", 2}, {"c", 3}}
		once := collection.New[item]()
		collection.Merge(&once, batch, idOf)
		twice := once.Clone()
		collection.Merge(&twice, batch, idOf)
		assert.Empty(t, cmp.Diff(once, twice))
	})

	t.Run("successive batches equal their union with later values winning", func(t *testing.T) {
		b1 := []item{{"a", 1}, {"b", 1}, {"c", 1}}
		b2 := []item{{"c", 2}, {"d", 2}, {"a", 2}}

		seq := collection.New[item]()
		collection.Merge(&seq, b1, idOf)
		collection.Merge(&seq, b2, idOf)

		union := collection.New[item]()
		collection.Merge(&union, append(slices.Clone(b1), b2...), idOf)

		assert.Empty(t, cmp.Diff(seq, union))
		assert.Equal(t, []string{"a", "b", "c", "d"}, seq.IDs)
		assert.Equal(t, 2, seq.ByID["a"].Value)
	})

	t.Run("items without identity are skipped and reported", func(t *testing.T) {
		s := collection.New[item]()
		res := collection.Merge(&s, []item{{"a", 1}, {"", 2}, {"b", 3}}, idOf)

		assert.Equal(t, 2, res.Merged)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, 1, res.Skipped[0].Index)
		assert.ErrorIs(t, res.Skipped[0].Err, errNoID)
		assert.Equal(t, []string{"a", "b"}, s.IDs)
		assert.NotContains(t, s.ByID, "")
	})

	t.Run("zero value state is usable", func(t *testing.T) {
		var s collection.State[item]
		collection.Merge(&s, []item{{"a", 1}}, idOf)
		assert.Equal(t, []string{"a"}, s.IDs)
	})
}

func TestRandomOperationsPreserveInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d", "e"}
	s := collection.New[item]()

	for step := 0; step < 500; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(4) {
		case 0:
			require.NoError(t, collection.Create(&s, item{id, step}, idOf))
		case 1:
			require.NoError(t, collection.Update(&s, item{id, step}, idOf))
		case 2:
			collection.Delete(&s, id)
		case 3:
			collection.Merge(&s, []item{{id, step}, {ids[rng.Intn(len(ids))], step}}, idOf)
		}
		checkInvariant(t, s)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := collection.New[item]()
	require.NoError(t, collection.Create(&s, item{"a", 1}, idOf))

	c := s.Clone()
	require.NoError(t, collection.Create(&c, item{"b", 2}, idOf))
	collection.Delete(&c, "a")

	assert.Equal(t, []string{"a"}, s.IDs)
	assert.True(t, s.Has("a"))
	assert.Equal(t, []item{{"a", 1}}, s.List())
}
