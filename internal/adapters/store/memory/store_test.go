package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	value := []byte(`{"font":"mono","size":"lg"}`)
	s.Set("dailyWisdomAppearance", value)

	got, err := s.Get(ctx, "dailyWisdomAppearance")
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// Mutating either side must not leak into the store.
	value[0] = 'X'
	got[1] = 'Y'

	again, err := s.Get(ctx, "dailyWisdomAppearance")
	require.NoError(t, err)
	assert.Equal(t, `{"font":"mono","size":"lg"}`, string(again))
}

func TestStore_GetMissing(t *testing.T) {
	_, err := New().Get(context.Background(), "dailyQuoteOfToday")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_Delete(t *testing.T) {
	s := New()
	s.Set("k", []byte("v"))
	s.Delete("k")
	s.Delete("never-set")

	_, err := s.Get(context.Background(), "k")
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_ConcurrentReads(t *testing.T) {
	s := New()
	s.Set("k", []byte("v"))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Get(context.Background(), "k")
			assert.NoError(t, err)
			assert.Equal(t, "v", string(got))
		}()
	}
	wg.Wait()
}

func TestStore_Health(t *testing.T) {
	s := New()

	assert.Equal(t, "store:memory", s.Name())
	assert.NoError(t, s.Check(context.Background()))
	assert.NoError(t, s.Close())
}
