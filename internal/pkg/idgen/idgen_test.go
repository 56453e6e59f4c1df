package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("row")
	assert.Equal(t, "row_1", gen.Generate())
	assert.Equal(t, "row_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequential_Concurrent(t *testing.T) {
	gen := idgen.NewSequential("row")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestUUID(t *testing.T) {
	gen := idgen.UUID("prof")
	first := gen.Generate()
	assert.True(t, strings.HasPrefix(first, "prof_"))
	assert.NotEqual(t, first, gen.Generate())
	assert.Len(t, idgen.UUID("").Generate(), 36)
}

func TestFunc(t *testing.T) {
	var gen idgen.Generator = idgen.Func(func() string { return "fixed" })
	assert.Equal(t, "fixed", gen.Generate())
}
