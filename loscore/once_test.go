package loscore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-loscore/loscore"
)

func TestOnceRunsOnce(t *testing.T) {
	calls := 0
	inc := loscore.Once(func(...any) int {
		calls++
		return calls
	})

	assert.False(t, inc.Done())
	inc.Call()
	inc.Call()
	inc.Call()
	assert.Equal(t, 1, calls)
	assert.True(t, inc.Done())
}

func TestOnceReturnsFirstResult(t *testing.T) {
	add := loscore.Once(func(args ...any) int {
		return args[0].(int) + args[1].(int)
	})

	assert.Equal(t, 3, add.Call(1, 2))
	assert.Equal(t, 3, add.Call(5, 5))
	assert.Equal(t, 3, add.Call())
}

func TestOnceFunc(t *testing.T) {
	calls := 0
	fn := loscore.Once(func(...any) string { calls++; return "ok" }).Func()
	assert.Equal(t, "ok", fn())
	assert.Equal(t, "ok", fn("ignored"))
	assert.Equal(t, 1, calls)
}

func TestOnceWrappersAreIndependent(t *testing.T) {
	calls := 0
	body := func(...any) int { calls++; return calls }
	a, b := loscore.Once(body), loscore.Once(body)
	assert.Equal(t, 1, a.Call())
	assert.Equal(t, 2, b.Call())
	assert.Equal(t, 1, a.Call())
}

func TestOnceMetrics(t *testing.T) {
	o := loscore.Once(func(...any) bool { return true })
	o.Call()
	o.Call()
	o.Call()
	assert.Equal(t, float64(3), o.Metrics().Counter(loscore.OnceCallsTotal).Value())
	assert.Equal(t, float64(1), o.Metrics().Counter(loscore.OnceExecutionsTotal).Value())
}

func TestOnceConcurrent(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	o := loscore.Once(func(...any) int {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return 7
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 7, o.Call())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}
