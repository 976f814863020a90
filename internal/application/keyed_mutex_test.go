package application

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	const goroutines = 16
	var counter int
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("bookable-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Fatalf("expected %d serialized increments, got %d", goroutines, counter)
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	unlockA := locks.lock("bookable-a")
	defer unlockA()

	// A different key must not block behind the held lock.
	done := make(chan struct{})
	go func() {
		unlockB := locks.lock("bookable-b")
		unlockB()
		close(done)
	}()
	<-done
}
