package snowflake_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/alasdairpan/snowflake"
)

func Example() {
	gen, err := snowflake.New(1)
	if err != nil {
		panic(err)
	}

	id1, _ := gen.Generate()
	id2, _ := gen.Generate()

	fmt.Println(id2 > id1)
	// Output: true
}

func Example_withConfig() {
	gen, err := snowflake.NewWithConfig(snowflake.Config{
		WorkerID:   7,
		WorkerBits: 4,
		Epoch:      time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}

	id, _ := gen.Generate()
	fmt.Println(gen.Decompose(id).WorkerID)
	// Output: 7
}

func ExampleBuilder() {
	gen, err := snowflake.NewBuilder().
		WorkerID(3).
		Layout(snowflake.Layout53).
		Timeout(snowflake.NoTimeout).
		Build()
	if err != nil {
		panic(err)
	}

	id, _ := gen.Generate()
	fmt.Println(gen.Decompose(id).WorkerID)
	// Output: 3
}

// A Generator is single-writer; goroutines sharing one worker identity must
// serialize their calls.
func ExampleGenerator_Generate() {
	gen, err := snowflake.New(1)
	if err != nil {
		panic(err)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = make(chan snowflake.ID, 4)
	)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			id, err := gen.Generate()
			mu.Unlock()
			if err == nil {
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[snowflake.ID]bool)
	for id := range ids {
		seen[id] = true
	}
	fmt.Println(len(seen))
	// Output: 4
}
