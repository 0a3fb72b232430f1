package await_test

import (
	"fmt"
	"time"

	"github.com/avwake/await"
)

func Example() {
	// Create an executor.
	// A virtual clock makes the timers below fire instantly, which keeps
	// this example fast and deterministic; drop the SetClock call to run
	// against the system clock.
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	greeting := await.Map(await.Sleep(time.Second), func(struct{}) string {
		return "hello"
	})

	fmt.Println("Awaiting future...")
	fmt.Println(await.Run(e, greeting))

	// Output:
	// Awaiting future...
	// hello
}

// This example demonstrates how to run a future in the background and
// await its outcome later.
func ExampleSpawn() {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	sayHi := await.Map(await.Sleep(time.Second), func(struct{}) struct{} {
		fmt.Println("Hi")
		return struct{}{}
	})

	main := await.Then(
		await.FutureFunc[*await.JoinHandle[struct{}]](func(w await.Waker) await.Poll[*await.JoinHandle[struct{}]] {
			h := await.Spawn(w.Executor(), sayHi)
			fmt.Println("Running future as a background task")
			return await.Ready(h)
		}),
		func(h *await.JoinHandle[struct{}]) await.Future[await.Result[struct{}]] {
			fmt.Println("Waiting for the task to finish...")
			return h
		},
	)

	await.Run(e, main)
	fmt.Println("Done!")

	// Output:
	// Running future as a background task
	// Waiting for the task to finish...
	// Hi
	// Done!
}

// This example demonstrates awaiting all of several futures.
func ExampleJoinAll() {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	delayed := func(v int, d time.Duration) await.Future[int] {
		return await.Map(await.Sleep(d), func(struct{}) int { return v })
	}

	vs := await.Run(e, await.JoinAll(
		delayed(1, 3*time.Second),
		delayed(2, time.Second),
		delayed(3, 2*time.Second),
	))

	fmt.Println(vs)

	// Output:
	// [1 2 3]
}

// This example demonstrates awaiting whichever future completes first.
// The loser's timer is canceled with it.
func ExampleSelect2() {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	v := await.Run(e, await.Select2(
		await.Map(await.Sleep(time.Second), func(struct{}) string { return "first" }),
		await.Map(await.Sleep(2*time.Second), func(struct{}) string { return "second" }),
	))

	switch v.Index {
	case 0:
		fmt.Println("Future 1 finished first:", v.First)
	case 1:
		fmt.Println("Future 2 finished first:", v.Second)
	}

	// Output:
	// Future 1 finished first: first
}
