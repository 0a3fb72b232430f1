package await_test

import (
	"testing"
	"time"

	"github.com/avwake/await"
)

// Two timers armed with identical deadlines must fire in the order they
// were registered.
func TestEqualDeadlinesFireInRegistrationOrder(t *testing.T) {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	var log []string

	tick := func(name string) await.Future[struct{}] {
		return await.Map(await.Sleep(time.Second), func(struct{}) struct{} {
			log = append(log, name)
			return struct{}{}
		})
	}

	root := await.Then(
		await.FutureFunc[[]*await.JoinHandle[struct{}]](func(w await.Waker) await.Poll[[]*await.JoinHandle[struct{}]] {
			e := w.Executor()
			a := await.Spawn(e, tick("a"))
			b := await.Spawn(e, tick("b"))
			return await.Ready([]*await.JoinHandle[struct{}]{a, b})
		}),
		func(hs []*await.JoinHandle[struct{}]) await.Future[[]await.Result[struct{}]] {
			return await.JoinAll[await.Result[struct{}]](hs[0], hs[1])
		},
	)

	await.Run(e, root)

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("timers fired in order %v, want [a b]", log)
	}
}

// Joining two sleeps must take about the longer duration, not the sum:
// both timers are registered in the same poll round and run down
// concurrently.
func TestJoinedSleepsRunConcurrently(t *testing.T) {
	const (
		short = 200 * time.Millisecond
		long  = 250 * time.Millisecond
	)

	root := await.Then(
		await.FutureFunc[*await.JoinHandle[struct{}]](func(w await.Waker) await.Poll[*await.JoinHandle[struct{}]] {
			return await.Ready(await.Spawn(w.Executor(), await.Sleep(long)))
		}),
		func(h *await.JoinHandle[struct{}]) await.Future[await.Pair[[]struct{}, await.Result[struct{}]]] {
			return await.Join2[[]struct{}, await.Result[struct{}]](
				await.JoinAll(await.Sleep(short), await.Sleep(long)),
				h,
			)
		},
	)

	start := time.Now()
	await.BlockOn(root)
	elapsed := time.Since(start)

	if elapsed < long {
		t.Errorf("completed in %v, before the longest sleep elapsed", elapsed)
	}
	if sum := short + long + long; elapsed >= sum {
		t.Errorf("completed in %v, sleeps appear to have run serially", elapsed)
	}
}

// A sleep still pending when its select loses must not wake anything
// later on.
func TestAbandonedSleepStaysSilent(t *testing.T) {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	sel := await.Select2(await.Sleep(time.Second), await.Sleep(time.Hour))

	v := await.Run(e, sel)
	if v.Index != 0 {
		t.Errorf("got index %d, want 0", v.Index)
	}

	// The executor is idle again; a fresh run must not observe the
	// abandoned timer.
	if v := await.Run(e, await.Map(await.Sleep(time.Second), func(struct{}) int { return 7 })); v != 7 {
		t.FailNow()
	}
}
