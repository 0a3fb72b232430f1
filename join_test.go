package await_test

import (
	"strings"
	"testing"
	"time"

	"github.com/avwake/await"
)

func TestJoinAll(t *testing.T) {
	t.Run("ImmediatelyReady", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 5, 16} {
			fs := make([]await.Future[int], n)
			for i := range fs {
				fs[i] = await.Resolved(i)
			}

			vs := await.BlockOn(await.JoinAll(fs...))

			if len(vs) != n {
				t.Fatalf("n=%d: got %d results", n, len(vs))
			}
			for i, v := range vs {
				if v != i {
					t.Errorf("n=%d: results out of argument order: %v", n, vs)
					break
				}
			}
		}
	})
	t.Run("MixedReadiness", func(t *testing.T) {
		e := await.NewExecutor()
		e.SetClock(new(await.VirtualClock))

		vs := await.Run(e, await.JoinAll(
			await.Map(await.Sleep(2*time.Second), func(struct{}) int { return 1 }),
			await.Resolved(2),
			await.Map(await.Sleep(time.Second), func(struct{}) int { return 3 }),
		))

		if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
			t.Errorf("got %v, want [1 2 3]", vs)
		}
	})
}

func TestJoin234(t *testing.T) {
	p := await.BlockOn(await.Join2(await.Resolved(1), await.Resolved("two")))
	if p.First != 1 || p.Second != "two" {
		t.Errorf("Join2: got %+v", p)
	}

	tr := await.BlockOn(await.Join3(await.Resolved(1), await.Resolved("two"), await.Resolved(3.0)))
	if tr.First != 1 || tr.Second != "two" || tr.Third != 3.0 {
		t.Errorf("Join3: got %+v", tr)
	}

	q := await.BlockOn(await.Join4(await.Resolved(1), await.Resolved("two"), await.Resolved(3.0), await.Resolved(true)))
	if q.First != 1 || q.Second != "two" || q.Third != 3.0 || !q.Fourth {
		t.Errorf("Join4: got %+v", q)
	}
}

// A panic in a join child propagates to the join's caller right away;
// siblings after it in the same round are never polled.
func TestJoinPanicIsFailFast(t *testing.T) {
	var siblingPolls int

	boom := await.FutureFunc[int](func(await.Waker) await.Poll[int] {
		panic("boom")
	})
	sibling := await.FutureFunc[int](func(await.Waker) await.Poll[int] {
		siblingPolls++
		return await.Ready(1)
	})

	defer func() {
		pe, ok := recover().(*await.PanicError)
		if !ok {
			t.Fatal("join did not propagate the panic")
		}
		if pe.Value() != any("boom") {
			t.Errorf("unexpected panic value: %v", pe.Value())
		}
		if siblingPolls != 0 {
			t.Errorf("sibling was polled %d times past the panicking round", siblingPolls)
		}
	}()

	await.BlockOn(await.JoinAll[int](boom, sibling))
}

// Join must not re-poll a child that completed in an earlier round.
func TestJoinDoesNotRepollReadyChildren(t *testing.T) {
	e := await.NewExecutor()
	e.SetClock(new(await.VirtualClock))

	var polls []string

	quick := await.FutureFunc[int](func(await.Waker) await.Poll[int] {
		polls = append(polls, "quick")
		return await.Ready(1)
	})
	slow := await.Map(await.Sleep(time.Second), func(struct{}) int {
		return 2
	})

	p := await.Run(e, await.Join2[int, int](quick, slow))

	if p.First != 1 || p.Second != 2 {
		t.Errorf("got %+v", p)
	}
	if got := strings.Join(polls, " "); got != "quick" {
		t.Errorf("quick child polled again after completion: %q", got)
	}
}
