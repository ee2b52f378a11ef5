package state

import (
	"sync"
	"testing"
)

type draft struct {
	Name string
}

func TestStoreDefaultsToIdle(t *testing.T) {
	s := NewStore[draft]()
	if got := s.GetState(1); got != StateIdle {
		t.Fatalf("GetState = %q, want %q", got, StateIdle)
	}
	if s.InProgress(1) {
		t.Fatal("InProgress should be false for unknown user")
	}
	sess := s.Get(1)
	if sess.Data.Name != "" {
		t.Fatalf("zero session data = %+v", sess.Data)
	}
}

func TestStoreSetGetClear(t *testing.T) {
	s := NewStore[draft]()
	s.Set(7, State("waiting_for_name"), draft{Name: "Jo"})

	if !s.InProgress(7) {
		t.Fatal("InProgress should be true")
	}
	sess := s.Get(7)
	if sess.State != State("waiting_for_name") || sess.Data.Name != "Jo" {
		t.Fatalf("session = %+v", sess)
	}

	s.SetState(7, State("waiting_for_phone"))
	sess = s.Get(7)
	if sess.State != State("waiting_for_phone") || sess.Data.Name != "Jo" {
		t.Fatalf("SetState lost data: %+v", sess)
	}

	s.Clear(7)
	if s.InProgress(7) {
		t.Fatal("InProgress should be false after Clear")
	}
}

func TestStoreUsersIndependent(t *testing.T) {
	s := NewStore[draft]()
	s.Set(1, State("a"), draft{Name: "one"})
	s.Set(2, State("b"), draft{Name: "two"})
	s.Clear(1)
	if s.InProgress(1) {
		t.Fatal("user 1 should be cleared")
	}
	if sess := s.Get(2); sess.Data.Name != "two" {
		t.Fatalf("user 2 session lost: %+v", sess)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore[draft]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(id, State("x"), draft{Name: "n"})
				_ = s.Get(id)
				s.Clear(id)
			}
		}(int64(i))
	}
	wg.Wait()
}
