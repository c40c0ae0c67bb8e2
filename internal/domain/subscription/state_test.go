package subscription

import "testing"

func TestTransition(t *testing.T) {
	cases := []struct {
		current State
		event   EventType
		want    State
		ok      bool
	}{
		{StatePendingMandate, EventMandateAuthorized, StateTrial, true},
		{StateTrial, EventCharged, StateActive, true},
		{StateActive, EventCharged, StateActive, true},
		{StateTrial, EventChargeFailed, StateFailed, true},
		{StateActive, EventChargeFailed, StateFailed, true},
		{StatePendingMandate, EventCancelled, StateCancelled, true},
		{StateTrial, EventCancelled, StateCancelled, true},
		{StateActive, EventCancelled, StateCancelled, true},
		{StateFailed, EventCancelled, StateCancelled, true},

		// combinações inválidas: estado não muda
		{StateTrial, EventMandateAuthorized, StateTrial, false},
		{StateActive, EventMandateAuthorized, StateActive, false},
		{StatePendingMandate, EventCharged, StatePendingMandate, false},
		{StateFailed, EventCharged, StateFailed, false},
		{StateCancelled, EventCharged, StateCancelled, false},
		{StatePendingMandate, EventChargeFailed, StatePendingMandate, false},
		{StateCancelled, EventCancelled, StateCancelled, false},
		{StateTrial, EventType("subscription.unknown"), StateTrial, false},
	}

	for _, tc := range cases {
		got, ok := Transition(tc.current, tc.event)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Transition(%s, %s) = (%s, %v), want (%s, %v)",
				tc.current, tc.event, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanWrite(t *testing.T) {
	writable := map[State]bool{
		StatePendingMandate: false,
		StateTrial:          true,
		StateActive:         true,
		StateFailed:         false,
		StateCancelled:      false,
	}

	for state, want := range writable {
		if got := CanWrite(state); got != want {
			t.Fatalf("CanWrite(%s) = %v, want %v", state, got, want)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []State{StateFailed, StateCancelled} {
		if !Terminal(s) {
			t.Fatalf("Terminal(%s) = false", s)
		}
	}
	for _, s := range []State{StatePendingMandate, StateTrial, StateActive} {
		if Terminal(s) {
			t.Fatalf("Terminal(%s) = true", s)
		}
	}
}
