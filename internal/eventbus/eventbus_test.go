package eventbus

import "testing"

func TestPublishSubscribe(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Publish("hello")
	select {
	case e := <-sub:
		if e != "hello" {
			t.Errorf("got %v", e)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Close()
	b.Publish("late")
	if _, ok := <-sub; ok {
		t.Error("subscriber channel should be closed and drained")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	b.Publish("gone")
	if _, ok := <-sub; ok {
		t.Error("unsubscribed channel should be closed")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	b := New()
	b.Subscribe() // never drained
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(i) // must not deadlock
	}
}
