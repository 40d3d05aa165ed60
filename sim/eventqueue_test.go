package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventQueue", func() {
	var queue *EventQueueImpl

	BeforeEach(func() {
		queue = NewEventQueue()
	})

	It("should pop events in time order regardless of push order", func() {
		evt1 := MakeTickEvent(nil, 3)
		evt2 := MakeTickEvent(nil, 1)
		evt3 := MakeTickEvent(nil, 2)

		queue.Push(evt1)
		queue.Push(evt2)
		queue.Push(evt3)

		Expect(queue.Len()).To(Equal(3))
		Expect(queue.Peek().Time()).To(Equal(VTimeInSec(1)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(1)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(2)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(3)))
		Expect(queue.Len()).To(Equal(0))
	})
})
