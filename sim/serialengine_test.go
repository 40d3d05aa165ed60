package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run events in time order", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInSec(4.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler1).AnyTimes()
		evt1.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler2).AnyTimes()
		evt2.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInSec(3.0)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler1).AnyTimes()
		evt3.EXPECT().IsSecondary().Return(false).AnyTimes()

		handleEvt2 := handler2.EXPECT().Handle(evt2).Do(func(e Event) {
			engine.Schedule(evt3)
		})
		handleEvt3 := handler1.EXPECT().
			Handle(evt3).Do(func(e Event) {}).After(handleEvt2)
		handler1.EXPECT().
			Handle(evt1).Do(func(e Event) {}).After(handleEvt3)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		_ = engine.Run()

		Expect(engine.CurrentTime()).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("should handle secondary events after same-time primary events",
		func() {
			handler1 := NewMockHandler(mockCtrl)
			handler2 := NewMockHandler(mockCtrl)
			evt1 := NewMockEvent(mockCtrl)
			evt2 := NewMockEvent(mockCtrl)

			evt1.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
			evt1.EXPECT().Handler().Return(handler1).AnyTimes()
			evt1.EXPECT().IsSecondary().Return(true).AnyTimes()
			evt2.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
			evt2.EXPECT().Handler().Return(handler2).AnyTimes()
			evt2.EXPECT().IsSecondary().Return(false).AnyTimes()

			handleEvt2 := handler2.EXPECT().Handle(evt2)
			handler1.EXPECT().Handle(evt1).After(handleEvt2)

			engine.Schedule(evt1)
			engine.Schedule(evt2)

			_ = engine.Run()
		})

	It("should panic when scheduling an event in the past", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt1.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()
		evt2.EXPECT().IsSecondary().Return(false).AnyTimes()

		handler.EXPECT().Handle(evt1).Do(func(e Event) {
			Expect(func() { engine.Schedule(evt2) }).To(Panic())
		})

		engine.Schedule(evt1)

		_ = engine.Run()
	})
})
