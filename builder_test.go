package dnc_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/dnclab/dnc"
	"github.com/dnclab/dnc/memory"
)

// failAfter returns an allocator that serves n acquisitions and fails on
// every later one.
func failAfter(n int) memory.Allocator {
	count := 0

	return func(length int) ([]float64, error) {
		if count >= n {
			return nil, fmt.Errorf("%w: budget of %d exhausted",
				memory.ErrAllocation, n)
		}

		count++

		return make([]float64, length), nil
	}
}

var _ = Describe("Builder", func() {
	var builder dnc.Builder

	BeforeEach(func() {
		builder = dnc.MakeBuilder().
			WithMemorySize(32).
			WithMemoryWidth(4).
			WithUsageBlockSize(16).
			WithReadHeads(2).
			WithWriteHeads(1).
			WithInputs(3).
			WithOutputs(2).
			WithHiddens(8).
			WithHiddenLayers(1).
			WithErrorThresholds([]float64{5.0}).
			WithSeed(42)
	})

	It("should build a working component", func() {
		comp, err := builder.
			WithMemorySize(128).
			WithInputs(10).
			WithOutputs(20).
			Build("Comp")

		Expect(err).ToNot(HaveOccurred())
		Expect(comp.Name()).To(Equal("Comp"))
		Expect(comp.ID()).ToNot(BeEmpty())
		Expect(comp.Bank().Size()).To(Equal(128))
		Expect(comp.Bank().Width()).To(Equal(4))
		Expect(comp.ReadHeadCount()).To(Equal(2))
		Expect(comp.WriteHeadCount()).To(Equal(1))
		Expect(comp.InputWidth()).To(Equal(10 + 4*2))
		Expect(comp.OutputWidth()).To(Equal(20 + 4*1 + (4+3)*2))

		comp.Release()
	})

	It("should give instances distinct IDs", func() {
		comp1, err := builder.Build("Comp1")
		Expect(err).ToNot(HaveOccurred())

		comp2, err := builder.Build("Comp2")
		Expect(err).ToNot(HaveOccurred())

		Expect(comp1.ID()).ToNot(Equal(comp2.ID()))

		comp1.Release()
		comp2.Release()
	})

	It("should round the memory size down to whole usage blocks", func() {
		comp, err := builder.WithMemorySize(20).Build("Comp")

		Expect(err).ToNot(HaveOccurred())
		Expect(comp.Bank().Size()).To(Equal(16))
		Expect(comp.Tracker().BlockCount()).To(Equal(1))

		comp.Release()
	})

	It("should report the interface geometry before building", func() {
		Expect(builder.ControllerInputWidth()).To(Equal(3 + 4*2))
		Expect(builder.ControllerOutputWidth()).To(Equal(2 + 4*1 + (4+3)*2))
	})

	It("should panic when the external surface is not configured", func() {
		Expect(func() {
			dnc.MakeBuilder().Build("Comp")
		}).To(Panic())
	})

	It("should reject a memory size smaller than one usage block", func() {
		comp, err := builder.WithMemorySize(7).Build("Comp")

		var initErr *dnc.InitError
		Expect(errors.As(err, &initErr)).To(BeTrue())
		Expect(initErr.Subsystem).To(Equal(dnc.SubsystemBank))
		Expect(initErr.Code()).To(Equal(2000))

		comp.Release()
	})

	It("should reject invalid controller geometry", func() {
		_, err := builder.WithErrorThresholds(nil).Build("Comp")

		var initErr *dnc.InitError
		Expect(errors.As(err, &initErr)).To(BeTrue())
		Expect(initErr.Subsystem).To(Equal(dnc.SubsystemController))
		Expect(initErr.Code()).To(Equal(5000))
	})

	Context("when allocation fails partway", func() {
		// The 32-address bank acquires 32 vectors, the tracker 1 usage
		// vector plus one linkage matrix per head, each read head 2 and
		// each write head 3.

		It("should report a bank failure", func() {
			comp, err := builder.WithAllocator(failAfter(10)).Build("Comp")

			var initErr *dnc.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Subsystem).To(Equal(dnc.SubsystemBank))
			Expect(errors.Is(err, memory.ErrAllocation)).To(BeTrue())

			comp.Release()
			Expect(comp.Arena().FreeCount()).To(Equal(comp.Arena().AllocCount()))
		})

		It("should report a usage tracker failure", func() {
			comp, err := builder.WithAllocator(failAfter(32)).Build("Comp")

			var initErr *dnc.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Subsystem).To(Equal(dnc.SubsystemUsage))
			Expect(initErr.Code()).To(Equal(3000))

			comp.Release()
			Expect(comp.Arena().FreeCount()).To(Equal(comp.Arena().AllocCount()))
		})

		It("should report a head failure", func() {
			comp, err := builder.WithAllocator(failAfter(32 + 4)).Build("Comp")

			var initErr *dnc.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Subsystem).To(Equal(dnc.SubsystemHeads))
			Expect(initErr.Code()).To(Equal(4000))

			comp.Release()
			Expect(comp.Arena().FreeCount()).To(Equal(comp.Arena().AllocCount()))
		})

		It("should only support Release on the partial component", func() {
			comp, err := builder.WithAllocator(failAfter(0)).Build("Comp")
			Expect(err).To(HaveOccurred())

			Expect(func() { comp.FeedForward() }).To(Panic())

			comp.Release()
		})
	})

	Context("with an injected controller", func() {
		var mockCtrl *gomock.Controller

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
		})

		It("should use the injected capability", func() {
			ctrl := NewMockController(mockCtrl)
			ctrl.EXPECT().InputWidth().Return(11).AnyTimes()
			ctrl.EXPECT().OutputWidth().Return(20).AnyTimes()

			comp, err := builder.WithController(ctrl).Build("Comp")

			Expect(err).ToNot(HaveOccurred())
			Expect(comp.Controller()).To(BeIdenticalTo(ctrl))

			ctrl.EXPECT().Free()
			comp.Release()
		})

		It("should reject mismatched controller widths", func() {
			ctrl := NewMockController(mockCtrl)
			ctrl.EXPECT().InputWidth().Return(7).AnyTimes()
			ctrl.EXPECT().OutputWidth().Return(20).AnyTimes()

			_, err := builder.WithController(ctrl).Build("Comp")

			var initErr *dnc.InitError
			Expect(errors.As(err, &initErr)).To(BeTrue())
			Expect(initErr.Subsystem).To(Equal(dnc.SubsystemController))
		})
	})
})
